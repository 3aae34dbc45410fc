/*
points.go - Point calculation for items and receipts

PURPOSE:
  The central calculation of the rewards program: converts a submitted
  basket into an exact point award. Combines the product's health score,
  the user's health goals, the loyalty tier multiplier, and the streak
  bonus into per-item points, then aggregates a receipt with basket-level
  bonuses.

PER-ITEM FORMULA:
  base   = max(1, round(numericScore * 0.1))   (score defaults to 50)
  goal   = max multiplier across the user's goals (never summed/stacked)
  tier   = tier multiplier
  streak = 1 + streak bonus
  points = max(1, round(base * goal * tier * streak))

BASKET BONUSES (additive, independently triggered):
  +10% of subtotal when the basket has >= 5 distinct products
  +15% of subtotal when every item scores >= 60 (empty baskets excluded)

EDGE CASES:
  Unknown product ids are silently skipped: they contribute nothing to
  the subtotal and are ignored by the bonus eligibility checks.

SEE ALSO:
  - scoring.go: Produces the numeric score consumed here
  - tiers.go, streaks.go: Multiplier sources (passed in, not recomputed)
*/
package engine

import "math"

// =============================================================================
// GOAL MULTIPLIERS
// =============================================================================

// goalCategories maps each health goal to the product categories it
// favors. A category match earns a 1.2x multiplier.
var goalCategories = map[HealthGoal][]ProductCategory{
	GoalWeightLoss:         {CategoryFruitsVegetables, CategoryLeanProteins},
	GoalHeartHealth:        {CategoryFruitsVegetables, CategoryWholeGrains, CategoryLeanProteins},
	GoalDiabetesManagement: {CategoryFruitsVegetables, CategoryLeanProteins, CategoryWholeGrains},
	GoalGeneralWellness:    {CategoryFruitsVegetables, CategoryWholeGrains, CategoryLeanProteins, CategoryDairy},
	GoalMuscleBuilding:     {CategoryLeanProteins, CategoryDairy, CategoryWholeGrains},
	GoalGutHealth:          {CategoryFruitsVegetables, CategoryWholeGrains, CategoryPantry},
}

// attributeMultiplier ties a nutrition flag to a goal-specific bonus.
type attributeMultiplier struct {
	Flag       func(NutritionFacts) bool
	Multiplier float64
}

var goalAttributes = map[HealthGoal][]attributeMultiplier{
	GoalWeightLoss: {
		{func(n NutritionFacts) bool { return n.LowSodium }, 1.1},
		{func(n NutritionFacts) bool { return n.HighFiber }, 1.3},
	},
	GoalHeartHealth: {
		{func(n NutritionFacts) bool { return n.LowSodium }, 1.3},
		{func(n NutritionFacts) bool { return n.WholeGrain }, 1.2},
	},
	GoalDiabetesManagement: {
		{func(n NutritionFacts) bool { return n.HighFiber }, 1.4},
		{func(n NutritionFacts) bool { return n.WholeGrain }, 1.2},
	},
	GoalGeneralWellness: {
		{func(n NutritionFacts) bool { return n.Organic }, 1.2},
		{func(n NutritionFacts) bool { return n.WholeGrain }, 1.1},
	},
	GoalMuscleBuilding: {
		{func(n NutritionFacts) bool { return n.HighFiber }, 1.1},
	},
	GoalGutHealth: {
		{func(n NutritionFacts) bool { return n.HighFiber }, 1.4},
		{func(n NutritionFacts) bool { return n.PlantBased }, 1.3},
	},
}

// GoalMultiplier returns the best multiplier the product earns across
// the user's goals. Multipliers are never stacked: within a goal and
// across goals, the maximum wins. No goals means 1.0.
func GoalMultiplier(product Product, goals []HealthGoal) float64 {
	if len(goals) == 0 {
		return 1.0
	}

	best := 1.0
	for _, goal := range goals {
		m := 1.0

		for _, cat := range goalCategories[goal] {
			if product.Category == cat {
				m = 1.2
				break
			}
		}

		for _, attr := range goalAttributes[goal] {
			if attr.Flag(product.Nutrition) && attr.Multiplier > m {
				m = attr.Multiplier
			}
		}

		// Goal-specific numeric thresholds.
		switch goal {
		case GoalWeightLoss:
			if product.Nutrition.Calories <= 200 && m < 1.3 {
				m = 1.3
			}
		case GoalMuscleBuilding:
			if product.Nutrition.Protein >= 10 && m < 1.4 {
				m = 1.4
			}
		case GoalDiabetesManagement:
			if product.Nutrition.Sugar <= 5 && m < 1.3 {
				m = 1.3
			}
		}

		if m > best {
			best = m
		}
	}
	return best
}

// =============================================================================
// PER-ITEM POINTS
// =============================================================================

// PointsForItem computes the point award for one unit of a product.
// Always >= 1.
func PointsForItem(product Product, goals []HealthGoal, tier TierLevel, streakBonus float64) int {
	score := 50.0
	if product.Score != nil {
		score = float64(product.Score.NumericScore)
	}
	base := math.Max(1, math.Round(score*0.1))

	total := math.Round(base *
		GoalMultiplier(product, goals) *
		TierMultiplier(tier) *
		(1 + streakBonus))

	if total < 1 {
		return 1
	}
	return int(total)
}

// =============================================================================
// RECEIPT AGGREGATION
// =============================================================================

// ReceiptContext carries the user state the calculation depends on.
// Tier and streak bonus are passed in, never recomputed here.
type ReceiptContext struct {
	Goals       []HealthGoal
	Tier        TierLevel
	StreakBonus float64
}

// ItemPoints is the per-line result of a receipt calculation.
type ItemPoints struct {
	ProductID   ProductID
	ProductName string
	Points      int
}

// ReceiptPoints is the aggregate result of a receipt calculation.
type ReceiptPoints struct {
	ItemPoints  []ItemPoints
	Subtotal    int
	BonusPoints int
	Total       int
}

// PointsForReceipt converts a basket into its exact point award.
// Unknown product ids are skipped without error.
func PointsForReceipt(items []BasketItem, products map[ProductID]Product, ctx ReceiptContext) ReceiptPoints {
	result := ReceiptPoints{}

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}

		pts := PointsForItem(product, ctx.Goals, ctx.Tier, ctx.StreakBonus) * item.Quantity
		result.ItemPoints = append(result.ItemPoints, ItemPoints{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Points:      pts,
		})
		result.Subtotal += pts
	}

	// Diversity bonus: 5+ distinct known products in the basket.
	distinct := make(map[ProductID]struct{}, len(items))
	for _, item := range items {
		if _, ok := products[item.ProductID]; ok {
			distinct[item.ProductID] = struct{}{}
		}
	}
	if len(distinct) >= 5 {
		result.BonusPoints += int(math.Round(float64(result.Subtotal) * 0.10))
	}

	// Uniform-healthiness bonus: every item scores >= 60. Empty baskets
	// do not qualify.
	allHealthy := len(items) > 0
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		score := 0
		if product.Score != nil {
			score = product.Score.NumericScore
		}
		if score < 60 {
			allHealthy = false
			break
		}
	}
	if allHealthy {
		result.BonusPoints += int(math.Round(float64(result.Subtotal) * 0.15))
	}

	result.Total = result.Subtotal + result.BonusPoints
	return result
}
