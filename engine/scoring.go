/*
scoring.go - Health scoring of grocery products

PURPOSE:
  Converts nutrition facts + product category into a letter grade (A-F)
  and a 0-100 numeric score. This is the foundation of the points
  pipeline: healthier products earn more base points.

ALGORITHM:
  Stage 1 (negative points, 0-40): sugar, saturated fat, sodium, and
    calories each map through a 10-step ascending threshold ladder to a
    0-10 score (number of breakpoints the value exceeds).
  Stage 2 (positive points, 0-15): fiber and protein map through 5-step
    ladders (capped at 5 each); produce gets a flat +5.
  Stage 3: rawScore = negative - positive. Grade bands on rawScore,
    evaluated in ascending order (first match wins):
      <= -1 A, <= 2 B, <= 10 C, <= 18 D, else F.
    numericScore = clamp(round(100 - ((raw+15)/55)*100), 0, 100).
  Stage 4 (bonus): +3 organic, +2 whole grain, +2 low sodium,
    +2 high fiber, +1 plant based; capped at 10; added to numericScore
    and re-clamped at 100. Bonuses never change the letter grade.

PROPERTIES:
  - Pure and total: no error cases, out-of-range values clamp naturally.
  - Deterministic: same inputs always produce the same HealthScore.

SEE ALSO:
  - points.go: Consumes NumericScore as the base of the point award
  - types.go: NutritionFacts, HealthScore
*/
package engine

import "math"

// Threshold ladders. A value scores the count of breakpoints it exceeds;
// values past the last breakpoint score the ladder length.
var (
	sugarThresholds    = []float64{4.5, 9, 13.5, 18, 22.5, 27, 31, 36, 40, 45}
	satFatThresholds   = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sodiumThresholds   = []float64{90, 180, 270, 360, 450, 540, 630, 720, 810, 900}
	caloriesThresholds = []float64{335, 670, 1005, 1340, 1675, 2010, 2345, 2680, 3015, 3350}
	fiberThresholds    = []float64{0.9, 1.9, 2.8, 3.7, 4.7}
	proteinThresholds  = []float64{1.6, 3.2, 4.8, 6.4, 8.0}
)

func thresholdScore(value float64, thresholds []float64) int {
	for i, limit := range thresholds {
		if value <= limit {
			return i
		}
	}
	return len(thresholds)
}

// Score computes the health score for a product's nutrition facts.
func Score(n NutritionFacts, category ProductCategory) HealthScore {
	negative := thresholdScore(n.Sugar, sugarThresholds) +
		thresholdScore(n.SaturatedFat, satFatThresholds) +
		thresholdScore(n.Sodium, sodiumThresholds) +
		thresholdScore(n.Calories, caloriesThresholds)

	fiberPts := min(5, thresholdScore(n.Fiber, fiberThresholds))
	proteinPts := min(5, thresholdScore(n.Protein, proteinThresholds))
	producePts := 0
	if category == CategoryFruitsVegetables {
		producePts = 5
	}
	positive := fiberPts + proteinPts + producePts

	raw := negative - positive

	// Grade is derived from the raw score only; bonuses below never
	// change the letter.
	var grade HealthGrade
	switch {
	case raw <= -1:
		grade = GradeA
	case raw <= 2:
		grade = GradeB
	case raw <= 10:
		grade = GradeC
	case raw <= 18:
		grade = GradeD
	default:
		grade = GradeF
	}

	numeric := int(math.Round(100 - (float64(raw)+15)/55*100))
	numeric = clampInt(numeric, 0, 100)

	bonus := 0
	if n.Organic {
		bonus += 3
	}
	if n.WholeGrain {
		bonus += 2
	}
	if n.LowSodium {
		bonus += 2
	}
	if n.HighFiber {
		bonus += 2
	}
	if n.PlantBased {
		bonus += 1
	}
	bonus = min(10, bonus)

	numeric = min(100, numeric+bonus)

	return HealthScore{
		Grade:          grade,
		NumericScore:   numeric,
		NegativePoints: negative,
		PositivePoints: positive,
		BonusPoints:    bonus,
	}
}

// GradeLabel returns the display label for a grade.
func GradeLabel(g HealthGrade) string {
	switch g {
	case GradeA:
		return "Excellent"
	case GradeB:
		return "Good"
	case GradeC:
		return "Average"
	case GradeD:
		return "Poor"
	default:
		return "Unhealthy"
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
