/*
achievements.go - Achievement condition evaluation and unlocking

PURPOSE:
  Evaluates declarative unlock conditions against the aggregate Stats
  bundle and marks first-time unlocks with the evaluation timestamp.

CONDITION GRAMMAR (closed-form, intentionally small):
  tier_<level>                 unlocked once tier rank >= named rank
  <field> <op> <number>        op in {>=, >, ===, ==, <=, <}

  Unknown fields and unparseable strings evaluate to NOT MET - never an
  error. This keeps the catalog data-driven: an overlay file may ship a
  condition this build does not understand and nothing breaks.

GUARANTEES:
  - Idempotent: an already-unlocked achievement is never re-evaluated
    or overwritten; UnlockedAt is set exactly once.
  - The newly-unlocked return value contains exactly the achievements
    that transitioned locked -> unlocked in this call (drives one-time
    notifications).

SEE ALSO:
  - types.go: Stats and its Field lookup
  - factory/: YAML overlay for operator-supplied achievements
*/
package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Achievement couples a definition with its unlock state. Category and
// Rarity are descriptive metadata only; they gate nothing.
type Achievement struct {
	ID          AchievementID
	Name        string
	Description string
	Category    string
	Rarity      string
	Condition   string
	UnlockedAt  *time.Time
}

var conditionPattern = regexp.MustCompile(`^(\w+)\s*(>=|>|===|==|<=|<)\s*(\d+(?:\.\d+)?)$`)

// EvaluateCondition reports whether a condition string is met by the
// stats bundle. Total: malformed input yields false.
func EvaluateCondition(condition string, stats Stats) bool {
	if level, ok := strings.CutPrefix(condition, "tier_"); ok {
		required := TierRank(TierLevel(level))
		if required < 0 {
			return false
		}
		return TierRank(stats.Tier) >= required
	}

	m := conditionPattern.FindStringSubmatch(condition)
	if m == nil {
		return false
	}

	statValue, ok := stats.Field(m[1])
	if !ok {
		return false
	}
	value, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return false
	}

	switch m[2] {
	case ">=":
		return statValue >= value
	case ">":
		return statValue > value
	case "<=":
		return statValue <= value
	case "<":
		return statValue < value
	case "===", "==":
		return statValue == value
	default:
		return false
	}
}

// CheckAchievements evaluates every locked achievement against stats.
// Returns the full updated list plus exactly the set that transitioned
// from locked to unlocked in this call. Already-unlocked entries pass
// through untouched.
func CheckAchievements(achievements []Achievement, stats Stats, now time.Time) (updated, newlyUnlocked []Achievement) {
	updated = make([]Achievement, len(achievements))
	for i, a := range achievements {
		if a.UnlockedAt != nil {
			updated[i] = a
			continue
		}
		if EvaluateCondition(a.Condition, stats) {
			at := now
			a.UnlockedAt = &at
			newlyUnlocked = append(newlyUnlocked, a)
		}
		updated[i] = a
	}
	return updated, newlyUnlocked
}

// UnlockedCount returns how many achievements in the list are unlocked.
func UnlockedCount(achievements []Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.UnlockedAt != nil {
			n++
		}
	}
	return n
}

// =============================================================================
// BUILT-IN ACHIEVEMENT CATALOG
// =============================================================================

// DefaultAchievements returns the built-in achievement catalog with all
// entries locked.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: "first_scan", Name: "First Scan", Description: "Scan your first grocery receipt",
			Category: "shopping", Rarity: "common", Condition: "totalReceipts >= 1"},
		{ID: "five_receipts", Name: "Regular Shopper", Description: "Scan 5 grocery receipts",
			Category: "shopping", Rarity: "common", Condition: "totalReceipts >= 5"},
		{ID: "twenty_receipts", Name: "Dedicated Shopper", Description: "Scan 20 grocery receipts",
			Category: "shopping", Rarity: "uncommon", Condition: "totalReceipts >= 20"},
		{ID: "fifty_receipts", Name: "Shopping Champion", Description: "Scan 50 grocery receipts",
			Category: "shopping", Rarity: "rare", Condition: "totalReceipts >= 50"},
		{ID: "hundred_items", Name: "Centurion", Description: "Purchase 100 items",
			Category: "shopping", Rarity: "uncommon", Condition: "totalItems >= 100"},
		{ID: "five_hundred_points", Name: "Points Collector", Description: "Earn 500 lifetime points",
			Category: "milestone", Rarity: "common", Condition: "lifetimePoints >= 500"},
		{ID: "two_thousand_points", Name: "Points Master", Description: "Earn 2,000 lifetime points",
			Category: "milestone", Rarity: "uncommon", Condition: "lifetimePoints >= 2000"},
		{ID: "five_thousand_points", Name: "Points Legend", Description: "Earn 5,000 lifetime points",
			Category: "milestone", Rarity: "rare", Condition: "lifetimePoints >= 5000"},
		{ID: "streak_three", Name: "On a Roll", Description: "Maintain a 3-week shopping streak",
			Category: "streak", Rarity: "common", Condition: "currentStreak >= 3"},
		{ID: "streak_eight", Name: "Unstoppable", Description: "Maintain an 8-week shopping streak",
			Category: "streak", Rarity: "rare", Condition: "currentStreak >= 8"},
		{ID: "link_store", Name: "Connected", Description: "Link your first grocery store",
			Category: "social", Rarity: "common", Condition: "linkedStores >= 1"},
		{ID: "link_three_stores", Name: "Multi-Store Maven", Description: "Link 3 different grocery stores",
			Category: "social", Rarity: "uncommon", Condition: "linkedStores >= 3"},
		{ID: "reach_silver", Name: "Silver Status", Description: "Reach Silver tier",
			Category: "milestone", Rarity: "common", Condition: "tier_silver"},
		{ID: "reach_gold", Name: "Gold Status", Description: "Reach Gold tier",
			Category: "milestone", Rarity: "uncommon", Condition: "tier_gold"},
		{ID: "reach_platinum", Name: "Platinum Status", Description: "Reach Platinum tier",
			Category: "milestone", Rarity: "epic", Condition: "tier_platinum"},
		{ID: "variety_five", Name: "Variety Seeker", Description: "Buy from 5 different product categories in one receipt",
			Category: "health", Rarity: "uncommon", Condition: "uniqueCategories >= 5"},
		{ID: "healthy_ten", Name: "Health Nut", Description: "Buy 10 products with an A health grade",
			Category: "health", Rarity: "common", Condition: "healthyItemCount >= 10"},
		{ID: "healthy_fifty", Name: "Wellness Warrior", Description: "Buy 50 products with an A health grade",
			Category: "health", Rarity: "rare", Condition: "healthyItemCount >= 50"},
	}
}
