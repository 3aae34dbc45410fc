/*
tiers.go - Loyalty tier derivation

PURPOSE:
  Maps lifetime points to a loyalty tier (bronze/silver/gold/platinum).
  A tier is a pure derivation of lifetime points - it is recomputed
  whenever lifetime points change and never cached independently.

INVARIANTS:
  - Tier thresholds are strictly increasing.
  - Point multipliers are non-decreasing with tier level.
  - TierFor is monotonic: more lifetime points never yields a lower tier.

SEE ALSO:
  - points.go: Applies the tier multiplier to item points
  - achievements.go: tier_<level> unlock conditions
*/
package engine

// =============================================================================
// TIER DEFINITIONS
// =============================================================================

type TierLevel string

const (
	TierBronze   TierLevel = "bronze"
	TierSilver   TierLevel = "silver"
	TierGold     TierLevel = "gold"
	TierPlatinum TierLevel = "platinum"
)

// Tier describes one loyalty level.
type Tier struct {
	Level             TierLevel
	Name              string
	MinLifetimePoints int
	PointsMultiplier  float64
	Benefits          []string
}

// tierOrder is the fixed bronze < silver < gold < platinum ordering used
// by derivation, progress, and achievement rank comparison.
var tierOrder = []TierLevel{TierBronze, TierSilver, TierGold, TierPlatinum}

var tierDefinitions = map[TierLevel]Tier{
	TierBronze: {
		Level:             TierBronze,
		Name:              "Bronze",
		MinLifetimePoints: 0,
		PointsMultiplier:  1.0,
		Benefits: []string{
			"Earn base points on healthy purchases",
			"Access to weekly challenges",
			"Basic reward catalog",
		},
	},
	TierSilver: {
		Level:             TierSilver,
		Name:              "Silver",
		MinLifetimePoints: 500,
		PointsMultiplier:  1.25,
		Benefits: []string{
			"25% point bonus on all purchases",
			"Exclusive weekly challenges",
			"Early access to new rewards",
			"Monthly health insights",
		},
	},
	TierGold: {
		Level:             TierGold,
		Name:              "Gold",
		MinLifetimePoints: 2000,
		PointsMultiplier:  1.5,
		Benefits: []string{
			"50% point bonus on all purchases",
			"Premium challenges with higher rewards",
			"Free recipe box quarterly",
			"Personalized health recommendations",
		},
	},
	TierPlatinum: {
		Level:             TierPlatinum,
		Name:              "Platinum",
		MinLifetimePoints: 5000,
		PointsMultiplier:  2.0,
		Benefits: []string{
			"Double points on all purchases",
			"Exclusive platinum-only rewards",
			"Free monthly recipe box",
			"Priority support",
			"Annual health summary report",
		},
	},
}

// =============================================================================
// DERIVATION
// =============================================================================

// TierFor returns the highest tier whose threshold is <= lifetimePoints.
func TierFor(lifetimePoints int) TierLevel {
	current := TierBronze
	for _, level := range tierOrder {
		if lifetimePoints >= tierDefinitions[level].MinLifetimePoints {
			current = level
		}
	}
	return current
}

// TierByLevel returns the full definition for a level. Unknown levels
// fall back to bronze.
func TierByLevel(level TierLevel) Tier {
	if t, ok := tierDefinitions[level]; ok {
		return t
	}
	return tierDefinitions[TierBronze]
}

// TierMultiplier returns the points multiplier for a level.
func TierMultiplier(level TierLevel) float64 {
	return TierByLevel(level).PointsMultiplier
}

// TierRank returns the position of a level in the fixed tier order, or
// -1 for unknown levels.
func TierRank(level TierLevel) int {
	for i, l := range tierOrder {
		if l == level {
			return i
		}
	}
	return -1
}

// =============================================================================
// PROGRESS
// =============================================================================

// TierProgress describes how far lifetime points have advanced toward
// the next tier. At the top tier Next is nil, Progress is 1 and
// PointsNeeded is 0.
type TierProgress struct {
	Current      TierLevel
	Next         *TierLevel
	Progress     float64 // in [0, 1]
	PointsNeeded int
}

// ProgressToNext computes tier progress for the given lifetime points.
func ProgressToNext(lifetimePoints int) TierProgress {
	current := TierFor(lifetimePoints)
	idx := TierRank(current)

	if idx == len(tierOrder)-1 {
		return TierProgress{Current: current, Next: nil, Progress: 1, PointsNeeded: 0}
	}

	next := tierOrder[idx+1]
	currentMin := tierDefinitions[current].MinLifetimePoints
	nextMin := tierDefinitions[next].MinLifetimePoints

	progress := float64(lifetimePoints-currentMin) / float64(nextMin-currentMin)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	needed := nextMin - lifetimePoints
	if needed < 0 {
		needed = 0
	}

	return TierProgress{Current: current, Next: &next, Progress: progress, PointsNeeded: needed}
}
