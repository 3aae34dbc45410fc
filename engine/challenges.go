/*
challenges.go - Time-boxed challenge selection and evaluation

PURPOSE:
  Selects one active challenge per frequency tier (daily/weekly/monthly)
  deterministically from the calendar date, and evaluates progress by
  replaying the receipt history inside the challenge window. Progress is
  always recomputed from the history, never incrementally mutated, so it
  cannot diverge from the receipts.

SELECTION (deterministic, date-seeded):
  daily   index = hash(ISO date string) mod len(daily catalog)
  weekly  index = ISO week number      mod len(weekly catalog)
  monthly index = year*12 + month0     mod len(monthly catalog)
  Repeated calls on the same day/week/month select the same challenge.

WINDOWS:
  daily   -> end of current day (23:59:59.999)
  weekly  -> end of current ISO week (next Sunday, or today on Sunday)
  monthly -> last day of current month

EXPIRY:
  IsChallengeExpired(c, now) = now > ExpiresAt. The engine never deletes
  anything; the consumer filters expired instances out of the active set.

SEE ALSO:
  - week.go: Window boundary arithmetic
  - factory/: YAML overlay for operator-supplied challenge definitions
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CHALLENGE DEFINITIONS
// =============================================================================

type ChallengeType string

const (
	ChallengeBuyCategory    ChallengeType = "buy_category"
	ChallengeBuyHealthy     ChallengeType = "buy_healthy"
	ChallengeTotalReceipts  ChallengeType = "total_receipts"
	ChallengeUniqueProducts ChallengeType = "unique_products"
	ChallengeSpendAmount    ChallengeType = "spend_amount"
	ChallengeEarnPoints     ChallengeType = "earn_points"
)

type ChallengeFrequency string

const (
	FrequencyDaily   ChallengeFrequency = "daily"
	FrequencyWeekly  ChallengeFrequency = "weekly"
	FrequencyMonthly ChallengeFrequency = "monthly"
)

// Challenge is a static definition from the challenge catalog.
type Challenge struct {
	ID                   ChallengeID
	Title                string
	Description          string
	Type                 ChallengeType
	TargetCount          float64
	TargetCategory       ProductCategory // buy_category only
	HealthScoreThreshold int             // buy_healthy only; 0 -> default 70
	Frequency            ChallengeFrequency
	RewardPoints         int
}

// ActiveChallenge is a live instance of a Challenge with a concrete
// window and progress recomputed on demand.
type ActiveChallenge struct {
	ID            string
	Challenge     Challenge
	Progress      float64
	Goal          float64
	StartDate     time.Time
	ExpiresAt     time.Time
	Completed     bool
	PointsAwarded int
}

// defaultHealthThreshold applies when a buy_healthy challenge does not
// set its own threshold.
const defaultHealthThreshold = 70

// =============================================================================
// SELECTION
// =============================================================================

// GenerateActiveChallenges picks one challenge per frequency tier for
// the given instant. Selection is a pure function of the calendar date;
// instance ids come from newID so the engine stays clock- and
// randomness-free.
func GenerateActiveChallenges(catalog []Challenge, now time.Time, newID func() string) []ActiveChallenge {
	var daily, weekly, monthly []Challenge
	for _, c := range catalog {
		switch c.Frequency {
		case FrequencyDaily:
			daily = append(daily, c)
		case FrequencyWeekly:
			weekly = append(weekly, c)
		case FrequencyMonthly:
			monthly = append(monthly, c)
		}
	}

	var active []ActiveChallenge

	if len(daily) > 0 {
		seed := hashDateSeed(now.Format("2006-01-02"))
		picked := daily[seed%len(daily)]
		active = append(active, newActiveChallenge(picked, now, EndOfDay(now), newID))
	}

	if len(weekly) > 0 {
		_, week := now.ISOWeek()
		picked := weekly[week%len(weekly)]
		active = append(active, newActiveChallenge(picked, now, EndOfISOWeek(now), newID))
	}

	if len(monthly) > 0 {
		seed := now.Year()*12 + int(now.Month()) - 1
		picked := monthly[seed%len(monthly)]
		active = append(active, newActiveChallenge(picked, now, EndOfMonth(now), newID))
	}

	return active
}

func newActiveChallenge(c Challenge, start, expires time.Time, newID func() string) ActiveChallenge {
	return ActiveChallenge{
		ID:        newID(),
		Challenge: c,
		Goal:      c.TargetCount,
		StartDate: start,
		ExpiresAt: expires,
	}
}

// hashDateSeed hashes a date string with the classic shift-accumulate
// string hash, truncated to 32 bits and made non-negative.
func hashDateSeed(s string) int {
	var h int32
	for _, c := range s {
		h = h<<5 - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

// =============================================================================
// PROGRESS EVALUATION
// =============================================================================

// EvaluateChallengeProgress recomputes an instance's progress from the
// receipt history. Only receipts inside [StartDate, ExpiresAt] count.
// Progress is clamped to the goal; completion awards RewardPoints.
func EvaluateChallengeProgress(ac ActiveChallenge, receipts []Receipt, products map[ProductID]Product) ActiveChallenge {
	var relevant []Receipt
	for _, r := range receipts {
		if !r.ScannedAt.Before(ac.StartDate) && !r.ScannedAt.After(ac.ExpiresAt) {
			relevant = append(relevant, r)
		}
	}

	progress := ac.Progress

	switch ac.Challenge.Type {
	case ChallengeBuyCategory:
		count := 0
		for _, r := range relevant {
			for _, item := range r.Items {
				p, ok := products[item.ProductID]
				if ok && p.Category == ac.Challenge.TargetCategory {
					count += item.Quantity
				}
			}
		}
		progress = float64(count)

	case ChallengeBuyHealthy:
		threshold := ac.Challenge.HealthScoreThreshold
		if threshold == 0 {
			threshold = defaultHealthThreshold
		}
		count := 0
		for _, r := range relevant {
			for _, item := range r.Items {
				p, ok := products[item.ProductID]
				if ok && p.Score != nil && p.Score.NumericScore >= threshold {
					count += item.Quantity
				}
			}
		}
		progress = float64(count)

	case ChallengeTotalReceipts:
		progress = float64(len(relevant))

	case ChallengeUniqueProducts:
		unique := make(map[ProductID]struct{})
		for _, r := range relevant {
			for _, item := range r.Items {
				unique[item.ProductID] = struct{}{}
			}
		}
		progress = float64(len(unique))

	case ChallengeSpendAmount:
		spent := decimal.Zero
		for _, r := range relevant {
			spent = spent.Add(r.Subtotal)
		}
		progress = spent.Round(2).InexactFloat64()

	case ChallengeEarnPoints:
		points := 0
		for _, r := range relevant {
			points += r.TotalPoints
		}
		progress = float64(points)
	}

	next := ac
	next.Completed = progress >= ac.Goal
	if progress > ac.Goal {
		progress = ac.Goal
	}
	next.Progress = progress
	if next.Completed {
		next.PointsAwarded = ac.Challenge.RewardPoints
	} else {
		next.PointsAwarded = 0
	}
	return next
}

// IsChallengeExpired reports whether now is past the instance's window.
func IsChallengeExpired(ac ActiveChallenge, now time.Time) bool {
	return now.After(ac.ExpiresAt)
}

// RemoveExpiredChallenges filters expired instances from the active set.
func RemoveExpiredChallenges(active []ActiveChallenge, now time.Time) []ActiveChallenge {
	var keep []ActiveChallenge
	for _, ac := range active {
		if !IsChallengeExpired(ac, now) {
			keep = append(keep, ac)
		}
	}
	return keep
}

// =============================================================================
// BUILT-IN CHALLENGE CATALOG
// =============================================================================

// DefaultChallenges returns the built-in challenge catalog. Operators
// can extend or override it via the factory's YAML content overlay.
func DefaultChallenges() []Challenge {
	return []Challenge{
		// Daily
		{
			ID: "daily_produce", Title: "Produce Run",
			Description: "Buy 3 fruits or vegetables today",
			Type:        ChallengeBuyCategory, TargetCategory: CategoryFruitsVegetables,
			TargetCount: 3, Frequency: FrequencyDaily, RewardPoints: 25,
		},
		{
			ID: "daily_healthy_pick", Title: "Healthy Pick",
			Description: "Buy 2 items scoring 70 or better today",
			Type:        ChallengeBuyHealthy, HealthScoreThreshold: 70,
			TargetCount: 2, Frequency: FrequencyDaily, RewardPoints: 20,
		},
		{
			ID: "daily_whole_grain", Title: "Grain Gains",
			Description: "Buy 2 whole grain products today",
			Type:        ChallengeBuyCategory, TargetCategory: CategoryWholeGrains,
			TargetCount: 2, Frequency: FrequencyDaily, RewardPoints: 20,
		},
		{
			ID: "daily_protein", Title: "Protein Power",
			Description: "Buy 2 lean proteins today",
			Type:        ChallengeBuyCategory, TargetCategory: CategoryLeanProteins,
			TargetCount: 2, Frequency: FrequencyDaily, RewardPoints: 20,
		},

		// Weekly
		{
			ID: "weekly_variety", Title: "Variety Pack",
			Description: "Buy 10 different products this week",
			Type:        ChallengeUniqueProducts,
			TargetCount: 10, Frequency: FrequencyWeekly, RewardPoints: 75,
		},
		{
			ID: "weekly_two_trips", Title: "Double Trip",
			Description: "Submit 2 receipts this week",
			Type:        ChallengeTotalReceipts,
			TargetCount: 2, Frequency: FrequencyWeekly, RewardPoints: 50,
		},
		{
			ID: "weekly_healthy_dozen", Title: "Healthy Dozen",
			Description: "Buy 12 items scoring 60 or better this week",
			Type:        ChallengeBuyHealthy, HealthScoreThreshold: 60,
			TargetCount: 12, Frequency: FrequencyWeekly, RewardPoints: 100,
		},
		{
			ID: "weekly_point_sprint", Title: "Point Sprint",
			Description: "Earn 150 points this week",
			Type:        ChallengeEarnPoints,
			TargetCount: 150, Frequency: FrequencyWeekly, RewardPoints: 60,
		},
		{
			ID: "weekly_greens", Title: "Green Week",
			Description: "Buy 8 fruits or vegetables this week",
			Type:        ChallengeBuyCategory, TargetCategory: CategoryFruitsVegetables,
			TargetCount: 8, Frequency: FrequencyWeekly, RewardPoints: 80,
		},

		// Monthly
		{
			ID: "monthly_regular", Title: "Regular Shopper",
			Description: "Submit 8 receipts this month",
			Type:        ChallengeTotalReceipts,
			TargetCount: 8, Frequency: FrequencyMonthly, RewardPoints: 200,
		},
		{
			ID: "monthly_spender", Title: "Grocery Budget",
			Description: "Spend $150 on groceries this month",
			Type:        ChallengeSpendAmount,
			TargetCount: 150, Frequency: FrequencyMonthly, RewardPoints: 150,
		},
		{
			ID: "monthly_points", Title: "Point Harvest",
			Description: "Earn 600 points this month",
			Type:        ChallengeEarnPoints,
			TargetCount: 600, Frequency: FrequencyMonthly, RewardPoints: 250,
		},
		{
			ID: "monthly_explorer", Title: "Aisle Explorer",
			Description: "Buy 25 different products this month",
			Type:        ChallengeUniqueProducts,
			TargetCount: 25, Frequency: FrequencyMonthly, RewardPoints: 200,
		},
	}
}
