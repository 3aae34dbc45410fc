/*
Package engine provides the NutriBucks rewards computation engine.

PURPOSE:
  This package contains the deterministic core of the rewards program:
  health scoring of grocery products, point calculation for submitted
  receipts, loyalty tier derivation, weekly shopping streak tracking,
  time-boxed challenge selection/evaluation, and achievement unlocking.

KEY CONCEPTS IN THIS FILE (types.go):
  - NutritionFacts / HealthScore: Product nutrition and its derived grade
  - Product: Catalog entry (read-only to the engine)
  - Receipt / ReceiptItem: Immutable record of a submitted purchase
  - PointsBalance / PointsTransaction: Spendable points and their ledger
  - UserProfile / LinkedStore: Account state owned by the storage layer
  - Stats: Aggregate statistics consumed by the achievement engine

DESIGN PRINCIPLES:
  1. Determinism: Every function takes the clock as an explicit argument.
     Identical inputs always produce identical outputs.
  2. Totality: Malformed numeric input is clamped, unknown products are
     skipped, unparseable conditions evaluate to false. The only explicit
     failure is redemption denial.
  3. Precision: Currency uses decimal.Decimal; points are integers.
  4. Replace-whole-value state: The engine reads snapshots and returns
     updated snapshots; it never persists anything itself.

SEE ALSO:
  - scoring.go: Nutrition facts -> health grade
  - points.go: Receipt -> point award
  - tiers.go, streaks.go, challenges.go, achievements.go
  - store.go: Storage collaborator interface
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type ProductID string
type StoreID string
type ReceiptID string
type TransactionID string
type ChallengeID string
type AchievementID string

// =============================================================================
// PRODUCT CATALOG TYPES (read-only to the engine)
// =============================================================================

type ProductCategory string

const (
	CategoryFruitsVegetables ProductCategory = "fruits_vegetables"
	CategoryWholeGrains      ProductCategory = "whole_grains"
	CategoryLeanProteins     ProductCategory = "lean_proteins"
	CategoryDairy            ProductCategory = "dairy"
	CategorySnacks           ProductCategory = "snacks"
	CategoryBeverages        ProductCategory = "beverages"
	CategoryFrozen           ProductCategory = "frozen"
	CategoryPantry           ProductCategory = "pantry"
)

// Categories lists every product category in display order.
func Categories() []ProductCategory {
	return []ProductCategory{
		CategoryFruitsVegetables,
		CategoryWholeGrains,
		CategoryLeanProteins,
		CategoryDairy,
		CategorySnacks,
		CategoryBeverages,
		CategoryFrozen,
		CategoryPantry,
	}
}

// NutritionFacts holds per-serving nutrition data. Immutable once attached
// to a product. Amounts are grams except Sodium (mg) and Calories (kcal).
type NutritionFacts struct {
	Calories     float64
	TotalFat     float64
	SaturatedFat float64
	Sodium       float64
	TotalCarbs   float64
	Fiber        float64
	Sugar        float64
	Protein      float64

	Organic    bool
	WholeGrain bool
	LowSodium  bool
	HighFiber  bool
	PlantBased bool
}

type HealthGrade string

const (
	GradeA HealthGrade = "A"
	GradeB HealthGrade = "B"
	GradeC HealthGrade = "C"
	GradeD HealthGrade = "D"
	GradeF HealthGrade = "F"
)

// HealthScore is derived on demand from NutritionFacts + category.
// It is never persisted independently; recomputing always yields the
// same result.
type HealthScore struct {
	Grade          HealthGrade
	NumericScore   int // 0-100
	NegativePoints int
	PositivePoints int
	BonusPoints    int
}

// Product is a catalog entry. The engine never mutates products; the
// catalog computes Score once at load time.
type Product struct {
	ID          ProductID
	Name        string
	Brand       string
	Category    ProductCategory
	ServingSize string
	Price       decimal.Decimal
	Nutrition   NutritionFacts
	Score       *HealthScore // nil = unscored (points default to 50)
	AvailableAt []StoreID
}

// =============================================================================
// USER PROFILE & GOALS
// =============================================================================

type HealthGoal string

const (
	GoalWeightLoss         HealthGoal = "weight_loss"
	GoalHeartHealth        HealthGoal = "heart_health"
	GoalDiabetesManagement HealthGoal = "diabetes_management"
	GoalGeneralWellness    HealthGoal = "general_wellness"
	GoalMuscleBuilding     HealthGoal = "muscle_building"
	GoalGutHealth          HealthGoal = "gut_health"
)

type UserProfile struct {
	ID                 string
	Name               string
	HealthGoals        []HealthGoal
	OnboardingComplete bool
	CreatedAt          time.Time
	LastActiveAt       time.Time
}

// LinkedStore records a connected store loyalty account.
type LinkedStore struct {
	StoreID    StoreID
	MemberID   string
	LinkedAt   time.Time
	LastSyncAt time.Time
	SyncStatus string // "synced", "syncing", "error"
	IsPrimary  bool
}

// =============================================================================
// RECEIPTS
// =============================================================================

type SubmissionMethod string

const (
	MethodScan   SubmissionMethod = "scan"
	MethodManual SubmissionMethod = "manual"
)

// BasketItem is the submission input: one product-id/quantity pair.
type BasketItem struct {
	ProductID ProductID
	Quantity  int
}

// ReceiptItem is a priced, scored line on a finalized receipt.
type ReceiptItem struct {
	ProductID    ProductID
	ProductName  string
	Quantity     int
	PriceEach    decimal.Decimal
	LineTotal    decimal.Decimal
	PointsEarned int
}

// Receipt is immutable once created; it is appended to the receipt
// history and never edited.
type Receipt struct {
	ID          ReceiptID
	StoreID     StoreID
	Items       []ReceiptItem
	Subtotal    decimal.Decimal
	TotalPoints int
	BonusPoints int
	ScannedAt   time.Time
	Method      SubmissionMethod
}

// =============================================================================
// POINTS BALANCE & LEDGER
// =============================================================================

// PointsBalance tracks lifetime, spendable, and redeemed points.
// Invariant: Available == Total - Redeemed at all times.
type PointsBalance struct {
	Total     int
	Available int
	Redeemed  int
}

type TransactionType string

const (
	TxEarnPurchase    TransactionType = "earn_purchase"
	TxEarnStreak      TransactionType = "earn_streak"
	TxEarnChallenge   TransactionType = "earn_challenge"
	TxEarnAchievement TransactionType = "earn_achievement"
	TxRedeemDiscount  TransactionType = "redeem_discount"
	TxRedeemRecipe    TransactionType = "redeem_recipe"
	TxRedeemDonation  TransactionType = "redeem_donation"
)

// PointsTransaction is an immutable ledger entry. Amount is signed:
// positive for earns, negative for redemptions.
type PointsTransaction struct {
	ID          TransactionID
	Type        TransactionType
	Amount      int
	Description string
	StoreID     StoreID   // empty when not store-related
	ReceiptID   ReceiptID // empty when not receipt-related
	CreatedAt   time.Time
}

// =============================================================================
// STREAK
// =============================================================================

// Streak counts consecutive ISO calendar weeks with at least one
// qualifying activity. Mutated only via UpdateStreak.
type Streak struct {
	CurrentStreak   int // weeks
	LongestStreak   int // historical maximum, never decreases
	LastActivityAt  *time.Time
	StreakStartedAt *time.Time
}

// NewStreak returns the empty streak state used at first launch.
func NewStreak() Streak {
	return Streak{}
}

// =============================================================================
// ACHIEVEMENT STATISTICS
// =============================================================================

// Stats is the aggregate statistics bundle assembled by a collaborator
// (the API layer joins receipts with the catalog). The achievement
// engine evaluates conditions against these fields by name.
type Stats struct {
	TotalReceipts    int
	TotalItems       int
	TotalPoints      int
	CurrentStreak    int
	LinkedStores     int
	UniqueCategories int
	HealthyItemCount int
	LifetimePoints   int
	Tier             TierLevel
}

// Field resolves a statistic by its condition-string name.
// Unknown names return ok=false (the condition then evaluates false).
func (s Stats) Field(name string) (float64, bool) {
	switch name {
	case "totalReceipts":
		return float64(s.TotalReceipts), true
	case "totalItems":
		return float64(s.TotalItems), true
	case "totalPoints":
		return float64(s.TotalPoints), true
	case "currentStreak":
		return float64(s.CurrentStreak), true
	case "linkedStores":
		return float64(s.LinkedStores), true
	case "uniqueCategories":
		return float64(s.UniqueCategories), true
	case "healthyItemCount":
		return float64(s.HealthyItemCount), true
	case "lifetimePoints":
		return float64(s.LifetimePoints), true
	default:
		return 0, false
	}
}
