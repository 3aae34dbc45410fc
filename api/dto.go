/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific formatting (decimal money as strings, RFC3339 dates)
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - engine/types.go: The domain model these mirror
*/
package api

import (
	"time"

	"github.com/nutribucks/rewards-engine/catalog"
	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// PRODUCT & CATALOG TYPES
// =============================================================================

// NutritionDTO mirrors per-serving nutrition facts.
type NutritionDTO struct {
	Calories     float64 `json:"calories"`
	TotalFat     float64 `json:"total_fat"`
	SaturatedFat float64 `json:"saturated_fat"`
	Sodium       float64 `json:"sodium"`
	TotalCarbs   float64 `json:"total_carbs"`
	Fiber        float64 `json:"fiber"`
	Sugar        float64 `json:"sugar"`
	Protein      float64 `json:"protein"`
	Organic      bool    `json:"organic"`
	WholeGrain   bool    `json:"whole_grain"`
	LowSodium    bool    `json:"low_sodium"`
	HighFiber    bool    `json:"high_fiber"`
	PlantBased   bool    `json:"plant_based"`
}

// HealthScoreDTO is a product's derived health score.
type HealthScoreDTO struct {
	Grade          string `json:"grade"`
	NumericScore   int    `json:"numeric_score"`
	NegativePoints int    `json:"negative_points"`
	PositivePoints int    `json:"positive_points"`
	BonusPoints    int    `json:"bonus_points"`
}

// ProductDTO represents a catalog product in API responses.
type ProductDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	ServingSize string          `json:"serving_size"`
	Price       string          `json:"price"`
	Nutrition   NutritionDTO    `json:"nutrition"`
	HealthScore *HealthScoreDTO `json:"health_score,omitempty"`
	AvailableAt []string        `json:"available_at"`
}

// GoalDTO represents a selectable health goal.
type GoalDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// =============================================================================
// PROFILE TYPES
// =============================================================================

// ProfileDTO represents the user profile.
type ProfileDTO struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	HealthGoals        []string `json:"health_goals"`
	OnboardingComplete bool     `json:"onboarding_complete"`
	CreatedAt          string   `json:"created_at,omitempty"`
	LastActiveAt       string   `json:"last_active_at,omitempty"`
}

// OnboardingRequest completes first-launch onboarding.
type OnboardingRequest struct {
	Name        string   `json:"name"`
	HealthGoals []string `json:"health_goals"`
}

// UpdateGoalsRequest replaces the profile's health goals.
type UpdateGoalsRequest struct {
	HealthGoals []string `json:"health_goals"`
}

// =============================================================================
// STORE TYPES
// =============================================================================

// StoreDTO joins a directory entry with its linked state.
type StoreDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProgramName    string `json:"program_name"`
	CardPrefix     string `json:"card_prefix"`
	MemberIDLength int    `json:"member_id_length"`
	Linked         bool   `json:"linked"`
	MemberID       string `json:"member_id,omitempty"`
	IsPrimary      bool   `json:"is_primary,omitempty"`
}

// LinkStoreRequest links a store loyalty account.
type LinkStoreRequest struct {
	MemberID string `json:"member_id"`
}

// LinkedStoreDTO represents a linked store account.
type LinkedStoreDTO struct {
	StoreID    string `json:"store_id"`
	MemberID   string `json:"member_id"`
	LinkedAt   string `json:"linked_at"`
	LastSyncAt string `json:"last_sync_at"`
	SyncStatus string `json:"sync_status"`
	IsPrimary  bool   `json:"is_primary"`
}

// =============================================================================
// BALANCE, TIER & STREAK TYPES
// =============================================================================

// BalanceDTO represents the points balance.
type BalanceDTO struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Redeemed  int `json:"redeemed"`
}

// TierDTO represents one loyalty tier definition.
type TierDTO struct {
	Level             string   `json:"level"`
	Name              string   `json:"name"`
	MinLifetimePoints int      `json:"min_lifetime_points"`
	PointsMultiplier  float64  `json:"points_multiplier"`
	Benefits          []string `json:"benefits"`
}

// TierProgressDTO describes progress toward the next tier.
type TierProgressDTO struct {
	Current      TierDTO  `json:"current"`
	Next         *TierDTO `json:"next,omitempty"`
	Progress     float64  `json:"progress"`
	PointsNeeded int      `json:"points_needed"`
}

// StreakDTO represents the weekly shopping streak.
type StreakDTO struct {
	CurrentStreak   int     `json:"current_streak"`
	LongestStreak   int     `json:"longest_streak"`
	LastActivityAt  *string `json:"last_activity_at,omitempty"`
	StreakStartedAt *string `json:"streak_started_at,omitempty"`
	Active          bool    `json:"active"`
	Bonus           float64 `json:"bonus"`
}

// =============================================================================
// RECEIPT & LEDGER TYPES
// =============================================================================

// BasketItemDTO is one submitted product/quantity pair.
type BasketItemDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SubmitReceiptRequest submits a manual basket.
type SubmitReceiptRequest struct {
	StoreID string          `json:"store_id"`
	Items   []BasketItemDTO `json:"items"`
}

// ScanRequest simulates scanning a receipt at a store.
type ScanRequest struct {
	StoreID string `json:"store_id"`
}

// ReceiptItemDTO is one priced line on a receipt.
type ReceiptItemDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	PriceEach    string `json:"price_each"`
	LineTotal    string `json:"line_total"`
	PointsEarned int    `json:"points_earned"`
}

// ReceiptDTO represents a finalized receipt.
type ReceiptDTO struct {
	ID          string           `json:"id"`
	StoreID     string           `json:"store_id"`
	Items       []ReceiptItemDTO `json:"items"`
	Subtotal    string           `json:"subtotal"`
	TotalPoints int              `json:"total_points"`
	BonusPoints int              `json:"bonus_points"`
	ScannedAt   string           `json:"scanned_at"`
	Method      string           `json:"method"`
}

// SubmitReceiptResponse bundles everything a submission changed.
type SubmitReceiptResponse struct {
	Receipt              ReceiptDTO           `json:"receipt"`
	PointsEarned         int                  `json:"points_earned"`
	Balance              BalanceDTO           `json:"balance"`
	Tier                 TierProgressDTO      `json:"tier"`
	Streak               StreakDTO            `json:"streak"`
	CompletedChallenges  []ActiveChallengeDTO `json:"completed_challenges"`
	UnlockedAchievements []AchievementDTO     `json:"unlocked_achievements"`
}

// TransactionDTO represents a points ledger entry.
type TransactionDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
	StoreID     string `json:"store_id,omitempty"`
	ReceiptID   string `json:"receipt_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// =============================================================================
// CHALLENGE & ACHIEVEMENT TYPES
// =============================================================================

// ActiveChallengeDTO represents a live challenge instance.
type ActiveChallengeDTO struct {
	ID           string  `json:"id"`
	ChallengeID  string  `json:"challenge_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	Frequency    string  `json:"frequency"`
	Progress     float64 `json:"progress"`
	Goal         float64 `json:"goal"`
	StartDate    string  `json:"start_date"`
	ExpiresAt    string  `json:"expires_at"`
	Completed    bool    `json:"completed"`
	RewardPoints int     `json:"reward_points"`
}

// AchievementDTO represents an achievement and its unlock state.
type AchievementDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Rarity      string  `json:"rarity"`
	Unlocked    bool    `json:"unlocked"`
	UnlockedAt  *string `json:"unlocked_at,omitempty"`
}

// =============================================================================
// REDEMPTION TYPES
// =============================================================================

// RedemptionOptionDTO represents one redemption option.
type RedemptionOptionDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	PointsCost  int    `json:"points_cost"`
	DollarValue string `json:"dollar_value,omitempty"`
	MinTier     string `json:"min_tier"`
	Affordable  bool   `json:"affordable"`
	TierMet     bool   `json:"tier_met"`
}

// RedeemRequest spends points on a redemption option.
type RedeemRequest struct {
	OptionID string `json:"option_id"`
}

// RedeemResponse reports the result of a redemption.
type RedeemResponse struct {
	Balance     BalanceDTO     `json:"balance"`
	Transaction TransactionDTO `json:"transaction"`
}

// StatsDTO is the aggregate statistics bundle.
type StatsDTO struct {
	TotalReceipts    int    `json:"total_receipts"`
	TotalItems       int    `json:"total_items"`
	TotalPoints      int    `json:"total_points"`
	CurrentStreak    int    `json:"current_streak"`
	LinkedStores     int    `json:"linked_stores"`
	UniqueCategories int    `json:"unique_categories"`
	HealthyItemCount int    `json:"healthy_item_count"`
	LifetimePoints   int    `json:"lifetime_points"`
	Tier             string `json:"tier"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toProductDTO(p engine.Product) ProductDTO {
	stores := make([]string, len(p.AvailableAt))
	for i, s := range p.AvailableAt {
		stores[i] = string(s)
	}
	dto := ProductDTO{
		ID:          string(p.ID),
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    string(p.Category),
		ServingSize: p.ServingSize,
		Price:       p.Price.StringFixed(2),
		Nutrition: NutritionDTO{
			Calories:     p.Nutrition.Calories,
			TotalFat:     p.Nutrition.TotalFat,
			SaturatedFat: p.Nutrition.SaturatedFat,
			Sodium:       p.Nutrition.Sodium,
			TotalCarbs:   p.Nutrition.TotalCarbs,
			Fiber:        p.Nutrition.Fiber,
			Sugar:        p.Nutrition.Sugar,
			Protein:      p.Nutrition.Protein,
			Organic:      p.Nutrition.Organic,
			WholeGrain:   p.Nutrition.WholeGrain,
			LowSodium:    p.Nutrition.LowSodium,
			HighFiber:    p.Nutrition.HighFiber,
			PlantBased:   p.Nutrition.PlantBased,
		},
		AvailableAt: stores,
	}
	if p.Score != nil {
		dto.HealthScore = &HealthScoreDTO{
			Grade:          string(p.Score.Grade),
			NumericScore:   p.Score.NumericScore,
			NegativePoints: p.Score.NegativePoints,
			PositivePoints: p.Score.PositivePoints,
			BonusPoints:    p.Score.BonusPoints,
		}
	}
	return dto
}

func toProfileDTO(p engine.UserProfile) ProfileDTO {
	goals := make([]string, len(p.HealthGoals))
	for i, g := range p.HealthGoals {
		goals[i] = string(g)
	}
	dto := ProfileDTO{
		ID:                 p.ID,
		Name:               p.Name,
		HealthGoals:        goals,
		OnboardingComplete: p.OnboardingComplete,
	}
	if !p.CreatedAt.IsZero() {
		dto.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if !p.LastActiveAt.IsZero() {
		dto.LastActiveAt = p.LastActiveAt.Format(time.RFC3339)
	}
	return dto
}

func toLinkedStoreDTO(ls engine.LinkedStore) LinkedStoreDTO {
	return LinkedStoreDTO{
		StoreID:    string(ls.StoreID),
		MemberID:   ls.MemberID,
		LinkedAt:   ls.LinkedAt.Format(time.RFC3339),
		LastSyncAt: ls.LastSyncAt.Format(time.RFC3339),
		SyncStatus: ls.SyncStatus,
		IsPrimary:  ls.IsPrimary,
	}
}

func toBalanceDTO(b engine.PointsBalance) BalanceDTO {
	return BalanceDTO{Total: b.Total, Available: b.Available, Redeemed: b.Redeemed}
}

func toTierDTO(t engine.Tier) TierDTO {
	return TierDTO{
		Level:             string(t.Level),
		Name:              t.Name,
		MinLifetimePoints: t.MinLifetimePoints,
		PointsMultiplier:  t.PointsMultiplier,
		Benefits:          t.Benefits,
	}
}

func toTierProgressDTO(tp engine.TierProgress) TierProgressDTO {
	dto := TierProgressDTO{
		Current:      toTierDTO(engine.TierByLevel(tp.Current)),
		Progress:     tp.Progress,
		PointsNeeded: tp.PointsNeeded,
	}
	if tp.Next != nil {
		next := toTierDTO(engine.TierByLevel(*tp.Next))
		dto.Next = &next
	}
	return dto
}

func toStreakDTO(s engine.Streak, now time.Time) StreakDTO {
	dto := StreakDTO{
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
		Active:        engine.IsStreakActive(s, now),
		Bonus:         engine.StreakBonus(s),
	}
	if s.LastActivityAt != nil {
		v := s.LastActivityAt.Format(time.RFC3339)
		dto.LastActivityAt = &v
	}
	if s.StreakStartedAt != nil {
		v := s.StreakStartedAt.Format(time.RFC3339)
		dto.StreakStartedAt = &v
	}
	return dto
}

func toReceiptDTO(r engine.Receipt) ReceiptDTO {
	items := make([]ReceiptItemDTO, len(r.Items))
	for i, item := range r.Items {
		items[i] = ReceiptItemDTO{
			ProductID:    string(item.ProductID),
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			PriceEach:    item.PriceEach.StringFixed(2),
			LineTotal:    item.LineTotal.StringFixed(2),
			PointsEarned: item.PointsEarned,
		}
	}
	return ReceiptDTO{
		ID:          string(r.ID),
		StoreID:     string(r.StoreID),
		Items:       items,
		Subtotal:    r.Subtotal.StringFixed(2),
		TotalPoints: r.TotalPoints,
		BonusPoints: r.BonusPoints,
		ScannedAt:   r.ScannedAt.Format(time.RFC3339),
		Method:      string(r.Method),
	}
}

func toTransactionDTO(tx engine.PointsTransaction) TransactionDTO {
	return TransactionDTO{
		ID:          string(tx.ID),
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		StoreID:     string(tx.StoreID),
		ReceiptID:   string(tx.ReceiptID),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionDTOs(txs []engine.PointsTransaction) []TransactionDTO {
	dtos := make([]TransactionDTO, len(txs))
	for i, tx := range txs {
		dtos[i] = toTransactionDTO(tx)
	}
	return dtos
}

func toActiveChallengeDTO(ac engine.ActiveChallenge) ActiveChallengeDTO {
	return ActiveChallengeDTO{
		ID:           ac.ID,
		ChallengeID:  string(ac.Challenge.ID),
		Title:        ac.Challenge.Title,
		Description:  ac.Challenge.Description,
		Type:         string(ac.Challenge.Type),
		Frequency:    string(ac.Challenge.Frequency),
		Progress:     ac.Progress,
		Goal:         ac.Goal,
		StartDate:    ac.StartDate.Format(time.RFC3339),
		ExpiresAt:    ac.ExpiresAt.Format(time.RFC3339),
		Completed:    ac.Completed,
		RewardPoints: ac.Challenge.RewardPoints,
	}
}

func toAchievementDTO(a engine.Achievement) AchievementDTO {
	dto := AchievementDTO{
		ID:          string(a.ID),
		Name:        a.Name,
		Description: a.Description,
		Category:    a.Category,
		Rarity:      a.Rarity,
		Unlocked:    a.UnlockedAt != nil,
	}
	if a.UnlockedAt != nil {
		v := a.UnlockedAt.Format(time.RFC3339)
		dto.UnlockedAt = &v
	}
	return dto
}

func toStatsDTO(s engine.Stats) StatsDTO {
	return StatsDTO{
		TotalReceipts:    s.TotalReceipts,
		TotalItems:       s.TotalItems,
		TotalPoints:      s.TotalPoints,
		CurrentStreak:    s.CurrentStreak,
		LinkedStores:     s.LinkedStores,
		UniqueCategories: s.UniqueCategories,
		HealthyItemCount: s.HealthyItemCount,
		LifetimePoints:   s.LifetimePoints,
		Tier:             string(s.Tier),
	}
}

func toRedemptionOptionDTO(opt catalog.RedemptionOption, balance engine.PointsBalance, tier engine.TierLevel) RedemptionOptionDTO {
	dto := RedemptionOptionDTO{
		ID:          opt.ID,
		Name:        opt.Name,
		Description: opt.Description,
		Type:        string(opt.Type),
		PointsCost:  opt.PointsCost,
		MinTier:     string(opt.MinTier),
		Affordable:  balance.Available >= opt.PointsCost,
		TierMet:     engine.TierRank(tier) >= engine.TierRank(opt.MinTier),
	}
	if !opt.DollarValue.IsZero() {
		dto.DollarValue = opt.DollarValue.StringFixed(2)
	}
	return dto
}
