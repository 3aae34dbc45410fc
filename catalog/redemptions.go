package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// REDEMPTION CATALOG
// =============================================================================

type RedemptionType string

const (
	RedemptionDiscount RedemptionType = "store_discount"
	RedemptionRecipe   RedemptionType = "recipe_box"
	RedemptionDonation RedemptionType = "food_bank_donation"
)

// TransactionType maps a redemption type to its ledger entry type.
// Unknown types fall back to discount, matching the redeem flow's
// permissive handling elsewhere.
func (t RedemptionType) TransactionType() engine.TransactionType {
	switch t {
	case RedemptionRecipe:
		return engine.TxRedeemRecipe
	case RedemptionDonation:
		return engine.TxRedeemDonation
	default:
		return engine.TxRedeemDiscount
	}
}

// RedemptionOption is something points can be spent on. DollarValue is
// zero for non-discount options. MinTier gates the option; bronze means
// available to everyone.
type RedemptionOption struct {
	ID          string
	Name        string
	Description string
	Type        RedemptionType
	PointsCost  int
	DollarValue decimal.Decimal
	MinTier     engine.TierLevel
}

var redemptions = []RedemptionOption{
	{ID: "r1", Name: "$5 Store Discount", Description: "Save $5 on your next purchase",
		Type: RedemptionDiscount, PointsCost: 500, DollarValue: decimal.NewFromInt(5), MinTier: engine.TierBronze},
	{ID: "r2", Name: "$10 Store Discount", Description: "Save $10 on your next purchase",
		Type: RedemptionDiscount, PointsCost: 900, DollarValue: decimal.NewFromInt(10), MinTier: engine.TierBronze},
	{ID: "r3", Name: "$25 Store Discount", Description: "Save $25 on your next purchase",
		Type: RedemptionDiscount, PointsCost: 2000, DollarValue: decimal.NewFromInt(25), MinTier: engine.TierSilver},
	{ID: "r4", Name: "Heart-Healthy Kit", Description: "Recipes & ingredients for heart-healthy meals",
		Type: RedemptionRecipe, PointsCost: 750, MinTier: engine.TierBronze},
	{ID: "r5", Name: "Protein Meal Prep", Description: "High-protein meal prep recipes & tips",
		Type: RedemptionRecipe, PointsCost: 750, MinTier: engine.TierBronze},
	{ID: "r6", Name: "Mediterranean Box", Description: "Mediterranean diet recipe collection",
		Type: RedemptionRecipe, PointsCost: 1000, MinTier: engine.TierSilver},
	{ID: "r7", Name: "Donate 10 Meals", Description: "Feed 10 people at your local food bank",
		Type: RedemptionDonation, PointsCost: 300, MinTier: engine.TierBronze},
	{ID: "r8", Name: "Donate 25 Meals", Description: "Feed 25 people at your local food bank",
		Type: RedemptionDonation, PointsCost: 600, MinTier: engine.TierBronze},
	{ID: "r9", Name: "Donate 50 Meals", Description: "Feed 50 people at your local food bank",
		Type: RedemptionDonation, PointsCost: 1000, MinTier: engine.TierBronze},
}

// Redemptions returns every redemption option.
func Redemptions() []RedemptionOption {
	out := make([]RedemptionOption, len(redemptions))
	copy(out, redemptions)
	return out
}

// RedemptionByID looks up one redemption option.
func RedemptionByID(id string) (RedemptionOption, bool) {
	for _, r := range redemptions {
		if r.ID == id {
			return r, true
		}
	}
	return RedemptionOption{}, false
}
