package catalog

import "github.com/nutribucks/rewards-engine/engine"

// =============================================================================
// STORE DIRECTORY
// =============================================================================

// RewardsProgram describes a store's loyalty card format. MemberIDLength
// is the digit count validated when linking an account.
type RewardsProgram struct {
	Name           string
	CardPrefix     string
	MemberIDLength int
}

// StoreDefinition is a linkable grocery store.
type StoreDefinition struct {
	ID      engine.StoreID
	Name    string
	Program RewardsProgram
}

var stores = []StoreDefinition{
	{ID: "kroger", Name: "Kroger", Program: RewardsProgram{Name: "Kroger Plus", CardPrefix: "KRG", MemberIDLength: 10}},
	{ID: "safeway", Name: "Safeway", Program: RewardsProgram{Name: "Club Card", CardPrefix: "SFW", MemberIDLength: 10}},
	{ID: "walmart", Name: "Walmart", Program: RewardsProgram{Name: "Walmart+ Rewards", CardPrefix: "WMT", MemberIDLength: 12}},
	{ID: "whole_foods", Name: "Whole Foods", Program: RewardsProgram{Name: "Prime Rewards", CardPrefix: "WFM", MemberIDLength: 10}},
	{ID: "trader_joes", Name: "Trader Joe's", Program: RewardsProgram{Name: "Crew Rewards", CardPrefix: "TJS", MemberIDLength: 8}},
	{ID: "target", Name: "Target", Program: RewardsProgram{Name: "Target Circle", CardPrefix: "TGT", MemberIDLength: 9}},
	{ID: "costco", Name: "Costco", Program: RewardsProgram{Name: "Executive Rewards", CardPrefix: "CST", MemberIDLength: 12}},
	{ID: "publix", Name: "Publix", Program: RewardsProgram{Name: "Club Publix", CardPrefix: "PBX", MemberIDLength: 10}},
}

// Stores returns the full store directory.
func Stores() []StoreDefinition {
	out := make([]StoreDefinition, len(stores))
	copy(out, stores)
	return out
}

// StoreByID looks up one store definition.
func StoreByID(id engine.StoreID) (StoreDefinition, bool) {
	for _, s := range stores {
		if s.ID == id {
			return s, true
		}
	}
	return StoreDefinition{}, false
}
