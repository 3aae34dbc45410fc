package catalog_test

import (
	"testing"

	"github.com/nutribucks/rewards-engine/catalog"
	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// PRODUCT CATALOG TESTS
// =============================================================================

func TestNew_AllProductsScored(t *testing.T) {
	c := catalog.New()

	if c.Len() == 0 {
		t.Fatal("built-in catalog is empty")
	}
	for _, p := range c.All() {
		if p.Score == nil {
			t.Errorf("product %s has no health score", p.ID)
		}
		if p.Price.IsZero() {
			t.Errorf("product %s has no price", p.ID)
		}
		if len(p.AvailableAt) == 0 {
			t.Errorf("product %s is available nowhere", p.ID)
		}
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	seen := make(map[engine.ProductID]bool)
	for _, p := range catalog.New().All() {
		if seen[p.ID] {
			t.Errorf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestNew_AvailabilityReferencesKnownStores(t *testing.T) {
	for _, p := range catalog.New().All() {
		for _, sid := range p.AvailableAt {
			if _, ok := catalog.StoreByID(sid); !ok {
				t.Errorf("product %s lists unknown store %s", p.ID, sid)
			}
		}
	}
}

func TestByCategory(t *testing.T) {
	c := catalog.New()

	grains := c.ByCategory(engine.CategoryWholeGrains)
	if len(grains) == 0 {
		t.Fatal("expected whole grain products")
	}
	for _, p := range grains {
		if p.Category != engine.CategoryWholeGrains {
			t.Errorf("product %s leaked into the wrong category", p.ID)
		}
	}

	if got := c.ByCategory("confectionery"); len(got) != 0 {
		t.Errorf("unknown category should return nothing, got %d products", len(got))
	}
}

func TestByID(t *testing.T) {
	c := catalog.New()

	p, ok := c.ByID("wg-oats")
	if !ok {
		t.Fatal("expected wg-oats in the catalog")
	}
	if p.Category != engine.CategoryWholeGrains {
		t.Errorf("unexpected category %s", p.Category)
	}

	if _, ok := c.ByID("no-such-product"); ok {
		t.Error("lookup of a missing product should fail")
	}
}

func TestFromProducts_ScoresUnscored(t *testing.T) {
	// GIVEN: A raw product without a precomputed score
	// WHEN: Building a catalog from it
	// THEN: The score is computed at load time

	c := catalog.FromProducts([]engine.Product{{
		ID:       "x",
		Category: engine.CategoryFruitsVegetables,
		Nutrition: engine.NutritionFacts{
			Calories: 30, Fiber: 2, Protein: 1,
		},
	}})

	p, ok := c.ByID("x")
	if !ok || p.Score == nil {
		t.Fatal("expected the product to be scored")
	}
	if p.Score.Grade == "" {
		t.Error("expected a grade")
	}
}

// =============================================================================
// STORE DIRECTORY TESTS
// =============================================================================

func TestStores_Directory(t *testing.T) {
	defs := catalog.Stores()
	if len(defs) != 8 {
		t.Fatalf("expected 8 stores in the directory, got %d", len(defs))
	}
	for _, def := range defs {
		if def.Program.MemberIDLength <= 0 {
			t.Errorf("store %s has no member id length", def.ID)
		}
		if def.Program.CardPrefix == "" {
			t.Errorf("store %s has no card prefix", def.ID)
		}
	}
}

func TestStoreByID(t *testing.T) {
	def, ok := catalog.StoreByID("walmart")
	if !ok {
		t.Fatal("expected walmart in the directory")
	}
	if def.Program.MemberIDLength != 12 {
		t.Errorf("expected 12-character member ids, got %d", def.Program.MemberIDLength)
	}

	if _, ok := catalog.StoreByID("corner-bodega"); ok {
		t.Error("unknown store should not resolve")
	}
}

// =============================================================================
// GOAL & REDEMPTION TESTS
// =============================================================================

func TestValidGoal(t *testing.T) {
	for _, g := range catalog.Goals() {
		if !catalog.ValidGoal(g.ID) {
			t.Errorf("directory goal %s should be valid", g.ID)
		}
	}
	if catalog.ValidGoal("get_swole") {
		t.Error("unknown goal should be invalid")
	}
}

func TestRedemptionByID(t *testing.T) {
	opt, ok := catalog.RedemptionByID("r1")
	if !ok {
		t.Fatal("expected r1 in the redemption catalog")
	}
	if opt.PointsCost != 500 || opt.Type != catalog.RedemptionDiscount {
		t.Errorf("unexpected option: %+v", opt)
	}

	if _, ok := catalog.RedemptionByID("r99"); ok {
		t.Error("unknown option should not resolve")
	}
}

func TestRedemptionTransactionTypes(t *testing.T) {
	cases := map[catalog.RedemptionType]engine.TransactionType{
		catalog.RedemptionDiscount: engine.TxRedeemDiscount,
		catalog.RedemptionRecipe:   engine.TxRedeemRecipe,
		catalog.RedemptionDonation: engine.TxRedeemDonation,
	}
	for rt, want := range cases {
		if got := rt.TransactionType(); got != want {
			t.Errorf("%s maps to %s, want %s", rt, got, want)
		}
	}
}
