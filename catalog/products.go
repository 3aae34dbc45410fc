package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// BUILT-IN PRODUCT DATA
// =============================================================================
// Per-serving nutrition. Sodium in mg, everything else grams except
// calories. Availability references the store directory in stores.go.

func price(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

var everywhere = []engine.StoreID{"kroger", "safeway", "walmart", "whole_foods", "trader_joes", "target"}

func builtinProducts() []engine.Product {
	return []engine.Product{
		// ── Fruits & Vegetables ──────────────────────────────────────
		{
			ID: "fv-spinach", Name: "Baby Spinach", Brand: "Earthbound Farm",
			Category: engine.CategoryFruitsVegetables, ServingSize: "85g", Price: price(3.99),
			Nutrition: engine.NutritionFacts{
				Calories: 20, TotalFat: 0, SaturatedFat: 0, Sodium: 65,
				TotalCarbs: 3, Fiber: 2, Sugar: 0, Protein: 2,
				Organic: true, LowSodium: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "fv-banana", Name: "Bananas", Brand: "Chiquita",
			Category: engine.CategoryFruitsVegetables, ServingSize: "118g", Price: price(0.59),
			Nutrition: engine.NutritionFacts{
				Calories: 105, TotalFat: 0.4, SaturatedFat: 0.1, Sodium: 1,
				TotalCarbs: 27, Fiber: 3.1, Sugar: 14, Protein: 1.3,
				LowSodium: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "fv-blueberries", Name: "Blueberries", Brand: "Driscoll's",
			Category: engine.CategoryFruitsVegetables, ServingSize: "148g", Price: price(4.49),
			Nutrition: engine.NutritionFacts{
				Calories: 85, TotalFat: 0.5, SaturatedFat: 0, Sodium: 1,
				TotalCarbs: 21, Fiber: 3.6, Sugar: 15, Protein: 1.1,
				Organic: true, LowSodium: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "fv-broccoli", Name: "Broccoli Crowns", Brand: "Fresh Market",
			Category: engine.CategoryFruitsVegetables, ServingSize: "91g", Price: price(2.29),
			Nutrition: engine.NutritionFacts{
				Calories: 31, TotalFat: 0.3, SaturatedFat: 0, Sodium: 30,
				TotalCarbs: 6, Fiber: 2.4, Sugar: 1.5, Protein: 2.5,
				LowSodium: true, HighFiber: false, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "fv-avocado", Name: "Hass Avocado", Brand: "Calavo",
			Category: engine.CategoryFruitsVegetables, ServingSize: "68g", Price: price(1.79),
			Nutrition: engine.NutritionFacts{
				Calories: 114, TotalFat: 10.5, SaturatedFat: 1.5, Sodium: 5,
				TotalCarbs: 6, Fiber: 4.6, Sugar: 0.2, Protein: 1.3,
				LowSodium: true, HighFiber: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "fv-carrots", Name: "Baby Carrots", Brand: "Bolthouse Farms",
			Category: engine.CategoryFruitsVegetables, ServingSize: "85g", Price: price(1.99),
			Nutrition: engine.NutritionFacts{
				Calories: 35, TotalFat: 0.1, SaturatedFat: 0, Sodium: 65,
				TotalCarbs: 8, Fiber: 2.5, Sugar: 4, Protein: 0.8,
				Organic: true, LowSodium: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},

		// ── Whole Grains ─────────────────────────────────────────────
		{
			ID: "wg-oats", Name: "Old Fashioned Rolled Oats", Brand: "Quaker",
			Category: engine.CategoryWholeGrains, ServingSize: "40g", Price: price(4.29),
			Nutrition: engine.NutritionFacts{
				Calories: 150, TotalFat: 3, SaturatedFat: 0.5, Sodium: 0,
				TotalCarbs: 27, Fiber: 4, Sugar: 1, Protein: 5,
				WholeGrain: true, LowSodium: true, HighFiber: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "wg-quinoa", Name: "Organic Quinoa", Brand: "Ancient Harvest",
			Category: engine.CategoryWholeGrains, ServingSize: "45g", Price: price(6.99),
			Nutrition: engine.NutritionFacts{
				Calories: 170, TotalFat: 2.5, SaturatedFat: 0, Sodium: 0,
				TotalCarbs: 30, Fiber: 3, Sugar: 1, Protein: 6,
				Organic: true, WholeGrain: true, LowSodium: true, PlantBased: true,
			},
			AvailableAt: []engine.StoreID{"whole_foods", "trader_joes", "kroger", "safeway"},
		},
		{
			ID: "wg-bread", Name: "100% Whole Wheat Bread", Brand: "Dave's Killer Bread",
			Category: engine.CategoryWholeGrains, ServingSize: "42g", Price: price(5.49),
			Nutrition: engine.NutritionFacts{
				Calories: 110, TotalFat: 1.5, SaturatedFat: 0, Sodium: 170,
				TotalCarbs: 22, Fiber: 4, Sugar: 4, Protein: 5,
				Organic: true, WholeGrain: true, HighFiber: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "wg-brown-rice", Name: "Brown Rice", Brand: "Lundberg",
			Category: engine.CategoryWholeGrains, ServingSize: "45g", Price: price(3.79),
			Nutrition: engine.NutritionFacts{
				Calories: 160, TotalFat: 1.5, SaturatedFat: 0, Sodium: 0,
				TotalCarbs: 34, Fiber: 2, Sugar: 0, Protein: 3,
				WholeGrain: true, LowSodium: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},

		// ── Lean Proteins ────────────────────────────────────────────
		{
			ID: "lp-chicken", Name: "Boneless Chicken Breast", Brand: "Foster Farms",
			Category: engine.CategoryLeanProteins, ServingSize: "112g", Price: price(6.49),
			Nutrition: engine.NutritionFacts{
				Calories: 120, TotalFat: 1.5, SaturatedFat: 0.5, Sodium: 75,
				TotalCarbs: 0, Fiber: 0, Sugar: 0, Protein: 26,
				LowSodium: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "lp-salmon", Name: "Atlantic Salmon Fillet", Brand: "Wild Planet",
			Category: engine.CategoryLeanProteins, ServingSize: "113g", Price: price(9.99),
			Nutrition: engine.NutritionFacts{
				Calories: 177, TotalFat: 11, SaturatedFat: 2.5, Sodium: 50,
				TotalCarbs: 0, Fiber: 0, Sugar: 0, Protein: 17,
				LowSodium: true,
			},
			AvailableAt: []engine.StoreID{"whole_foods", "kroger", "safeway", "target"},
		},
		{
			ID: "lp-tofu", Name: "Organic Firm Tofu", Brand: "House Foods",
			Category: engine.CategoryLeanProteins, ServingSize: "85g", Price: price(2.49),
			Nutrition: engine.NutritionFacts{
				Calories: 80, TotalFat: 4.5, SaturatedFat: 0.5, Sodium: 10,
				TotalCarbs: 2, Fiber: 1, Sugar: 0, Protein: 9,
				Organic: true, LowSodium: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "lp-eggs", Name: "Large Grade A Eggs", Brand: "Vital Farms",
			Category: engine.CategoryLeanProteins, ServingSize: "50g", Price: price(5.99),
			Nutrition: engine.NutritionFacts{
				Calories: 70, TotalFat: 5, SaturatedFat: 1.5, Sodium: 70,
				TotalCarbs: 0, Fiber: 0, Sugar: 0, Protein: 6,
				Organic: true, LowSodium: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "lp-black-beans", Name: "Black Beans", Brand: "Bush's",
			Category: engine.CategoryLeanProteins, ServingSize: "130g", Price: price(1.29),
			Nutrition: engine.NutritionFacts{
				Calories: 110, TotalFat: 0.5, SaturatedFat: 0, Sodium: 130,
				TotalCarbs: 20, Fiber: 6, Sugar: 0, Protein: 7,
				HighFiber: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},

		// ── Dairy & Alternatives ─────────────────────────────────────
		{
			ID: "dy-greek-yogurt", Name: "Plain Greek Yogurt", Brand: "Fage",
			Category: engine.CategoryDairy, ServingSize: "170g", Price: price(1.79),
			Nutrition: engine.NutritionFacts{
				Calories: 90, TotalFat: 0, SaturatedFat: 0, Sodium: 65,
				TotalCarbs: 5, Fiber: 0, Sugar: 5, Protein: 18,
				LowSodium: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "dy-milk", Name: "2% Reduced Fat Milk", Brand: "Organic Valley",
			Category: engine.CategoryDairy, ServingSize: "240ml", Price: price(4.99),
			Nutrition: engine.NutritionFacts{
				Calories: 130, TotalFat: 5, SaturatedFat: 3, Sodium: 125,
				TotalCarbs: 12, Fiber: 0, Sugar: 12, Protein: 8,
				Organic: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "dy-oat-milk", Name: "Oat Milk", Brand: "Oatly",
			Category: engine.CategoryDairy, ServingSize: "240ml", Price: price(4.79),
			Nutrition: engine.NutritionFacts{
				Calories: 120, TotalFat: 5, SaturatedFat: 0.5, Sodium: 100,
				TotalCarbs: 16, Fiber: 2, Sugar: 7, Protein: 3,
				PlantBased: true,
			},
			AvailableAt: []engine.StoreID{"whole_foods", "trader_joes", "target", "kroger"},
		},
		{
			ID: "dy-cheddar", Name: "Sharp Cheddar Cheese", Brand: "Tillamook",
			Category: engine.CategoryDairy, ServingSize: "28g", Price: price(5.49),
			Nutrition: engine.NutritionFacts{
				Calories: 110, TotalFat: 9, SaturatedFat: 6, Sodium: 180,
				TotalCarbs: 1, Fiber: 0, Sugar: 0, Protein: 7,
			},
			AvailableAt: everywhere,
		},

		// ── Snacks ───────────────────────────────────────────────────
		{
			ID: "sn-almonds", Name: "Raw Almonds", Brand: "Blue Diamond",
			Category: engine.CategorySnacks, ServingSize: "28g", Price: price(7.99),
			Nutrition: engine.NutritionFacts{
				Calories: 160, TotalFat: 14, SaturatedFat: 1, Sodium: 0,
				TotalCarbs: 6, Fiber: 3.5, Sugar: 1, Protein: 6,
				LowSodium: true, HighFiber: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "sn-potato-chips", Name: "Classic Potato Chips", Brand: "Lay's",
			Category: engine.CategorySnacks, ServingSize: "28g", Price: price(3.99),
			Nutrition: engine.NutritionFacts{
				Calories: 160, TotalFat: 10, SaturatedFat: 1.5, Sodium: 170,
				TotalCarbs: 15, Fiber: 1, Sugar: 0, Protein: 2,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "sn-chocolate-bar", Name: "Milk Chocolate Bar", Brand: "Hershey's",
			Category: engine.CategorySnacks, ServingSize: "43g", Price: price(1.49),
			Nutrition: engine.NutritionFacts{
				Calories: 220, TotalFat: 13, SaturatedFat: 8, Sodium: 35,
				TotalCarbs: 26, Fiber: 1, Sugar: 24, Protein: 3,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "sn-hummus", Name: "Classic Hummus", Brand: "Sabra",
			Category: engine.CategorySnacks, ServingSize: "28g", Price: price(3.69),
			Nutrition: engine.NutritionFacts{
				Calories: 70, TotalFat: 5, SaturatedFat: 1, Sodium: 130,
				TotalCarbs: 4, Fiber: 1, Sugar: 0, Protein: 2,
				PlantBased: true,
			},
			AvailableAt: everywhere,
		},

		// ── Beverages ────────────────────────────────────────────────
		{
			ID: "bv-cola", Name: "Cola, 12-pack", Brand: "Coca-Cola",
			Category: engine.CategoryBeverages, ServingSize: "355ml", Price: price(7.99),
			Nutrition: engine.NutritionFacts{
				Calories: 140, TotalFat: 0, SaturatedFat: 0, Sodium: 45,
				TotalCarbs: 39, Fiber: 0, Sugar: 39, Protein: 0,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "bv-green-tea", Name: "Unsweetened Green Tea", Brand: "Ito En",
			Category: engine.CategoryBeverages, ServingSize: "500ml", Price: price(2.29),
			Nutrition: engine.NutritionFacts{
				Calories: 0, TotalFat: 0, SaturatedFat: 0, Sodium: 0,
				TotalCarbs: 0, Fiber: 0, Sugar: 0, Protein: 0,
				LowSodium: true, PlantBased: true,
			},
			AvailableAt: []engine.StoreID{"whole_foods", "safeway", "target", "kroger"},
		},
		{
			ID: "bv-orange-juice", Name: "100% Orange Juice", Brand: "Tropicana",
			Category: engine.CategoryBeverages, ServingSize: "240ml", Price: price(4.49),
			Nutrition: engine.NutritionFacts{
				Calories: 110, TotalFat: 0, SaturatedFat: 0, Sodium: 0,
				TotalCarbs: 26, Fiber: 0, Sugar: 22, Protein: 2,
				LowSodium: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},

		// ── Frozen ───────────────────────────────────────────────────
		{
			ID: "fz-mixed-veg", Name: "Frozen Mixed Vegetables", Brand: "Birds Eye",
			Category: engine.CategoryFrozen, ServingSize: "90g", Price: price(2.49),
			Nutrition: engine.NutritionFacts{
				Calories: 60, TotalFat: 0, SaturatedFat: 0, Sodium: 30,
				TotalCarbs: 12, Fiber: 3, Sugar: 3, Protein: 2,
				LowSodium: true, HighFiber: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "fz-pizza", Name: "Pepperoni Pizza", Brand: "DiGiorno",
			Category: engine.CategoryFrozen, ServingSize: "127g", Price: price(6.99),
			Nutrition: engine.NutritionFacts{
				Calories: 320, TotalFat: 14, SaturatedFat: 6, Sodium: 710,
				TotalCarbs: 35, Fiber: 2, Sugar: 6, Protein: 14,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "fz-berries", Name: "Frozen Mixed Berries", Brand: "Cascadian Farm",
			Category: engine.CategoryFrozen, ServingSize: "140g", Price: price(4.29),
			Nutrition: engine.NutritionFacts{
				Calories: 70, TotalFat: 0.5, SaturatedFat: 0, Sodium: 0,
				TotalCarbs: 17, Fiber: 4, Sugar: 11, Protein: 1,
				Organic: true, LowSodium: true, HighFiber: true, PlantBased: true,
			},
			AvailableAt: []engine.StoreID{"whole_foods", "target", "kroger", "safeway"},
		},

		// ── Pantry ───────────────────────────────────────────────────
		{
			ID: "pt-olive-oil", Name: "Extra Virgin Olive Oil", Brand: "California Olive Ranch",
			Category: engine.CategoryPantry, ServingSize: "15ml", Price: price(11.99),
			Nutrition: engine.NutritionFacts{
				Calories: 120, TotalFat: 14, SaturatedFat: 2, Sodium: 0,
				TotalCarbs: 0, Fiber: 0, Sugar: 0, Protein: 0,
				LowSodium: true, PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "pt-pasta-sauce", Name: "Marinara Sauce", Brand: "Rao's",
			Category: engine.CategoryPantry, ServingSize: "113g", Price: price(7.49),
			Nutrition: engine.NutritionFacts{
				Calories: 80, TotalFat: 6, SaturatedFat: 1, Sodium: 420,
				TotalCarbs: 6, Fiber: 2, Sugar: 4, Protein: 1,
				PlantBased: true,
			},
			AvailableAt: everywhere,
		},
		{
			ID: "pt-lentils", Name: "Green Lentils", Brand: "Bob's Red Mill",
			Category: engine.CategoryPantry, ServingSize: "50g", Price: price(3.49),
			Nutrition: engine.NutritionFacts{
				Calories: 170, TotalFat: 0.5, SaturatedFat: 0, Sodium: 5,
				TotalCarbs: 30, Fiber: 7, Sugar: 1, Protein: 12,
				LowSodium: true, HighFiber: true, PlantBased: true,
			},
			AvailableAt: []engine.StoreID{"whole_foods", "kroger", "safeway", "walmart"},
		},
		{
			ID: "pt-ramen", Name: "Instant Ramen", Brand: "Maruchan",
			Category: engine.CategoryPantry, ServingSize: "85g", Price: price(0.49),
			Nutrition: engine.NutritionFacts{
				Calories: 380, TotalFat: 14, SaturatedFat: 7, Sodium: 1660,
				TotalCarbs: 52, Fiber: 2, Sugar: 1, Protein: 9,
			},
			AvailableAt: everywhere,
		},
	}
}
