package engine_test

import (
	"testing"

	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// HEALTH SCORING TESTS
// =============================================================================

func TestScore_LeafyGreen_GradeA(t *testing.T) {
	// GIVEN: Spinach-like produce: near-zero negatives, decent fiber and
	//        protein, organic/low-sodium/plant-based flags
	// WHEN: Scoring in the fruits_vegetables category
	// THEN: Grade A with the produce bonus baked into positive points

	n := engine.NutritionFacts{
		Calories: 20, SaturatedFat: 0, Sodium: 65, Sugar: 0,
		Fiber: 2, Protein: 2,
		Organic: true, LowSodium: true, PlantBased: true,
	}

	s := engine.Score(n, engine.CategoryFruitsVegetables)

	if s.Grade != engine.GradeA {
		t.Errorf("expected grade A, got %s", s.Grade)
	}
	if s.NegativePoints != 0 {
		t.Errorf("expected 0 negative points, got %d", s.NegativePoints)
	}
	// fiber 2 -> 2, protein 2 -> 1, produce -> 5
	if s.PositivePoints != 8 {
		t.Errorf("expected 8 positive points, got %d", s.PositivePoints)
	}
	// organic 3 + low sodium 2 + plant based 1
	if s.BonusPoints != 6 {
		t.Errorf("expected 6 bonus points, got %d", s.BonusPoints)
	}
	// raw -8 -> round(100 - 7/55*100) = 87, plus bonus 6
	if s.NumericScore != 93 {
		t.Errorf("expected numeric score 93, got %d", s.NumericScore)
	}
}

func TestScore_ChocolateBar_GradeC(t *testing.T) {
	// GIVEN: A candy bar: high sugar and saturated fat, no flags
	// WHEN: Scoring in the snacks category
	// THEN: Grade C with numeric score in the mid range

	n := engine.NutritionFacts{
		Calories: 220, SaturatedFat: 8, Sodium: 35, Sugar: 24,
		Fiber: 1, Protein: 3,
	}

	s := engine.Score(n, engine.CategorySnacks)

	if s.Grade != engine.GradeC {
		t.Errorf("expected grade C, got %s", s.Grade)
	}
	// sugar 24 -> 5, sat fat 8 -> 7, sodium -> 0, calories -> 0
	if s.NegativePoints != 12 {
		t.Errorf("expected 12 negative points, got %d", s.NegativePoints)
	}
	if s.PositivePoints != 2 {
		t.Errorf("expected 2 positive points, got %d", s.PositivePoints)
	}
	// raw 10 -> round(100 - 25/55*100) = 55
	if s.NumericScore != 55 {
		t.Errorf("expected numeric score 55, got %d", s.NumericScore)
	}
}

func TestScore_WorstCase_GradeF(t *testing.T) {
	// GIVEN: Maxed-out sugar, saturated fat, and sodium
	// WHEN: Scoring
	// THEN: Grade F

	n := engine.NutritionFacts{
		Calories: 400, SaturatedFat: 10, Sodium: 1000, Sugar: 45,
	}

	s := engine.Score(n, engine.CategoryPantry)

	if s.Grade != engine.GradeF {
		t.Errorf("expected grade F, got %s", s.Grade)
	}
	// sugar 9 + sat fat 9 + sodium 10 + calories 1 = 29
	if s.NegativePoints != 29 {
		t.Errorf("expected 29 negative points, got %d", s.NegativePoints)
	}
	// raw 29 -> round(100 - 44/55*100) = 20
	if s.NumericScore != 20 {
		t.Errorf("expected numeric score 20, got %d", s.NumericScore)
	}
}

func TestScore_BonusNeverChangesGrade(t *testing.T) {
	// GIVEN: A raw score of 3 (grade C, one past the B cutoff) and every
	//        bonus flag set
	// WHEN: Scoring
	// THEN: All 10 bonus points land on the numeric score but the letter
	//       stays C

	n := engine.NutritionFacts{
		Calories: 100, SaturatedFat: 1, Sodium: 100, Sugar: 10,
		Organic: true, WholeGrain: true, LowSodium: true, HighFiber: true, PlantBased: true,
	}

	s := engine.Score(n, engine.CategoryPantry)

	if s.Grade != engine.GradeC {
		t.Errorf("expected grade C, got %s", s.Grade)
	}
	if s.BonusPoints != 10 {
		t.Errorf("expected bonus capped at 10, got %d", s.BonusPoints)
	}
	// raw 3 -> 67, plus capped bonus 10
	if s.NumericScore != 77 {
		t.Errorf("expected numeric score 77, got %d", s.NumericScore)
	}
}

func TestScore_NumericScoreClampedAt100(t *testing.T) {
	// GIVEN: Maximal positives (fiber 5, protein 5, produce 5) and a bonus
	// WHEN: Scoring
	// THEN: Numeric score caps at 100

	n := engine.NutritionFacts{
		Fiber: 10, Protein: 20, Organic: true,
	}

	s := engine.Score(n, engine.CategoryFruitsVegetables)

	if s.NumericScore != 100 {
		t.Errorf("expected numeric score clamped to 100, got %d", s.NumericScore)
	}
	if s.Grade != engine.GradeA {
		t.Errorf("expected grade A, got %s", s.Grade)
	}
}

func TestScore_ThresholdBoundaryIsInclusive(t *testing.T) {
	// GIVEN: Sugar exactly at the first breakpoint (4.5g)
	// WHEN: Scoring
	// THEN: It scores 0 negative sugar points; just over scores 1

	at := engine.Score(engine.NutritionFacts{Sugar: 4.5}, engine.CategoryPantry)
	over := engine.Score(engine.NutritionFacts{Sugar: 4.6}, engine.CategoryPantry)

	if at.NegativePoints != 0 {
		t.Errorf("expected 0 negative points at the breakpoint, got %d", at.NegativePoints)
	}
	if over.NegativePoints != 1 {
		t.Errorf("expected 1 negative point just over the breakpoint, got %d", over.NegativePoints)
	}
}

func TestGradeLabel(t *testing.T) {
	cases := map[engine.HealthGrade]string{
		engine.GradeA: "Excellent",
		engine.GradeB: "Good",
		engine.GradeC: "Average",
		engine.GradeD: "Poor",
		engine.GradeF: "Unhealthy",
	}
	for grade, want := range cases {
		if got := engine.GradeLabel(grade); got != want {
			t.Errorf("GradeLabel(%s) = %q, want %q", grade, got, want)
		}
	}
}
