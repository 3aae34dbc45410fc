package engine_test

import (
	"testing"

	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// TIER DERIVATION TESTS
// =============================================================================

func TestTierFor_Thresholds(t *testing.T) {
	cases := []struct {
		points int
		want   engine.TierLevel
	}{
		{0, engine.TierBronze},
		{499, engine.TierBronze},
		{500, engine.TierSilver},
		{1999, engine.TierSilver},
		{2000, engine.TierGold},
		{4999, engine.TierGold},
		{5000, engine.TierPlatinum},
		{100000, engine.TierPlatinum},
	}
	for _, c := range cases {
		if got := engine.TierFor(c.points); got != c.want {
			t.Errorf("TierFor(%d) = %s, want %s", c.points, got, c.want)
		}
	}
}

func TestTierMultiplier(t *testing.T) {
	cases := map[engine.TierLevel]float64{
		engine.TierBronze:   1.0,
		engine.TierSilver:   1.25,
		engine.TierGold:     1.5,
		engine.TierPlatinum: 2.0,
	}
	for level, want := range cases {
		if got := engine.TierMultiplier(level); got != want {
			t.Errorf("TierMultiplier(%s) = %v, want %v", level, got, want)
		}
	}
}

func TestTierByLevel_UnknownFallsBackToBronze(t *testing.T) {
	tier := engine.TierByLevel("diamond")
	if tier.Level != engine.TierBronze {
		t.Errorf("unknown level should fall back to bronze, got %s", tier.Level)
	}
}

func TestTierRank(t *testing.T) {
	if engine.TierRank(engine.TierBronze) != 0 || engine.TierRank(engine.TierPlatinum) != 3 {
		t.Error("tier ranks should follow bronze < silver < gold < platinum")
	}
	if engine.TierRank("diamond") != -1 {
		t.Error("unknown tier should rank -1")
	}
}

// =============================================================================
// TIER PROGRESS TESTS
// =============================================================================

func TestProgressToNext_MidBronze(t *testing.T) {
	// GIVEN: 250 lifetime points (halfway from bronze to silver)
	// THEN: 50% progress with 250 points needed

	p := engine.ProgressToNext(250)

	if p.Current != engine.TierBronze {
		t.Errorf("expected bronze, got %s", p.Current)
	}
	if p.Next == nil || *p.Next != engine.TierSilver {
		t.Errorf("expected next tier silver, got %v", p.Next)
	}
	if p.Progress != 0.5 {
		t.Errorf("expected progress 0.5, got %v", p.Progress)
	}
	if p.PointsNeeded != 250 {
		t.Errorf("expected 250 points needed, got %d", p.PointsNeeded)
	}
}

func TestProgressToNext_TopTier(t *testing.T) {
	// GIVEN: Platinum lifetime points
	// THEN: No next tier, progress pinned at 1

	p := engine.ProgressToNext(7500)

	if p.Current != engine.TierPlatinum {
		t.Errorf("expected platinum, got %s", p.Current)
	}
	if p.Next != nil {
		t.Errorf("expected no next tier, got %v", *p.Next)
	}
	if p.Progress != 1 || p.PointsNeeded != 0 {
		t.Errorf("expected progress 1 / needed 0, got %v / %d", p.Progress, p.PointsNeeded)
	}
}
