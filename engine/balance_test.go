package engine_test

import (
	"errors"
	"testing"

	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// EARN TESTS
// =============================================================================

func TestAddPoints(t *testing.T) {
	b := engine.PointsBalance{Total: 100, Available: 60, Redeemed: 40}

	got := engine.AddPoints(b, 25)

	if got.Total != 125 || got.Available != 85 || got.Redeemed != 40 {
		t.Errorf("expected 125/85/40, got %d/%d/%d", got.Total, got.Available, got.Redeemed)
	}
	if got.Available != got.Total-got.Redeemed {
		t.Error("available must equal total minus redeemed")
	}
}

func TestAddPoints_NonPositiveIgnored(t *testing.T) {
	b := engine.PointsBalance{Total: 100, Available: 100}

	if got := engine.AddPoints(b, 0); got != b {
		t.Errorf("adding zero should be a no-op, got %+v", got)
	}
	if got := engine.AddPoints(b, -50); got != b {
		t.Errorf("adding a negative amount should be a no-op, got %+v", got)
	}
}

// =============================================================================
// REDEEM TESTS
// =============================================================================

func TestRedeemPoints(t *testing.T) {
	b := engine.PointsBalance{Total: 1000, Available: 700, Redeemed: 300}

	got, err := engine.RedeemPoints(b, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Total != 1000 {
		t.Errorf("redemption must not change lifetime total, got %d", got.Total)
	}
	if got.Available != 200 || got.Redeemed != 800 {
		t.Errorf("expected available 200 / redeemed 800, got %d/%d", got.Available, got.Redeemed)
	}
	if got.Available != got.Total-got.Redeemed {
		t.Error("available must equal total minus redeemed")
	}
}

func TestRedeemPoints_Insufficient(t *testing.T) {
	// GIVEN: 100 available points
	// WHEN: Redeeming 150
	// THEN: Denied with a structured error; the balance is untouched

	b := engine.PointsBalance{Total: 400, Available: 100, Redeemed: 300}

	got, err := engine.RedeemPoints(b, 150)

	if !errors.Is(err, engine.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	var detail *engine.InsufficientBalanceError
	if !errors.As(err, &detail) {
		t.Fatal("expected an InsufficientBalanceError")
	}
	if detail.Available != 100 || detail.Requested != 150 {
		t.Errorf("expected available 100 / requested 150, got %d/%d",
			detail.Available, detail.Requested)
	}
	if got != b {
		t.Errorf("a denied redemption must leave the balance unchanged, got %+v", got)
	}
}

func TestRedeemPoints_ExactBalance(t *testing.T) {
	b := engine.PointsBalance{Total: 500, Available: 500}

	got, err := engine.RedeemPoints(b, 500)
	if err != nil {
		t.Fatalf("redeeming the exact available balance should succeed: %v", err)
	}
	if got.Available != 0 || got.Redeemed != 500 {
		t.Errorf("expected available 0 / redeemed 500, got %d/%d", got.Available, got.Redeemed)
	}
}

func TestRedeemPoints_NonPositiveIsNoOp(t *testing.T) {
	b := engine.PointsBalance{Total: 100, Available: 100}

	got, err := engine.RedeemPoints(b, 0)
	if err != nil || got != b {
		t.Errorf("redeeming zero should be a no-op, got %+v, %v", got, err)
	}
	got, err = engine.RedeemPoints(b, -10)
	if err != nil || got != b {
		t.Errorf("redeeming a negative amount should be a no-op, got %+v, %v", got, err)
	}
}
