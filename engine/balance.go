/*
balance.go - Points balance operations

PURPOSE:
  Add and redeem operations over the PointsBalance snapshot. This is the
  only part of the engine with an explicit failure mode: redeeming more
  than the available balance is denied and leaves the balance unchanged.

INVARIANT:
  Available == Total - Redeemed after every operation. Total is
  monotonically non-decreasing except by a full data reset.

SEE ALSO:
  - errors.go: ErrInsufficientBalance / InsufficientBalanceError
  - store.go: The collaborator that persists balance snapshots
*/
package engine

// AddPoints credits earned points to both lifetime total and available
// balance. Negative or zero amounts are ignored.
func AddPoints(b PointsBalance, amount int) PointsBalance {
	if amount <= 0 {
		return b
	}
	return PointsBalance{
		Total:     b.Total + amount,
		Available: b.Available + amount,
		Redeemed:  b.Redeemed,
	}
}

// RedeemPoints debits the available balance. When amount exceeds the
// available balance the original balance is returned unchanged together
// with an InsufficientBalanceError (no partial debit).
func RedeemPoints(b PointsBalance, amount int) (PointsBalance, error) {
	if amount <= 0 {
		return b, nil
	}
	if amount > b.Available {
		return b, &InsufficientBalanceError{Available: b.Available, Requested: amount}
	}
	return PointsBalance{
		Total:     b.Total,
		Available: b.Available - amount,
		Redeemed:  b.Redeemed + amount,
	}, nil
}
