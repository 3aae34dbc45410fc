/*
errors.go - Centralized error types for the rewards engine

PURPOSE:
  All error values in one place for consistency and discoverability.
  The engine favors total functions: scoring, points, streaks, and
  condition evaluation never fail. Errors exist only at the redemption
  boundary and in the storage collaborator.

USAGE:
  if errors.Is(err, engine.ErrInsufficientBalance) {
      // surface as a client error, balance unchanged
  }

SEE ALSO:
  - balance.go: The redemption denial path
  - store.go: Storage interface that returns these errors
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInsufficientBalance is returned when a redemption exceeds the
	// available balance. The balance is left unchanged.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrProductNotFound is returned when a catalog lookup misses.
	ErrProductNotFound = errors.New("product not found")

	// ErrStoreAlreadyLinked is returned when linking a store twice.
	ErrStoreAlreadyLinked = errors.New("store already linked")

	// ErrStoreNotLinked is returned when unlinking a store that was
	// never linked.
	ErrStoreNotLinked = errors.New("store not linked")

	// ErrTierTooLow is returned when a redemption option requires a
	// higher loyalty tier.
	ErrTierTooLow = errors.New("tier too low for redemption option")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InsufficientBalanceError reports how short a redemption fell.
type InsufficientBalanceError struct {
	Available int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: available %d, requested %d",
		e.Available, e.Requested)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input
// rather than an internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrStoreAlreadyLinked) ||
		errors.Is(err, ErrStoreNotLinked) ||
		errors.Is(err, ErrTierTooLow)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound)
}
