/*
store.go - Storage collaborator interface

PURPOSE:
  Defines the persistence boundary. The engine computes over snapshots;
  a Store owns durable state and applies replace-whole-value writes per
  entity. Receipts and points transactions are append-only history.

ATOMICITY CONTRACT:
  The caller serializes each logical operation (read snapshot -> compute
  via engine -> write snapshot) so a concurrent submission cannot corrupt
  the balance invariant. Store implementations only need to make each
  individual read/write safe.

IMPLEMENTATIONS:
  - engine/store: In-memory (tests, dev)
  - store/sqlite: SQLite (production)
*/
package engine

import "context"

// Store persists all user-facing rewards state. Reads return snapshots;
// writes replace the whole value for the entity.
type Store interface {
	Profile(ctx context.Context) (UserProfile, error)
	SaveProfile(ctx context.Context, p UserProfile) error

	Balance(ctx context.Context) (PointsBalance, error)
	SaveBalance(ctx context.Context, b PointsBalance) error

	Streak(ctx context.Context) (Streak, error)
	SaveStreak(ctx context.Context, s Streak) error

	// Receipts returns history newest-first. AppendReceipt is append-only.
	Receipts(ctx context.Context) ([]Receipt, error)
	AppendReceipt(ctx context.Context, r Receipt) error

	// Transactions returns the ledger newest-first. Append-only.
	Transactions(ctx context.Context) ([]PointsTransaction, error)
	AppendTransaction(ctx context.Context, tx PointsTransaction) error

	Achievements(ctx context.Context) ([]Achievement, error)
	SaveAchievements(ctx context.Context, list []Achievement) error

	ActiveChallenges(ctx context.Context) ([]ActiveChallenge, error)
	SaveActiveChallenges(ctx context.Context, list []ActiveChallenge) error

	LinkedStores(ctx context.Context) ([]LinkedStore, error)
	SaveLinkedStores(ctx context.Context, list []LinkedStore) error

	// Reset wipes everything back to first-launch state.
	Reset(ctx context.Context) error
}
