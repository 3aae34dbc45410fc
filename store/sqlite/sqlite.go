/*
Package sqlite provides the SQLite-backed Store implementation.

PURPOSE:
  Durable storage for all rewards state. In production the same patterns
  apply to PostgreSQL - only minor SQL dialect differences.

STORAGE MODEL:
  Two shapes of state, matching the engine's contract:

  1. Snapshot entities (profile, balance, streak, achievements, active
     challenges, linked stores) live in a single `state` key/value table
     with JSON values. Writes replace the whole value for the key, which
     gives replace-whole-value semantics for free: no reader ever sees a
     partially updated entity.

  2. History entities (receipts, points transactions) are append-only
     tables. No UPDATE or DELETE statements exist for them; corrections
     happen through new ledger entries.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  st, err := sqlite.New("./data/nutribucks.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - engine/store.go: Interface definition
  - engine/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/nutribucks/rewards-engine/engine"
)

// Store implements engine.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ engine.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Snapshot entities: one JSON value per key, replaced wholesale.
	CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		value_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Receipts (append-only history)
	CREATE TABLE IF NOT EXISTS receipts (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		items_json TEXT NOT NULL,
		subtotal TEXT NOT NULL,
		total_points INTEGER NOT NULL,
		bonus_points INTEGER NOT NULL,
		scanned_at TEXT NOT NULL,
		method TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_receipts_scanned_at
		ON receipts(scanned_at DESC);
	CREATE INDEX IF NOT EXISTS idx_receipts_store
		ON receipts(store_id);

	-- Points transactions (append-only ledger)
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		tx_type TEXT NOT NULL,
		amount INTEGER NOT NULL,
		description TEXT,
		store_id TEXT,
		receipt_id TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_created_at
		ON transactions(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_transactions_type
		ON transactions(tx_type);
	CREATE INDEX IF NOT EXISTS idx_transactions_receipt
		ON transactions(receipt_id) WHERE receipt_id IS NOT NULL;
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SNAPSHOT ENTITIES - JSON values in the state table
// =============================================================================

const (
	keyProfile      = "profile"
	keyBalance      = "balance"
	keyStreak       = "streak"
	keyAchievements = "achievements"
	keyChallenges   = "active_challenges"
	keyLinkedStores = "linked_stores"
)

func (s *Store) loadState(ctx context.Context, key string, out any) (found bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var raw string
	err = s.db.QueryRowContext(ctx,
		`SELECT value_json FROM state WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load state %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode state %q: %w", key, err)
	}
	return true, nil
}

func (s *Store) saveState(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode state %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO state (key, value_json, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value_json = excluded.value_json,
			updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save state %q: %w", key, err)
	}
	return nil
}

func (s *Store) Profile(ctx context.Context) (engine.UserProfile, error) {
	var p engine.UserProfile
	_, err := s.loadState(ctx, keyProfile, &p)
	return p, err
}

func (s *Store) SaveProfile(ctx context.Context, p engine.UserProfile) error {
	return s.saveState(ctx, keyProfile, p)
}

func (s *Store) Balance(ctx context.Context) (engine.PointsBalance, error) {
	var b engine.PointsBalance
	_, err := s.loadState(ctx, keyBalance, &b)
	return b, err
}

func (s *Store) SaveBalance(ctx context.Context, b engine.PointsBalance) error {
	return s.saveState(ctx, keyBalance, b)
}

func (s *Store) Streak(ctx context.Context) (engine.Streak, error) {
	var st engine.Streak
	_, err := s.loadState(ctx, keyStreak, &st)
	return st, err
}

func (s *Store) SaveStreak(ctx context.Context, st engine.Streak) error {
	return s.saveState(ctx, keyStreak, st)
}

func (s *Store) Achievements(ctx context.Context) ([]engine.Achievement, error) {
	var list []engine.Achievement
	_, err := s.loadState(ctx, keyAchievements, &list)
	return list, err
}

func (s *Store) SaveAchievements(ctx context.Context, list []engine.Achievement) error {
	return s.saveState(ctx, keyAchievements, list)
}

func (s *Store) ActiveChallenges(ctx context.Context) ([]engine.ActiveChallenge, error) {
	var list []engine.ActiveChallenge
	_, err := s.loadState(ctx, keyChallenges, &list)
	return list, err
}

func (s *Store) SaveActiveChallenges(ctx context.Context, list []engine.ActiveChallenge) error {
	return s.saveState(ctx, keyChallenges, list)
}

func (s *Store) LinkedStores(ctx context.Context) ([]engine.LinkedStore, error) {
	var list []engine.LinkedStore
	_, err := s.loadState(ctx, keyLinkedStores, &list)
	return list, err
}

func (s *Store) SaveLinkedStores(ctx context.Context, list []engine.LinkedStore) error {
	return s.saveState(ctx, keyLinkedStores, list)
}

// =============================================================================
// RECEIPTS - Append-only history
// =============================================================================

func (s *Store) AppendReceipt(ctx context.Context, r engine.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := json.Marshal(r.Items)
	if err != nil {
		return fmt.Errorf("encode receipt items: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO receipts (id, store_id, items_json, subtotal,
			total_points, bonus_points, scanned_at, method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(r.ID), string(r.StoreID), string(items), r.Subtotal.String(),
		r.TotalPoints, r.BonusPoints,
		r.ScannedAt.UTC().Format(time.RFC3339Nano), string(r.Method))
	if err != nil {
		return fmt.Errorf("append receipt: %w", err)
	}
	return nil
}

func (s *Store) Receipts(ctx context.Context) ([]engine.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_id, items_json, subtotal, total_points,
			bonus_points, scanned_at, method
		FROM receipts ORDER BY scanned_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}
	defer rows.Close()

	var receipts []engine.Receipt
	for rows.Next() {
		var (
			r                   engine.Receipt
			id, storeID, method string
			itemsJSON, subtotal string
			scannedAt           string
		)
		if err := rows.Scan(&id, &storeID, &itemsJSON, &subtotal,
			&r.TotalPoints, &r.BonusPoints, &scannedAt, &method); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		r.ID = engine.ReceiptID(id)
		r.StoreID = engine.StoreID(storeID)
		r.Method = engine.SubmissionMethod(method)
		if err := json.Unmarshal([]byte(itemsJSON), &r.Items); err != nil {
			return nil, fmt.Errorf("decode receipt items: %w", err)
		}
		r.Subtotal, err = decimal.NewFromString(subtotal)
		if err != nil {
			return nil, fmt.Errorf("decode receipt subtotal: %w", err)
		}
		r.ScannedAt, err = time.Parse(time.RFC3339Nano, scannedAt)
		if err != nil {
			return nil, fmt.Errorf("decode receipt timestamp: %w", err)
		}
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}

// =============================================================================
// POINTS TRANSACTIONS - Append-only ledger
// =============================================================================

func (s *Store) AppendTransaction(ctx context.Context, tx engine.PointsTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, tx_type, amount, description,
			store_id, receipt_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(tx.ID), string(tx.Type), tx.Amount, tx.Description,
		nullable(string(tx.StoreID)), nullable(string(tx.ReceiptID)),
		tx.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}

func (s *Store) Transactions(ctx context.Context) ([]engine.PointsTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, tx_type, amount, description, store_id, receipt_id, created_at
		FROM transactions ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []engine.PointsTransaction
	for rows.Next() {
		var (
			tx                 engine.PointsTransaction
			id, txType         string
			storeID, receiptID sql.NullString
			createdAt          string
		)
		if err := rows.Scan(&id, &txType, &tx.Amount, &tx.Description,
			&storeID, &receiptID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.ID = engine.TransactionID(id)
		tx.Type = engine.TransactionType(txType)
		tx.StoreID = engine.StoreID(storeID.String)
		tx.ReceiptID = engine.ReceiptID(receiptID.String)
		tx.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("decode transaction timestamp: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// =============================================================================
// RESET
// =============================================================================

// Reset wipes everything back to first-launch state. The only deletes
// in this package; used by the dev reset endpoint.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []string{
		`DELETE FROM state`,
		`DELETE FROM receipts`,
		`DELETE FROM transactions`,
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
