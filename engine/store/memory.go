// Package store provides an in-memory Store implementation (tests/dev).
package store

import (
	"context"
	"sync"

	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu           sync.RWMutex
	profile      engine.UserProfile
	balance      engine.PointsBalance
	streak       engine.Streak
	receipts     []engine.Receipt
	transactions []engine.PointsTransaction
	achievements []engine.Achievement
	challenges   []engine.ActiveChallenge
	linked       []engine.LinkedStore
}

var _ engine.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Profile(_ context.Context) (engine.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile, nil
}

func (m *Memory) SaveProfile(_ context.Context, p engine.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = p
	return nil
}

func (m *Memory) Balance(_ context.Context) (engine.PointsBalance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balance, nil
}

func (m *Memory) SaveBalance(_ context.Context, b engine.PointsBalance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balance = b
	return nil
}

func (m *Memory) Streak(_ context.Context) (engine.Streak, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.streak, nil
}

func (m *Memory) SaveStreak(_ context.Context, s engine.Streak) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streak = s
	return nil
}

// AppendReceipt prepends so reads come back newest-first.
func (m *Memory) AppendReceipt(_ context.Context, r engine.Receipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipts = append([]engine.Receipt{r}, m.receipts...)
	return nil
}

func (m *Memory) Receipts(_ context.Context) ([]engine.Receipt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.Receipt, len(m.receipts))
	copy(out, m.receipts)
	return out, nil
}

func (m *Memory) AppendTransaction(_ context.Context, tx engine.PointsTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append([]engine.PointsTransaction{tx}, m.transactions...)
	return nil
}

func (m *Memory) Transactions(_ context.Context) ([]engine.PointsTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.PointsTransaction, len(m.transactions))
	copy(out, m.transactions)
	return out, nil
}

func (m *Memory) Achievements(_ context.Context) ([]engine.Achievement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.Achievement, len(m.achievements))
	copy(out, m.achievements)
	return out, nil
}

func (m *Memory) SaveAchievements(_ context.Context, list []engine.Achievement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.achievements = make([]engine.Achievement, len(list))
	copy(m.achievements, list)
	return nil
}

func (m *Memory) ActiveChallenges(_ context.Context) ([]engine.ActiveChallenge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.ActiveChallenge, len(m.challenges))
	copy(out, m.challenges)
	return out, nil
}

func (m *Memory) SaveActiveChallenges(_ context.Context, list []engine.ActiveChallenge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.challenges = make([]engine.ActiveChallenge, len(list))
	copy(m.challenges, list)
	return nil
}

func (m *Memory) LinkedStores(_ context.Context) ([]engine.LinkedStore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.LinkedStore, len(m.linked))
	copy(out, m.linked)
	return out, nil
}

func (m *Memory) SaveLinkedStores(_ context.Context, list []engine.LinkedStore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.linked = make([]engine.LinkedStore, len(list))
	copy(m.linked, list)
	return nil
}

func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = engine.UserProfile{}
	m.balance = engine.PointsBalance{}
	m.streak = engine.Streak{}
	m.receipts = nil
	m.transactions = nil
	m.achievements = nil
	m.challenges = nil
	m.linked = nil
	return nil
}
