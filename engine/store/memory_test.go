package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutribucks/rewards-engine/engine"
	"github.com/nutribucks/rewards-engine/engine/store"
)

func TestMemory_ProfileRoundTrip(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	p := engine.UserProfile{
		ID:                 "u-1",
		Name:               "Sam",
		HealthGoals:        []engine.HealthGoal{engine.GoalHeartHealth},
		OnboardingComplete: true,
		CreatedAt:          time.Now().UTC(),
	}
	require.NoError(t, m.SaveProfile(ctx, p))

	got, err := m.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestMemory_ReceiptsNewestFirst(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	first := engine.Receipt{ID: "r-1", StoreID: "kroger", Subtotal: decimal.NewFromInt(10)}
	second := engine.Receipt{ID: "r-2", StoreID: "safeway", Subtotal: decimal.NewFromInt(20)}
	require.NoError(t, m.AppendReceipt(ctx, first))
	require.NoError(t, m.AppendReceipt(ctx, second))

	got, err := m.Receipts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, engine.ReceiptID("r-2"), got[0].ID, "latest receipt comes first")
	assert.Equal(t, engine.ReceiptID("r-1"), got[1].ID)
}

func TestMemory_TransactionsNewestFirst(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.AppendTransaction(ctx, engine.PointsTransaction{ID: "t-1", Type: engine.TxEarnPurchase, Amount: 50}))
	require.NoError(t, m.AppendTransaction(ctx, engine.PointsTransaction{ID: "t-2", Type: engine.TxRedeemDiscount, Amount: -500}))

	got, err := m.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, engine.TransactionID("t-2"), got[0].ID)
}

func TestMemory_ReadsReturnCopies(t *testing.T) {
	// Mutating a returned slice must not leak back into the store.

	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.AppendReceipt(ctx, engine.Receipt{ID: "r-1"}))

	snapshot, err := m.Receipts(ctx)
	require.NoError(t, err)
	snapshot[0].ID = "tampered"

	fresh, err := m.Receipts(ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.ReceiptID("r-1"), fresh[0].ID)
}

func TestMemory_SaveReplacesWholeValue(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveLinkedStores(ctx, []engine.LinkedStore{
		{StoreID: "kroger", MemberID: "1234567890", IsPrimary: true},
		{StoreID: "safeway", MemberID: "0987654321"},
	}))
	require.NoError(t, m.SaveLinkedStores(ctx, []engine.LinkedStore{
		{StoreID: "safeway", MemberID: "0987654321", IsPrimary: true},
	}))

	got, err := m.LinkedStores(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, engine.StoreID("safeway"), got[0].StoreID)
	assert.True(t, got[0].IsPrimary)
}

func TestMemory_Reset(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveProfile(ctx, engine.UserProfile{ID: "u-1", OnboardingComplete: true}))
	require.NoError(t, m.SaveBalance(ctx, engine.PointsBalance{Total: 500, Available: 500}))
	require.NoError(t, m.AppendReceipt(ctx, engine.Receipt{ID: "r-1"}))
	require.NoError(t, m.SaveAchievements(ctx, engine.DefaultAchievements()))

	require.NoError(t, m.Reset(ctx))

	profile, err := m.Profile(ctx)
	require.NoError(t, err)
	assert.Empty(t, profile.ID)

	balance, err := m.Balance(ctx)
	require.NoError(t, err)
	assert.Zero(t, balance.Total)

	receipts, err := m.Receipts(ctx)
	require.NoError(t, err)
	assert.Empty(t, receipts)

	achievements, err := m.Achievements(ctx)
	require.NoError(t, err)
	assert.Empty(t, achievements)
}
