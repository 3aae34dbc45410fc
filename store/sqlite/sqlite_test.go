package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutribucks/rewards-engine/engine"
	"github.com/nutribucks/rewards-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

// =============================================================================
// SNAPSHOT ENTITY TESTS
// =============================================================================

func TestSQLite_ProfileRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Empty database reads back the zero value.
	p, err := st.Profile(ctx)
	require.NoError(t, err)
	assert.Empty(t, p.ID)

	saved := engine.UserProfile{
		ID:                 "u-1",
		Name:               "Sam",
		HealthGoals:        []engine.HealthGoal{engine.GoalWeightLoss, engine.GoalGutHealth},
		OnboardingComplete: true,
		CreatedAt:          time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		LastActiveAt:       time.Date(2025, 3, 12, 18, 30, 0, 0, time.UTC),
	}
	require.NoError(t, st.SaveProfile(ctx, saved))

	got, err := st.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSQLite_SaveOverwrites(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveBalance(ctx, engine.PointsBalance{Total: 100, Available: 100}))
	require.NoError(t, st.SaveBalance(ctx, engine.PointsBalance{Total: 150, Available: 120, Redeemed: 30}))

	got, err := st.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.PointsBalance{Total: 150, Available: 120, Redeemed: 30}, got)
}

func TestSQLite_StreakRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	last := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
	started := time.Date(2025, 2, 24, 12, 0, 0, 0, time.UTC)
	saved := engine.Streak{
		CurrentStreak: 3, LongestStreak: 5,
		LastActivityAt: &last, StreakStartedAt: &started,
	}
	require.NoError(t, st.SaveStreak(ctx, saved))

	got, err := st.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.CurrentStreak, got.CurrentStreak)
	assert.Equal(t, saved.LongestStreak, got.LongestStreak)
	require.NotNil(t, got.LastActivityAt)
	assert.True(t, got.LastActivityAt.Equal(last))
}

func TestSQLite_AchievementsRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	at := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
	list := engine.DefaultAchievements()
	list[0].UnlockedAt = &at
	require.NoError(t, st.SaveAchievements(ctx, list))

	got, err := st.Achievements(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(list))
	require.NotNil(t, got[0].UnlockedAt)
	assert.True(t, got[0].UnlockedAt.Equal(at))
	assert.Nil(t, got[1].UnlockedAt)
}

func TestSQLite_ActiveChallengesRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	list := []engine.ActiveChallenge{{
		ID:        "ac-1",
		Challenge: engine.DefaultChallenges()[0],
		Progress:  2, Goal: 3,
		StartDate: start, ExpiresAt: engine.EndOfISOWeek(start),
	}}
	require.NoError(t, st.SaveActiveChallenges(ctx, list))

	got, err := st.ActiveChallenges(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ac-1", got[0].ID)
	assert.Equal(t, engine.ChallengeID("daily_produce"), got[0].Challenge.ID)
	assert.Equal(t, 2.0, got[0].Progress)
}

// =============================================================================
// APPEND-ONLY HISTORY TESTS
// =============================================================================

func TestSQLite_ReceiptsNewestFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	older := engine.Receipt{
		ID: "r-1", StoreID: "kroger",
		Items: []engine.ReceiptItem{{
			ProductID: "fv-spinach", ProductName: "Baby Spinach", Quantity: 2,
			PriceEach: decimal.NewFromFloat(3.49), LineTotal: decimal.NewFromFloat(6.98),
			PointsEarned: 10,
		}},
		Subtotal:    decimal.NewFromFloat(6.98),
		TotalPoints: 23, BonusPoints: 3,
		ScannedAt: base, Method: engine.MethodManual,
	}
	newer := engine.Receipt{
		ID: "r-2", StoreID: "safeway",
		Subtotal:  decimal.NewFromFloat(12.50),
		ScannedAt: base.Add(48 * time.Hour), Method: engine.MethodScan,
	}
	require.NoError(t, st.AppendReceipt(ctx, older))
	require.NoError(t, st.AppendReceipt(ctx, newer))

	got, err := st.Receipts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, engine.ReceiptID("r-2"), got[0].ID)
	assert.Equal(t, engine.ReceiptID("r-1"), got[1].ID)

	// Line items survive the JSON round trip, subtotal the decimal one.
	require.Len(t, got[1].Items, 1)
	assert.Equal(t, engine.ProductID("fv-spinach"), got[1].Items[0].ProductID)
	assert.True(t, got[1].Subtotal.Equal(decimal.NewFromFloat(6.98)))
	assert.True(t, got[1].ScannedAt.Equal(base))
}

func TestSQLite_TransactionsNewestFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, st.AppendTransaction(ctx, engine.PointsTransaction{
		ID: "t-1", Type: engine.TxEarnPurchase, Amount: 50,
		Description: "Receipt at Kroger",
		StoreID:     "kroger", ReceiptID: "r-1",
		CreatedAt: base,
	}))
	require.NoError(t, st.AppendTransaction(ctx, engine.PointsTransaction{
		ID: "t-2", Type: engine.TxRedeemDonation, Amount: -300,
		Description: "Redeemed: Donate 3 Meals",
		CreatedAt:   base.Add(time.Hour),
	}))

	got, err := st.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, engine.TransactionID("t-2"), got[0].ID)
	assert.Equal(t, -300, got[0].Amount)

	// Empty store/receipt refs are stored as NULL and read back empty.
	assert.Empty(t, got[0].StoreID)
	assert.Empty(t, got[0].ReceiptID)
	assert.Equal(t, engine.StoreID("kroger"), got[1].StoreID)
	assert.Equal(t, engine.ReceiptID("r-1"), got[1].ReceiptID)
}

// =============================================================================
// RESET TESTS
// =============================================================================

func TestSQLite_Reset(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveProfile(ctx, engine.UserProfile{ID: "u-1"}))
	require.NoError(t, st.SaveBalance(ctx, engine.PointsBalance{Total: 500, Available: 500}))
	require.NoError(t, st.AppendReceipt(ctx, engine.Receipt{
		ID: "r-1", StoreID: "kroger", Subtotal: decimal.NewFromInt(10),
		ScannedAt: time.Now().UTC(), Method: engine.MethodScan,
	}))
	require.NoError(t, st.AppendTransaction(ctx, engine.PointsTransaction{
		ID: "t-1", Type: engine.TxEarnPurchase, Amount: 10, CreatedAt: time.Now().UTC(),
	}))

	require.NoError(t, st.Reset(ctx))

	profile, err := st.Profile(ctx)
	require.NoError(t, err)
	assert.Empty(t, profile.ID)

	balance, err := st.Balance(ctx)
	require.NoError(t, err)
	assert.Zero(t, balance.Total)

	receipts, err := st.Receipts(ctx)
	require.NoError(t, err)
	assert.Empty(t, receipts)

	txs, err := st.Transactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
