package engine_test

import (
	"testing"
	"time"

	"github.com/nutribucks/rewards-engine/engine"
)

// =============================================================================
// STREAK TRANSITION TESTS
// =============================================================================

func TestUpdateStreak_FirstActivity(t *testing.T) {
	// GIVEN: No prior activity
	// WHEN: A receipt is submitted
	// THEN: Streak starts at 1 with both timestamps set

	at := date(2025, time.March, 10)
	s := engine.UpdateStreak(engine.NewStreak(), at)

	if s.CurrentStreak != 1 {
		t.Errorf("expected current streak 1, got %d", s.CurrentStreak)
	}
	if s.LongestStreak != 1 {
		t.Errorf("expected longest streak 1, got %d", s.LongestStreak)
	}
	if s.LastActivityAt == nil || !s.LastActivityAt.Equal(at) {
		t.Errorf("expected last activity %v, got %v", at, s.LastActivityAt)
	}
	if s.StreakStartedAt == nil || !s.StreakStartedAt.Equal(at) {
		t.Errorf("expected streak start %v, got %v", at, s.StreakStartedAt)
	}
}

func TestUpdateStreak_SameWeekIsNoOp(t *testing.T) {
	// GIVEN: A streak of 3 with activity on Monday
	// WHEN: Another receipt arrives on Friday of the same ISO week
	// THEN: Counters are untouched, only the activity date advances

	mon := date(2025, time.March, 10)
	fri := date(2025, time.March, 14)

	s := streakOf(3, 5, mon)
	next := engine.UpdateStreak(s, fri)

	if next.CurrentStreak != 3 {
		t.Errorf("expected current streak unchanged at 3, got %d", next.CurrentStreak)
	}
	if next.LongestStreak != 5 {
		t.Errorf("expected longest streak unchanged at 5, got %d", next.LongestStreak)
	}
	if !next.LastActivityAt.Equal(fri) {
		t.Errorf("expected last activity to advance to %v, got %v", fri, next.LastActivityAt)
	}
}

func TestUpdateStreak_ConsecutiveWeekIncrements(t *testing.T) {
	// GIVEN: A streak of 5 (equal to the longest)
	// WHEN: Activity lands in the immediately following ISO week
	// THEN: Both current and longest advance to 6

	s := streakOf(5, 5, date(2025, time.March, 10))
	next := engine.UpdateStreak(s, date(2025, time.March, 18))

	if next.CurrentStreak != 6 {
		t.Errorf("expected current streak 6, got %d", next.CurrentStreak)
	}
	if next.LongestStreak != 6 {
		t.Errorf("expected longest streak 6, got %d", next.LongestStreak)
	}
}

func TestUpdateStreak_GapResets(t *testing.T) {
	// GIVEN: A streak of 7
	// WHEN: The next activity is two ISO weeks later
	// THEN: Current resets to 1 and the start date moves; longest survives

	s := streakOf(7, 7, date(2025, time.March, 10))
	at := date(2025, time.March, 26)
	next := engine.UpdateStreak(s, at)

	if next.CurrentStreak != 1 {
		t.Errorf("expected current streak reset to 1, got %d", next.CurrentStreak)
	}
	if next.LongestStreak != 7 {
		t.Errorf("expected longest streak preserved at 7, got %d", next.LongestStreak)
	}
	if !next.StreakStartedAt.Equal(at) {
		t.Errorf("expected streak start reset to %v, got %v", at, next.StreakStartedAt)
	}
}

func TestUpdateStreak_YearBoundaryContinues(t *testing.T) {
	// GIVEN: Activity in the final ISO week of 2020 (week 53)
	// WHEN: The next receipt lands in week 1 of 2021
	// THEN: The streak increments across the boundary

	s := streakOf(4, 4, date(2020, time.December, 30))
	next := engine.UpdateStreak(s, date(2021, time.January, 4))

	if next.CurrentStreak != 5 {
		t.Errorf("expected streak to continue to 5 across the year boundary, got %d", next.CurrentStreak)
	}
}

// =============================================================================
// STREAK BONUS TESTS
// =============================================================================

func TestStreakBonus(t *testing.T) {
	cases := []struct {
		weeks int
		want  float64
	}{
		{0, 0},
		{1, 0.05},
		{3, 0.15},
		{10, 0.5},
		{12, 0.5}, // capped
	}
	for _, c := range cases {
		got := engine.StreakBonus(engine.Streak{CurrentStreak: c.weeks})
		if got != c.want {
			t.Errorf("StreakBonus(%d weeks) = %v, want %v", c.weeks, got, c.want)
		}
	}
}

func TestIsStreakActive(t *testing.T) {
	now := date(2025, time.March, 18)

	if engine.IsStreakActive(engine.NewStreak(), now) {
		t.Error("empty streak should not be active")
	}

	sameWeek := streakOf(2, 2, date(2025, time.March, 17))
	if !engine.IsStreakActive(sameWeek, now) {
		t.Error("activity this week should be active")
	}

	lastWeek := streakOf(2, 2, date(2025, time.March, 12))
	if !engine.IsStreakActive(lastWeek, now) {
		t.Error("activity last week should still be active")
	}

	stale := streakOf(2, 2, date(2025, time.February, 20))
	if engine.IsStreakActive(stale, now) {
		t.Error("month-old activity should not be active")
	}
}

func streakOf(current, longest int, last time.Time) engine.Streak {
	started := last.AddDate(0, 0, -7*(current-1))
	return engine.Streak{
		CurrentStreak:   current,
		LongestStreak:   longest,
		LastActivityAt:  &last,
		StreakStartedAt: &started,
	}
}
