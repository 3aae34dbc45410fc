/*
streaks.go - Weekly shopping streak tracking

PURPOSE:
  Tracks consecutive ISO calendar weeks containing at least one receipt
  submission, and derives the streak point bonus from the current count.

TRANSITION RULES (UpdateStreak):
  - No prior activity: streak starts at 1.
  - Same ISO week as last activity: counters unchanged, only the last
    activity date advances.
  - Immediately next ISO week (including the year boundary, when the
    prior week was the year's final ISO week): current streak +1.
  - Any larger gap: current streak resets to 1, streak start resets,
    longest streak is untouched.
  LongestStreak is a monotonic historical maximum.

BONUS:
  5% per streak week, hard-capped at 50%.

SEE ALSO:
  - week.go: ISO week bucketing
  - points.go: Applies the streak bonus as a (1 + bonus) multiplier
*/
package engine

import "time"

// UpdateStreak applies one qualifying activity at the given timestamp
// and returns the new streak state. The input is never mutated.
func UpdateStreak(s Streak, activityAt time.Time) Streak {
	if s.LastActivityAt == nil {
		at := activityAt
		return Streak{
			CurrentStreak:   1,
			LongestStreak:   max(1, s.LongestStreak),
			LastActivityAt:  &at,
			StreakStartedAt: &at,
		}
	}

	last := *s.LastActivityAt
	at := activityAt

	if SameISOWeek(last, activityAt) {
		next := s
		next.LastActivityAt = &at
		return next
	}

	if ConsecutiveISOWeeks(last, activityAt) {
		current := s.CurrentStreak + 1
		return Streak{
			CurrentStreak:   current,
			LongestStreak:   max(current, s.LongestStreak),
			LastActivityAt:  &at,
			StreakStartedAt: s.StreakStartedAt,
		}
	}

	// Missed a week or more: reset, longest survives.
	return Streak{
		CurrentStreak:   1,
		LongestStreak:   s.LongestStreak,
		LastActivityAt:  &at,
		StreakStartedAt: &at,
	}
}

// StreakBonus returns the point bonus for the current streak:
// 5% per week, capped at 50%.
func StreakBonus(s Streak) float64 {
	bonus := float64(s.CurrentStreak) * 0.05
	if bonus > 0.5 {
		return 0.5
	}
	return bonus
}

// IsStreakActive reports whether the last activity falls in the current
// or immediately preceding ISO week relative to now.
func IsStreakActive(s Streak, now time.Time) bool {
	if s.LastActivityAt == nil {
		return false
	}
	last := *s.LastActivityAt
	return SameISOWeek(last, now) || ConsecutiveISOWeeks(last, now)
}
