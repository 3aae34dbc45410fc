package engine_test

import (
	"testing"
	"time"

	"github.com/nutribucks/rewards-engine/engine"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// =============================================================================
// ISO WEEK TESTS
// =============================================================================

func TestSameISOWeek_MondayThroughSunday(t *testing.T) {
	// GIVEN: A Monday and the following Sunday (same ISO week)
	// THEN: They bucket together; the next Monday does not

	mon := date(2025, time.January, 6)
	sun := date(2025, time.January, 12)
	nextMon := date(2025, time.January, 13)

	if !engine.SameISOWeek(mon, sun) {
		t.Error("Monday and its Sunday should share an ISO week")
	}
	if engine.SameISOWeek(mon, nextMon) {
		t.Error("Monday and the next Monday should not share an ISO week")
	}
}

func TestConsecutiveISOWeeks_WithinYear(t *testing.T) {
	a := date(2025, time.March, 5)  // week 10
	b := date(2025, time.March, 12) // week 11

	if !engine.ConsecutiveISOWeeks(a, b) {
		t.Error("adjacent weeks should be consecutive")
	}
	if engine.ConsecutiveISOWeeks(b, a) {
		t.Error("consecutiveness is directional")
	}
	if engine.ConsecutiveISOWeeks(a, date(2025, time.March, 19)) {
		t.Error("a two-week jump is not consecutive")
	}
}

func TestConsecutiveISOWeeks_YearBoundary(t *testing.T) {
	// GIVEN: 2020 has 53 ISO weeks; Dec 30 2020 is in week 53
	// WHEN: The next activity lands in week 1 of 2021
	// THEN: The weeks are consecutive

	a := date(2020, time.December, 30)
	b := date(2021, time.January, 4)

	if !engine.ConsecutiveISOWeeks(a, b) {
		t.Error("final week of 2020 -> week 1 of 2021 should be consecutive")
	}
}

func TestConsecutiveISOWeeks_52WeekYearBoundary(t *testing.T) {
	// GIVEN: 2019 has 52 ISO weeks; Dec 23 2019 is in week 52
	// WHEN: The next activity is Dec 30 2019, which ISO-buckets into
	//       week 1 of 2020
	// THEN: The weeks are consecutive

	a := date(2019, time.December, 23)
	b := date(2019, time.December, 30)

	if !engine.ConsecutiveISOWeeks(a, b) {
		t.Error("week 52 of 2019 -> week 1 of 2020 should be consecutive")
	}
}

func TestConsecutiveISOWeeks_NonFinalWeekDoesNotWrap(t *testing.T) {
	// GIVEN: Activity in week 50
	// WHEN: Compared against week 1 of the next year
	// THEN: Not consecutive - only the true final week wraps

	a := date(2020, time.December, 9) // week 50
	b := date(2021, time.January, 4)  // week 1

	if engine.ConsecutiveISOWeeks(a, b) {
		t.Error("week 50 should not be consecutive with next year's week 1")
	}
}

// =============================================================================
// PERIOD END TESTS
// =============================================================================

func TestEndOfDay(t *testing.T) {
	at := time.Date(2025, time.March, 12, 9, 30, 0, 0, time.UTC)
	end := engine.EndOfDay(at)

	want := time.Date(2025, time.March, 12, 23, 59, 59, 999*int(time.Millisecond), time.UTC)
	if !end.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", end, want)
	}
}

func TestEndOfISOWeek(t *testing.T) {
	// Wednesday -> the coming Sunday
	wed := date(2025, time.March, 12)
	end := engine.EndOfISOWeek(wed)
	if end.Day() != 16 || end.Month() != time.March {
		t.Errorf("expected week to end Sunday March 16, got %v", end)
	}

	// Sunday -> the same day
	sun := date(2025, time.March, 16)
	end = engine.EndOfISOWeek(sun)
	if end.Day() != 16 {
		t.Errorf("a Sunday's week should end that day, got %v", end)
	}
}

func TestEndOfMonth_LeapFebruary(t *testing.T) {
	at := date(2024, time.February, 10)
	end := engine.EndOfMonth(at)
	if end.Day() != 29 || end.Month() != time.February {
		t.Errorf("expected Feb 29 2024, got %v", end)
	}

	end = engine.EndOfMonth(date(2025, time.February, 10))
	if end.Day() != 28 {
		t.Errorf("expected Feb 28 2025, got %v", end)
	}
}
