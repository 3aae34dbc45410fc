package engine

import "time"

// =============================================================================
// ISO WEEK ARITHMETIC - Streak and challenge period boundaries
// =============================================================================
// ISO-8601 week numbering is Thursday-anchored: a week belongs to the year
// that contains its Thursday. The stdlib time.ISOWeek implements this.

// ISOWeek identifies one ISO-8601 calendar week.
type ISOWeek struct {
	Year int
	Week int
}

func ISOWeekOf(t time.Time) ISOWeek {
	y, w := t.ISOWeek()
	return ISOWeek{Year: y, Week: w}
}

// SameISOWeek reports whether two timestamps fall in the same ISO week.
func SameISOWeek(a, b time.Time) bool {
	return ISOWeekOf(a) == ISOWeekOf(b)
}

// ConsecutiveISOWeeks reports whether b falls in the ISO week immediately
// after a's. Handles the year boundary: the last ISO week of year N is
// followed by week 1 of year N+1 only when a's week truly is N's final
// ISO week.
func ConsecutiveISOWeeks(a, b time.Time) bool {
	wa := ISOWeekOf(a)
	wb := ISOWeekOf(b)

	if wa.Year == wb.Year && wb.Week-wa.Week == 1 {
		return true
	}

	if wb.Year-wa.Year == 1 && wb.Week == 1 {
		return wa.Week == lastISOWeekOfYear(wa.Year)
	}

	return false
}

// lastISOWeekOfYear returns 52 or 53. December 28 always falls in the
// final ISO week of its year.
func lastISOWeekOfYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// =============================================================================
// PERIOD ENDS - Challenge expiry boundaries
// =============================================================================

// EndOfDay returns 23:59:59.999 on t's calendar day, in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		23, 59, 59, 999*int(time.Millisecond), t.Location())
}

// EndOfISOWeek returns 23:59:59.999 on the next Sunday (today if t is a
// Sunday), in t's location.
func EndOfISOWeek(t time.Time) time.Time {
	daysUntilSunday := (7 - int(t.Weekday())) % 7
	return EndOfDay(t.AddDate(0, 0, daysUntilSunday))
}

// EndOfMonth returns 23:59:59.999 on the last day of t's month, in t's
// location.
func EndOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return EndOfDay(firstOfNext.AddDate(0, 0, -1))
}
