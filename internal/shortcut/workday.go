package shortcut

import (
	"fmt"
	"time"
)

// ClosestWorkday shifts a weekend date to the nearest business day:
// Saturday back to Friday, Sunday forward to Monday. Weekdays pass through.
func ClosestWorkday(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, -1)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	}
	return date
}

// nthWorkdayOfMonth finds the n-th business day (Monday through Friday,
// 1-indexed) of the date's calendar month, counting from the end of the
// month when fromEnd is set. The clock components carry over unchanged.
func nthWorkdayOfMonth(date time.Time, n int, fromEnd bool) (time.Time, error) {
	y, m, _ := date.Date()
	h, min, sec := date.Clock()
	last := daysInMonth(y, m)
	first, step := 1, 1
	if fromEnd {
		first, step = last, -1
	}
	seen := 0
	for d := first; d >= 1 && d <= last; d += step {
		cand := time.Date(y, m, d, h, min, sec, 0, time.UTC)
		if wd := cand.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		seen++
		if seen == n {
			return cand, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: no business day #%d in %s %d", ErrWeekdayNotFound, n, m, y)
}
