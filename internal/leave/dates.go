package leave

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date. Full RFC 3339 timestamps are accepted
// and truncated to their date part.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// Days returns the inclusive day count between two calendar dates.
// The difference is taken as an absolute value, so a reversed range yields
// the count of the mirrored forward range rather than an error. Any
// unparseable date yields 0. For any two valid dates the result is >= 1.
func Days(start, end string) int {
	s, ok := ParseDate(start)
	if !ok {
		return 0
	}
	e, ok := ParseDate(end)
	if !ok {
		return 0
	}
	diff := e.Sub(s)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// Overlaps reports whether two inclusive date ranges intersect: the first
// range starts inside the second, ends inside it, or fully contains it.
// Ranges with unparseable endpoints never overlap anything.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	as, ok := ParseDate(aStart)
	if !ok {
		return false
	}
	ae, ok := ParseDate(aEnd)
	if !ok {
		return false
	}
	bs, ok := ParseDate(bStart)
	if !ok {
		return false
	}
	be, ok := ParseDate(bEnd)
	if !ok {
		return false
	}

	startsInside := !as.Before(bs) && !as.After(be)
	endsInside := !ae.Before(bs) && !ae.After(be)
	contains := !as.After(bs) && !ae.Before(be)

	return startsInside || endsInside || contains
}
