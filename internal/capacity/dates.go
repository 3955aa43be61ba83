package capacity

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ErrInvalidRange is returned when a range ends before it starts.
var ErrInvalidRange = errors.New("end date must be on or after start date")

// Date truncates t to its calendar date at UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders a calendar date in wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range, rejecting one whose end precedes its start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: Date(start), End: Date(end)}
	if r.End.Before(r.Start) {
		return DateRange{}, ErrInvalidRange
	}
	return r, nil
}

// ParseDateRange parses both bounds and validates their order.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

// Days is the inclusive length of the range.
func (r DateRange) Days() int {
	return DaysBetween(r.Start, r.End) + 1
}

// Overlaps reports whether the two ranges share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return RangesOverlap(r.Start, r.End, o.Start, o.End)
}

// Intersect returns the shared span of two ranges.
func (r DateRange) Intersect(o DateRange) (DateRange, bool) {
	if !r.Overlaps(o) {
		return DateRange{}, false
	}
	return DateRange{Start: later(r.Start, o.Start), End: earlier(r.End, o.End)}, true
}

// Weeks pads the range out to whole Monday-start weeks.
func (r DateRange) Weeks() DateRange {
	return DateRange{Start: WeekStart(r.Start), End: WeekStart(r.End).AddDate(0, 0, 6)}
}

func (r DateRange) String() string {
	return FormatDate(r.Start) + ".." + FormatDate(r.End)
}

// RangesOverlap reports whether [aStart, aEnd] and [bStart, bEnd] share a day.
// Bounds are inclusive, so ranges touching on a single day overlap.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !Date(aStart).After(Date(bEnd)) && !Date(bStart).After(Date(aEnd))
}

// OverlapDays counts the days shared by two inclusive ranges.
func OverlapDays(aStart, aEnd, bStart, bEnd time.Time) int {
	n := DaysBetween(later(aStart, bStart), earlier(aEnd, bEnd)) + 1
	if n < 0 {
		return 0
	}
	return n
}

// WeekStart returns the Monday on or before d.
func WeekStart(d time.Time) time.Time {
	d = Date(d)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// WeekOf returns the Monday-to-Sunday week containing d.
func WeekOf(d time.Time) DateRange {
	start := WeekStart(d)
	return DateRange{Start: start, End: start.AddDate(0, 0, 6)}
}

// MonthWindow returns the month containing now, padded to whole weeks.
func MonthWindow(now time.Time) DateRange {
	y, m, _ := now.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return DateRange{Start: first, End: last}.Weeks()
}

func later(a, b time.Time) time.Time {
	a, b = Date(a), Date(b)
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	a, b = Date(a), Date(b)
	if a.Before(b) {
		return a
	}
	return b
}
