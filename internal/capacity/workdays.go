package capacity

import (
	"fmt"
	"sort"
	"time"
)

// WorkDays is the set of weekdays an employee is scheduled to work.
type WorkDays []time.Weekday

// DefaultWorkDays is Monday through Friday.
var DefaultWorkDays = WorkDays{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// NewWorkDays builds a work-day set from weekday indices (0 = Sunday).
// An empty input yields DefaultWorkDays.
func NewWorkDays(indices []int) (WorkDays, error) {
	if len(indices) == 0 {
		return DefaultWorkDays, nil
	}
	seen := make(map[int]bool, len(indices))
	days := make(WorkDays, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i > 6 {
			return nil, fmt.Errorf("weekday %d out of range 0..6", i)
		}
		if seen[i] {
			return nil, fmt.Errorf("weekday %d listed more than once", i)
		}
		seen[i] = true
		days = append(days, time.Weekday(i))
	}
	sort.Slice(days, func(a, b int) bool { return days[a] < days[b] })
	return days, nil
}

// Count is the number of work days per week.
func (w WorkDays) Count() int {
	return len(w)
}

// Includes reports whether d is a work day.
func (w WorkDays) Includes(d time.Weekday) bool {
	for _, wd := range w {
		if wd == d {
			return true
		}
	}
	return false
}

// In counts the work days that fall inside r.
func (w WorkDays) In(r DateRange) int {
	n := 0
	for d := Date(r.Start); !d.After(Date(r.End)); d = d.AddDate(0, 0, 1) {
		if w.Includes(d.Weekday()) {
			n++
		}
	}
	return n
}

// Indices returns the weekday indices in ascending order.
func (w WorkDays) Indices() []int {
	out := make([]int, len(w))
	for i, d := range w {
		out[i] = int(d)
	}
	return out
}
