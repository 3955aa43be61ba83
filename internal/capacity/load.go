package capacity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Commitment is one allocation's claim on an employee's week.
type Commitment struct {
	ID          uuid.UUID
	Label       string
	Range       DateRange
	DaysPerWeek decimal.Decimal
}

// Absence is a span of annual leave.
type Absence struct {
	ID    uuid.UUID
	Range DateRange
}

// WeekLoad is the capacity picture of a single Monday-start week.
type WeekLoad struct {
	Week          DateRange
	Allocated     decimal.Decimal
	WorkDays      int
	LeaveDays     int
	Available     decimal.Decimal
	OverCommitted bool
	Commitments   []uuid.UUID
}

// Calculator aggregates one employee's commitments week by week.
// Every commitment overlapping a week counts its full days-per-week there.
type Calculator struct {
	workDays    WorkDays
	commitments []Commitment
	absences    []Absence
}

// NewCalculator creates a calculator over the given records.
func NewCalculator(workDays WorkDays, commitments []Commitment, absences []Absence) *Calculator {
	return &Calculator{
		workDays:    workDays,
		commitments: commitments,
		absences:    absences,
	}
}

// Week computes the load of the week containing d.
func (c *Calculator) Week(d time.Time) WeekLoad {
	week := WeekOf(d)
	allocated := decimal.Zero
	ids := []uuid.UUID{}
	for _, cm := range c.commitments {
		if cm.Range.Overlaps(week) {
			allocated = allocated.Add(cm.DaysPerWeek)
			ids = append(ids, cm.ID)
		}
	}

	leave := c.leaveDaysIn(week)
	available := c.workDays.Count() - leave
	if available < 0 {
		available = 0
	}

	return WeekLoad{
		Week:          week,
		Allocated:     allocated,
		WorkDays:      c.workDays.Count(),
		LeaveDays:     leave,
		Available:     decimal.NewFromInt(int64(available)),
		OverCommitted: allocated.GreaterThan(decimal.NewFromInt(int64(c.workDays.Count()))),
		Commitments:   ids,
	}
}

// Weeks returns one WeekLoad per week touching window, in order.
func (c *Calculator) Weeks(window DateRange) []WeekLoad {
	loads := []WeekLoad{}
	for start := WeekStart(window.Start); !start.After(Date(window.End)); start = start.AddDate(0, 0, 7) {
		loads = append(loads, c.Week(start))
	}
	return loads
}

// FirstOverCommitted finds the earliest week in window whose load exceeds
// the work days.
func (c *Calculator) FirstOverCommitted(window DateRange) (WeekLoad, bool) {
	for _, w := range c.Weeks(window) {
		if w.OverCommitted {
			return w, true
		}
	}
	return WeekLoad{}, false
}

// leaveDaysIn counts distinct work days inside r covered by any absence.
func (c *Calculator) leaveDaysIn(r DateRange) int {
	seen := map[time.Time]bool{}
	for _, a := range c.absences {
		span, ok := a.Range.Intersect(r)
		if !ok {
			continue
		}
		for d := span.Start; !d.After(span.End); d = d.AddDate(0, 0, 1) {
			if c.workDays.Includes(d.Weekday()) {
				seen[d] = true
			}
		}
	}
	return len(seen)
}
