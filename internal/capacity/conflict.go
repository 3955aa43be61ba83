package capacity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WarningType classifies an advisory warning.
type WarningType string

const (
	WarningAllocationConflict WarningType = "allocation_conflict"
	WarningLeaveConflict      WarningType = "leave_conflict"
	WarningCapacityExceeded   WarningType = "capacity_exceeded"
)

// Warning is advisory output. It never blocks a write.
type Warning struct {
	Type          WarningType
	Message       string
	ConflictingID *uuid.UUID
	Span          DateRange
	CombinedLoad  *decimal.Decimal
	WorkDays      int
}

// Conflicts compares a candidate allocation against the employee's other
// allocations and leave. Records sharing the candidate's ID are skipped so an
// edit never conflicts with its own stored version.
//
// Pairwise allocation warnings fire when the two loads together exceed the
// work days. Leave warnings fire on any shared day. A weekly
// capacity_exceeded warning is added only when no pairwise warning fired.
func Conflicts(candidate Commitment, workDays WorkDays, others []Commitment, absences []Absence) []Warning {
	limit := decimal.NewFromInt(int64(workDays.Count()))
	warnings := []Warning{}

	peers := make([]Commitment, 0, len(others))
	for _, other := range others {
		if other.ID == candidate.ID {
			continue
		}
		peers = append(peers, other)

		span, ok := candidate.Range.Intersect(other.Range)
		if !ok {
			continue
		}
		combined := candidate.DaysPerWeek.Add(other.DaysPerWeek)
		if !combined.GreaterThan(limit) {
			continue
		}
		id := other.ID
		warnings = append(warnings, Warning{
			Type: WarningAllocationConflict,
			Message: fmt.Sprintf("Overlaps %s from %s to %s: combined load %s days/week exceeds %d work days",
				other.Label, FormatDate(span.Start), FormatDate(span.End), combined.StringFixed(1), workDays.Count()),
			ConflictingID: &id,
			Span:          span,
			CombinedLoad:  &combined,
			WorkDays:      workDays.Count(),
		})
	}
	pairwise := len(warnings) > 0

	for _, absence := range absences {
		span, ok := candidate.Range.Intersect(absence.Range)
		if !ok {
			continue
		}
		id := absence.ID
		warnings = append(warnings, Warning{
			Type: WarningLeaveConflict,
			Message: fmt.Sprintf("Employee is on annual leave from %s to %s (%d days overlap)",
				FormatDate(span.Start), FormatDate(span.End), span.Days()),
			ConflictingID: &id,
			Span:          span,
			WorkDays:      workDays.Count(),
		})
	}

	if !pairwise {
		calc := NewCalculator(workDays, append(peers, candidate), nil)
		if week, ok := calc.FirstOverCommitted(candidate.Range); ok {
			load := week.Allocated
			warnings = append(warnings, Warning{
				Type: WarningCapacityExceeded,
				Message: fmt.Sprintf("Week of %s is booked at %s days against %d work days",
					FormatDate(week.Week.Start), load.StringFixed(1), week.WorkDays),
				Span:         week.Week,
				CombinedLoad: &load,
				WorkDays:     week.WorkDays,
			})
		}
	}

	return warnings
}

// LeaveOverlaps lists the allocations a span of leave falls across.
func LeaveOverlaps(absence Absence, workDays WorkDays, commitments []Commitment) []Warning {
	warnings := []Warning{}
	for _, cm := range commitments {
		span, ok := absence.Range.Intersect(cm.Range)
		if !ok {
			continue
		}
		id := cm.ID
		warnings = append(warnings, Warning{
			Type: WarningLeaveConflict,
			Message: fmt.Sprintf("Leave overlaps %s from %s to %s",
				cm.Label, FormatDate(span.Start), FormatDate(span.End)),
			ConflictingID: &id,
			Span:          span,
			WorkDays:      workDays.Count(),
		})
	}
	return warnings
}
