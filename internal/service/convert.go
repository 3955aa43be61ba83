package service

import (
	"team-capacity-backend/internal/capacity"
	"team-capacity-backend/internal/database/models"

	"github.com/google/uuid"
)

// WarningResponse is an advisory warning returned alongside a successful write
type WarningResponse struct {
	Type          capacity.WarningType `json:"type" example:"allocation_conflict"`
	Message       string               `json:"message"`
	ConflictingID *uuid.UUID           `json:"conflicting_id,omitempty"`
	StartDate     string               `json:"start_date,omitempty" example:"2024-03-11"`
	EndDate       string               `json:"end_date,omitempty" example:"2024-03-15"`
	CombinedLoad  string               `json:"combined_load,omitempty" example:"7.0"`
	WorkDays      int                  `json:"work_days,omitempty" example:"5"`
}

func toWarningResponses(warnings []capacity.Warning) []WarningResponse {
	out := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		resp := WarningResponse{
			Type:          w.Type,
			Message:       w.Message,
			ConflictingID: w.ConflictingID,
			WorkDays:      w.WorkDays,
		}
		if !w.Span.Start.IsZero() {
			resp.StartDate = capacity.FormatDate(w.Span.Start)
			resp.EndDate = capacity.FormatDate(w.Span.End)
		}
		if w.CombinedLoad != nil {
			resp.CombinedLoad = w.CombinedLoad.StringFixed(1)
		}
		out = append(out, resp)
	}
	return out
}

func toCommitment(a *models.Allocation) capacity.Commitment {
	return capacity.Commitment{
		ID:          a.ID,
		Label:       a.Label(),
		Range:       capacity.DateRange{Start: capacity.Date(a.StartDate), End: capacity.Date(a.EndDate)},
		DaysPerWeek: a.DaysPerWeek,
	}
}

func toCommitments(allocations []models.Allocation) []capacity.Commitment {
	out := make([]capacity.Commitment, 0, len(allocations))
	for i := range allocations {
		out = append(out, toCommitment(&allocations[i]))
	}
	return out
}

func toAbsence(l *models.AnnualLeave) capacity.Absence {
	return capacity.Absence{
		ID:    l.ID,
		Range: capacity.DateRange{Start: capacity.Date(l.StartDate), End: capacity.Date(l.EndDate)},
	}
}

func toAbsences(leave []models.AnnualLeave) []capacity.Absence {
	out := make([]capacity.Absence, 0, len(leave))
	for i := range leave {
		out = append(out, toAbsence(&leave[i]))
	}
	return out
}

// workDaysOf resolves an employee's stored pattern. Rows with an unusable
// pattern fall back to Monday to Friday.
func workDaysOf(e *models.Employee) capacity.WorkDays {
	wd, err := capacity.NewWorkDays(e.WorkDays)
	if err != nil {
		return capacity.DefaultWorkDays
	}
	return wd
}
