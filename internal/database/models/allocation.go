package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation commits part of an employee's working week to a project, an SLA
// or miscellaneous work over an inclusive date range.
type Allocation struct {
	BaseModel
	EmployeeID  uuid.UUID       `json:"employee_id" gorm:"type:uuid;not null;index"`
	Type        AllocationType  `json:"type" gorm:"type:varchar(20);not null"`
	ProjectID   *uuid.UUID      `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Title       string          `json:"title,omitempty" gorm:"size:200"`
	StartDate   time.Time       `json:"start_date" gorm:"type:date;not null;index"`
	EndDate     time.Time       `json:"end_date" gorm:"type:date;not null;index"`
	DaysPerWeek decimal.Decimal `json:"days_per_week" gorm:"type:numeric(3,1);not null"`
	Notes       string          `json:"notes,omitempty" gorm:"type:text"`

	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Allocation
func (Allocation) TableName() string {
	return "allocations"
}

// Subject is what an allocation is for. Exactly one of ProjectSubject,
// SLASubject or MiscSubject.
type Subject interface {
	Type() AllocationType
	apply(a *Allocation)
}

// ProjectSubject books time on a project.
type ProjectSubject struct {
	ProjectID uuid.UUID
}

// SLASubject books time on a service-level commitment.
type SLASubject struct {
	Title string
}

// MiscSubject books time on anything else.
type MiscSubject struct {
	Title string
}

func (ProjectSubject) Type() AllocationType { return AllocationTypeProject }
func (SLASubject) Type() AllocationType     { return AllocationTypeSLA }
func (MiscSubject) Type() AllocationType    { return AllocationTypeMisc }

func (s ProjectSubject) apply(a *Allocation) {
	id := s.ProjectID
	a.ProjectID = &id
	a.Title = ""
}

func (s SLASubject) apply(a *Allocation) {
	a.ProjectID = nil
	a.Title = s.Title
}

func (s MiscSubject) apply(a *Allocation) {
	a.ProjectID = nil
	a.Title = s.Title
}

// SetSubject stores the subject's fields and discriminant on the allocation.
func (a *Allocation) SetSubject(s Subject) {
	a.Type = s.Type()
	s.apply(a)
}

// Label is the display name of the allocation.
func (a *Allocation) Label() string {
	if a.Type == AllocationTypeProject {
		if a.Project != nil && a.Project.Name != "" {
			return a.Project.Name
		}
		return "project allocation " + a.ID.String()
	}
	return a.Title
}
