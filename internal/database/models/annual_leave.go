package models

import (
	"time"

	"github.com/google/uuid"
)

// AnnualLeave is an inclusive span of time off. DaysCount is stored as given
// and is not kept in step with the dates.
type AnnualLeave struct {
	BaseModel
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index"`
	StartDate  time.Time `json:"start_date" gorm:"type:date;not null;index"`
	EndDate    time.Time `json:"end_date" gorm:"type:date;not null;index"`
	DaysCount  int       `json:"days_count" gorm:"not null"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
}

// TableName returns the table name for AnnualLeave
func (AnnualLeave) TableName() string {
	return "annual_leave"
}
