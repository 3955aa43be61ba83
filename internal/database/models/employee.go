package models

// Employee is a person whose weekly capacity is planned
type Employee struct {
	SoftDeleteModel
	Name               string   `json:"name" gorm:"not null;size:200;index" validate:"required,max=200"`
	Email              string   `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	WorkDays           WorkDays `json:"work_days" gorm:"type:jsonb;not null"`
	AnnualLeaveDefault int      `json:"annual_leave_default" gorm:"not null"`
	IsVisible          bool     `json:"is_visible" gorm:"not null;index"`

	Allocations []Allocation  `json:"allocations,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	AnnualLeave []AnnualLeave `json:"annual_leave,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
