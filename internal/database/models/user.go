package models

import (
	"github.com/google/uuid"
)

// User is an account that signs in to the planner. Guests may be linked to
// an employee record that is then hidden from the shared calendar.
type User struct {
	BaseModel
	Name       string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email      string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role       UserRole   `json:"role" gorm:"type:varchar(20);not null"`
	EmployeeID *uuid.UUID `json:"employee_id,omitempty" gorm:"type:uuid;index"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
