package models

// Project is something employees can be allocated to
type Project struct {
	SoftDeleteModel
	Name      string        `json:"name" gorm:"not null;size:200;index" validate:"required,max=200"`
	Color     string        `json:"color" gorm:"not null;size:20"`
	Status    ProjectStatus `json:"status" gorm:"type:varchar(20);not null"`
	IsVisible bool          `json:"is_visible" gorm:"not null;index"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
