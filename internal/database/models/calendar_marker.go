package models

import (
	"time"

	"github.com/google/uuid"
)

// CalendarMarker annotates a single day. A nil CreatorID marks a system marker.
type CalendarMarker struct {
	BaseModel
	CreatorID   *uuid.UUID `json:"creator_id,omitempty" gorm:"type:uuid;index"`
	Date        time.Time  `json:"date" gorm:"type:date;not null;index"`
	Title       string     `json:"title" gorm:"not null;size:200"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	Color       string     `json:"color,omitempty" gorm:"size:20"`
	Type        MarkerType `json:"type" gorm:"type:varchar(20);not null"`

	Creator *Employee `json:"-" gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for CalendarMarker
func (CalendarMarker) TableName() string {
	return "calendar_markers"
}
