package repository

import (
	"time"

	"team-capacity-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarMarkerRepository handles database operations for calendar markers
type CalendarMarkerRepository struct {
	db *gorm.DB
}

// NewCalendarMarkerRepository creates a new calendar marker repository
func NewCalendarMarkerRepository(db *gorm.DB) *CalendarMarkerRepository {
	return &CalendarMarkerRepository{db: db}
}

// Create creates a new marker
func (r *CalendarMarkerRepository) Create(marker *models.CalendarMarker) error {
	return r.db.Create(marker).Error
}

// GetByID retrieves a marker by ID
func (r *CalendarMarkerRepository) GetByID(id uuid.UUID) (*models.CalendarMarker, error) {
	var marker models.CalendarMarker
	err := r.db.First(&marker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &marker, nil
}

// GetInRange retrieves markers dated within [start, end] inclusive
func (r *CalendarMarkerRepository) GetInRange(start, end time.Time) ([]models.CalendarMarker, error) {
	var markers []models.CalendarMarker
	err := r.db.
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC, title ASC").
		Find(&markers).Error
	return markers, err
}

// Update updates an existing marker
func (r *CalendarMarkerRepository) Update(marker *models.CalendarMarker) error {
	return r.db.Save(marker).Error
}

// Delete hard-deletes a marker
func (r *CalendarMarkerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CalendarMarker{}, "id = ?", id).Error
}
