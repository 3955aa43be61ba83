package service

import (
	"errors"
	"fmt"
	"time"

	"team-capacity-backend/internal/capacity"
	"team-capacity-backend/internal/database/models"
	apperrors "team-capacity-backend/internal/errors"
	"team-capacity-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarMarkerService handles business logic for calendar markers
type CalendarMarkerService struct {
	repo         repository.CalendarMarkerRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	validator    *validator.Validate
	now          func() time.Time
}

// NewCalendarMarkerService creates a new calendar marker service
func NewCalendarMarkerService(repo repository.CalendarMarkerRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, validator *validator.Validate) *CalendarMarkerService {
	return &CalendarMarkerService{
		repo:         repo,
		employeeRepo: employeeRepo,
		validator:    validator,
		now:          time.Now,
	}
}

// CreateCalendarMarkerRequest represents the request to create a marker
type CreateCalendarMarkerRequest struct {
	CreatorID   *uuid.UUID        `json:"creator_id,omitempty"`
	Date        string            `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-29"`
	Title       string            `json:"title" validate:"required,min=1,max=200" example:"Release 2.0"`
	Description string            `json:"description,omitempty"`
	Color       string            `json:"color,omitempty" validate:"omitempty,hexcolor" example:"#f97316"`
	Type        models.MarkerType `json:"type,omitempty" validate:"omitempty,oneof=custom project_end milestone" example:"milestone"`
}

// UpdateCalendarMarkerRequest represents the request to update a marker
type UpdateCalendarMarkerRequest struct {
	Date        *string            `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Title       *string            `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string            `json:"description,omitempty"`
	Color       *string            `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Type        *models.MarkerType `json:"type,omitempty" validate:"omitempty,oneof=custom project_end milestone"`
}

// CalendarMarkerResponse represents a calendar marker
type CalendarMarkerResponse struct {
	ID          uuid.UUID         `json:"id"`
	CreatorID   *uuid.UUID        `json:"creator_id,omitempty"`
	Date        string            `json:"date"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Color       string            `json:"color,omitempty"`
	Type        models.MarkerType `json:"type"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// Create creates a new marker
func (s *CalendarMarkerService) Create(req *CreateCalendarMarkerRequest) (*CalendarMarkerResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	date, err := capacity.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be a date in YYYY-MM-DD format")
	}

	if req.CreatorID != nil {
		if err := s.verifyCreator(*req.CreatorID); err != nil {
			return nil, err
		}
	}

	markerType := models.MarkerTypeCustom
	if req.Type != "" {
		markerType = req.Type
	}

	marker := &models.CalendarMarker{
		CreatorID:   req.CreatorID,
		Date:        date,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		Type:        markerType,
	}

	if err := s.repo.Create(marker); err != nil {
		return nil, fmt.Errorf("failed to create calendar marker: %w", err)
	}

	return toCalendarMarkerResponse(marker), nil
}

// GetByID retrieves a marker by ID
func (s *CalendarMarkerService) GetByID(id uuid.UUID) (*CalendarMarkerResponse, error) {
	marker, err := s.getMarker(id)
	if err != nil {
		return nil, err
	}
	return toCalendarMarkerResponse(marker), nil
}

// GetInRange lists markers dated within [start, end]. Both bounds are optional
// together and default to the current calendar window.
func (s *CalendarMarkerService) GetInRange(start, end string) ([]CalendarMarkerResponse, error) {
	window, err := resolveWindow(start, end, s.now())
	if err != nil {
		return nil, err
	}

	markers, err := s.repo.GetInRange(window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar markers: %w", err)
	}

	return toCalendarMarkerResponses(markers), nil
}

// Update updates a marker
func (s *CalendarMarkerService) Update(id uuid.UUID, req *UpdateCalendarMarkerRequest) (*CalendarMarkerResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	marker, err := s.getMarker(id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := capacity.ParseDate(*req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "must be a date in YYYY-MM-DD format")
		}
		marker.Date = date
	}
	if req.Title != nil {
		marker.Title = *req.Title
	}
	if req.Description != nil {
		marker.Description = *req.Description
	}
	if req.Color != nil {
		marker.Color = *req.Color
	}
	if req.Type != nil {
		marker.Type = *req.Type
	}

	if err := s.repo.Update(marker); err != nil {
		return nil, fmt.Errorf("failed to update calendar marker: %w", err)
	}

	return toCalendarMarkerResponse(marker), nil
}

// Delete hard-deletes a marker
func (s *CalendarMarkerService) Delete(id uuid.UUID) error {
	if _, err := s.getMarker(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete calendar marker: %w", err)
	}
	return nil
}

func (s *CalendarMarkerService) verifyCreator(id uuid.UUID) error {
	if _, err := s.employeeRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to verify marker creator: %w", err)
	}
	return nil
}

func (s *CalendarMarkerService) getMarker(id uuid.UUID) (*models.CalendarMarker, error) {
	marker, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMarkerNotFound
		}
		return nil, fmt.Errorf("failed to get calendar marker: %w", err)
	}
	return marker, nil
}

func toCalendarMarkerResponse(m *models.CalendarMarker) *CalendarMarkerResponse {
	return &CalendarMarkerResponse{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Date:        capacity.FormatDate(m.Date),
		Title:       m.Title,
		Description: m.Description,
		Color:       m.Color,
		Type:        m.Type,
		CreatedAt:   m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   m.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toCalendarMarkerResponses(markers []models.CalendarMarker) []CalendarMarkerResponse {
	responses := make([]CalendarMarkerResponse, len(markers))
	for i := range markers {
		responses[i] = *toCalendarMarkerResponse(&markers[i])
	}
	return responses
}
