package service

import (
	"errors"
	"fmt"

	"team-capacity-backend/internal/database/models"
	apperrors "team-capacity-backend/internal/errors"
	"team-capacity-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name      string               `json:"name" validate:"required,min=1,max=200" example:"Apollo"`
	Color     string               `json:"color" validate:"required,hexcolor" example:"#3b82f6"`
	Status    models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=unconfirmed to_do in_progress completed" example:"in_progress"`
	IsVisible *bool                `json:"is_visible,omitempty"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Name      *string               `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Color     *string               `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Status    *models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=unconfirmed to_do in_progress completed"`
	IsVisible *bool                 `json:"is_visible,omitempty"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Color     string               `json:"color"`
	Status    models.ProjectStatus `json:"status"`
	IsVisible bool                 `json:"is_visible"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

// Create creates a new project
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusUnconfirmed
	}
	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	project := &models.Project{
		Name:      req.Name,
		Color:     req.Color,
		Status:    status,
		IsVisible: isVisible,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return toProjectResponse(project), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.getProject(id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetAll retrieves all projects
func (s *ProjectService) GetAll() ([]ProjectResponse, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *toProjectResponse(&projects[i])
	}
	return responses, nil
}

// Update updates a project
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	project, err := s.getProject(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Color != nil {
		project.Color = *req.Color
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.IsVisible != nil {
		project.IsVisible = *req.IsVisible
	}

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return toProjectResponse(project), nil
}

// Delete soft-deletes a project; its allocations keep referencing it
func (s *ProjectService) Delete(id uuid.UUID) error {
	if _, err := s.getProject(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) getProject(id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func toProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:        project.ID,
		Name:      project.Name,
		Color:     project.Color,
		Status:    project.Status,
		IsVisible: project.IsVisible,
		CreatedAt: project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: project.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
