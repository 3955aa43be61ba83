package service

import (
	"errors"
	"fmt"
	"strings"

	"team-capacity-backend/internal/database/models"
	apperrors "team-capacity-backend/internal/errors"
	"team-capacity-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for user accounts
type UserService struct {
	repo         repository.UserRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	validator    *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:         repo,
		employeeRepo: employeeRepo,
		validator:    validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200" example:"Jane Doe"`
	Email      string          `json:"email" validate:"required,email,max=255" example:"jane.doe@example.com"`
	Role       models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin member guest" example:"member"`
	EmployeeID *uuid.UUID      `json:"employee_id,omitempty"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	Name       *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email      *string          `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Role       *models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin member guest"`
	EmployeeID *uuid.UUID       `json:"employee_id,omitempty"`
}

// UserResponse represents a user account
type UserResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	EmployeeID *uuid.UUID      `json:"employee_id,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// Create creates a new user
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.ensureEmailFree(email, nil); err != nil {
		return nil, err
	}

	if req.EmployeeID != nil {
		if err := s.verifyEmployee(*req.EmployeeID); err != nil {
			return nil, err
		}
	}

	role := models.UserRoleMember
	if req.Role != "" {
		role = req.Role
	}

	user := &models.User{
		Name:       req.Name,
		Email:      email,
		Role:       role,
		EmployeeID: req.EmployeeID,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetAll retrieves all users
func (s *UserService) GetAll() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses, nil
}

// Update updates a user
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			if err := s.ensureEmailFree(email, &user.ID); err != nil {
				return nil, err
			}
		}
		user.Email = email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.EmployeeID != nil {
		if err := s.verifyEmployee(*req.EmployeeID); err != nil {
			return nil, err
		}
		user.EmployeeID = req.EmployeeID
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return toUserResponse(user), nil
}

// Delete hard-deletes a user
func (s *UserService) Delete(id uuid.UUID) error {
	if _, err := s.getUser(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) ensureEmailFree(email string, self *uuid.UUID) error {
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if self != nil && existing.ID == *self {
		return nil
	}
	return apperrors.ErrUserExists
}

func (s *UserService) verifyEmployee(id uuid.UUID) error {
	if _, err := s.employeeRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to verify employee: %w", err)
	}
	return nil
}

func (s *UserService) getUser(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func toUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
		CreatedAt:  u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  u.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
