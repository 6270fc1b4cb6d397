package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
)

// userStore is the account persistence surface the service needs
type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
	UpdateRole(ctx context.Context, id int64, role models.RoleType) error
}

// UserService defines the interface for account operations
type UserService interface {
	Register(ctx context.Context, req dto.CreateUserRequest) (*models.User, bool, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetInstructors(ctx context.Context) ([]*models.User, error)
	PromoteToAdmin(ctx context.Context, id int64) error
	PromoteToInstructor(ctx context.Context, id int64) error
	HasRole(ctx context.Context, email string, role models.RoleType) (bool, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo userStore
}

// NewUserService creates a new user service instance
func NewUserService(userRepo userStore) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// Register creates an account on first login. The boolean reports whether a
// new row was created; a duplicate email is not an error, because the
// frontend re-registers on every social sign-in.
func (s *userServiceImpl) Register(ctx context.Context, req dto.CreateUserRequest) (*models.User, bool, error) {
	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     models.RoleStudent,
	}

	err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			existing, getErr := s.userRepo.GetByEmail(ctx, req.Email)
			if getErr != nil {
				return nil, false, fmt.Errorf("error loading existing user: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("error registering user: %w", err)
	}

	return user, true, nil
}

// GetAllUsers retrieves every account
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// GetInstructors retrieves all instructor accounts
func (s *userServiceImpl) GetInstructors(ctx context.Context) ([]*models.User, error) {
	instructors, err := s.userRepo.GetByRole(ctx, models.RoleInstructor)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}
	return instructors, nil
}

// PromoteToAdmin grants the admin role to an account
func (s *userServiceImpl) PromoteToAdmin(ctx context.Context, id int64) error {
	return s.updateRole(ctx, id, models.RoleAdmin)
}

// PromoteToInstructor grants the instructor role to an account
func (s *userServiceImpl) PromoteToInstructor(ctx context.Context, id int64) error {
	return s.updateRole(ctx, id, models.RoleInstructor)
}

func (s *userServiceImpl) updateRole(ctx context.Context, id int64, role models.RoleType) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	err := s.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
		}
		return fmt.Errorf("error updating role: %w", err)
	}
	return nil
}

// HasRole reports whether the account with the given email holds the role.
// The stored role decides; asserted token claims are never consulted here.
func (s *userServiceImpl) HasRole(ctx context.Context, email string, role models.RoleType) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error checking role: %w", err)
	}
	return user.Role == role, nil
}
