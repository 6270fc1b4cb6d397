package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/app/repositories"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
)

// classStore is the catalog persistence surface the service needs
type classStore interface {
	Create(ctx context.Context, class *models.Class) error
	List(ctx context.Context, filter repositories.ClassFilter) ([]*models.Class, error)
	UpdateStatus(ctx context.Context, id int64, status models.ClassStatus) error
	UpdateFeedback(ctx context.Context, id int64, feedback string) error
}

// ClassService defines the interface for catalog operations
type ClassService interface {
	CreateClass(ctx context.Context, instructorEmail string, req dto.CreateClassRequest) (*models.Class, error)
	GetAllClasses(ctx context.Context) ([]*models.Class, error)
	GetApprovedClasses(ctx context.Context) ([]*models.Class, error)
	GetInstructorClasses(ctx context.Context, instructorEmail string) ([]*models.Class, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdateFeedback(ctx context.Context, id int64, feedback string) error
}

// classServiceImpl implements the ClassService interface
type classServiceImpl struct {
	classRepo classStore
}

// NewClassService creates a new class service instance
func NewClassService(classRepo classStore) ClassService {
	return &classServiceImpl{
		classRepo: classRepo,
	}
}

// CreateClass creates a pending class offering for the instructor
func (s *classServiceImpl) CreateClass(ctx context.Context, instructorEmail string, req dto.CreateClassRequest) (*models.Class, error) {
	if strings.TrimSpace(instructorEmail) == "" {
		return nil, fmt.Errorf("%w: instructor email is required", apperrors.ErrValidationFailed)
	}

	class := &models.Class{
		Name:            req.Name,
		ImageURL:        req.ImageURL,
		InstructorName:  req.InstructorName,
		InstructorEmail: instructorEmail,
		Price:           req.Price,
		TotalSeats:      req.TotalSeats,
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("error creating class: %w", err)
	}
	return class, nil
}

// GetAllClasses retrieves the full catalog regardless of approval state
func (s *classServiceImpl) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classRepo.List(ctx, repositories.ClassFilter{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}

// GetApprovedClasses retrieves classes open for enrollment
func (s *classServiceImpl) GetApprovedClasses(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classRepo.List(ctx, repositories.ClassFilter{Status: models.ClassStatusApproved})
	if err != nil {
		return nil, fmt.Errorf("error retrieving approved classes: %w", err)
	}
	return classes, nil
}

// GetInstructorClasses retrieves classes owned by the instructor email
func (s *classServiceImpl) GetInstructorClasses(ctx context.Context, instructorEmail string) ([]*models.Class, error) {
	classes, err := s.classRepo.List(ctx, repositories.ClassFilter{InstructorEmail: instructorEmail})
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructor classes: %w", err)
	}
	return classes, nil
}

// UpdateStatus records an admin approval decision
func (s *classServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !models.ValidClassDecision(status) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
	}

	err := s.classRepo.UpdateStatus(ctx, id, models.ClassStatus(status))
	if err != nil {
		if errors.Is(err, apperrors.ErrClassNotFound) {
			return apperrors.NewCustomError(apperrors.ErrClassNotFound, "Class not found")
		}
		return fmt.Errorf("error updating class status: %w", err)
	}
	return nil
}

// UpdateFeedback records admin feedback on a class
func (s *classServiceImpl) UpdateFeedback(ctx context.Context, id int64, feedback string) error {
	if strings.TrimSpace(feedback) == "" {
		return fmt.Errorf("%w: feedback cannot be empty", apperrors.ErrValidationFailed)
	}

	err := s.classRepo.UpdateFeedback(ctx, id, feedback)
	if err != nil {
		if errors.Is(err, apperrors.ErrClassNotFound) {
			return apperrors.NewCustomError(apperrors.ErrClassNotFound, "Class not found")
		}
		return fmt.Errorf("error updating class feedback: %w", err)
	}
	return nil
}
