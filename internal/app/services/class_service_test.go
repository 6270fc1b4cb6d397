package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/app/repositories"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
)

func TestClassService_CreateClass(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a class for the instructor", func(t *testing.T) {
		store := new(MockClassStore)
		svc := NewClassService(store)

		store.On("Create", ctx, mock.MatchedBy(func(c *models.Class) bool {
			return c.InstructorEmail == "ada@melodica.app" && c.Name == "Beginner Violin" && c.TotalSeats == 20
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Class).ID = 7
		}).Return(nil)

		class, err := svc.CreateClass(ctx, "ada@melodica.app", dto.CreateClassRequest{
			Name:           "Beginner Violin",
			InstructorName: "Ada Martin",
			Price:          100,
			TotalSeats:     20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), class.ID)
		store.AssertExpectations(t)
	})

	t.Run("rejects a missing instructor email", func(t *testing.T) {
		store := new(MockClassStore)
		svc := NewClassService(store)

		_, err := svc.CreateClass(ctx, "  ", dto.CreateClassRequest{Name: "X", InstructorName: "Y", Price: 1, TotalSeats: 1})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestClassService_Listings(t *testing.T) {
	ctx := context.Background()
	store := new(MockClassStore)
	svc := NewClassService(store)

	all := []*models.Class{{ID: 1, Status: models.ClassStatusPending}, {ID: 2, Status: models.ClassStatusApproved}}
	approved := []*models.Class{{ID: 2, Status: models.ClassStatusApproved}}
	mine := []*models.Class{{ID: 2, InstructorEmail: "ada@melodica.app"}}

	store.On("List", ctx, repositories.ClassFilter{}).Return(all, nil)
	store.On("List", ctx, repositories.ClassFilter{Status: models.ClassStatusApproved}).Return(approved, nil)
	store.On("List", ctx, repositories.ClassFilter{InstructorEmail: "ada@melodica.app"}).Return(mine, nil)

	got, err := svc.GetAllClasses(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.GetApprovedClasses(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.GetInstructorClasses(ctx, "ada@melodica.app")
	require.NoError(t, err)
	assert.Equal(t, "ada@melodica.app", got[0].InstructorEmail)
}

func TestClassService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("applies a valid decision", func(t *testing.T) {
		store := new(MockClassStore)
		svc := NewClassService(store)

		store.On("UpdateStatus", ctx, int64(7), models.ClassStatusApproved).Return(nil)

		assert.NoError(t, svc.UpdateStatus(ctx, 7, "APPROVED"))
		store.AssertExpectations(t)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		store := new(MockClassStore)
		svc := NewClassService(store)

		err := svc.UpdateStatus(ctx, 7, "MAYBE")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
		store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects moving a class back to pending", func(t *testing.T) {
		store := new(MockClassStore)
		svc := NewClassService(store)

		err := svc.UpdateStatus(ctx, 7, "PENDING")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
		store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing class passes through", func(t *testing.T) {
		store := new(MockClassStore)
		svc := NewClassService(store)

		store.On("UpdateStatus", ctx, int64(99), models.ClassStatusDenied).Return(apperrors.ErrClassNotFound)

		assert.ErrorIs(t, svc.UpdateStatus(ctx, 99, "DENIED"), apperrors.ErrClassNotFound)
	})
}

func TestClassService_UpdateFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("stores feedback", func(t *testing.T) {
		store := new(MockClassStore)
		svc := NewClassService(store)

		store.On("UpdateFeedback", ctx, int64(7), "Please add a syllabus.").Return(nil)

		assert.NoError(t, svc.UpdateFeedback(ctx, 7, "Please add a syllabus."))
	})

	t.Run("rejects empty feedback", func(t *testing.T) {
		store := new(MockClassStore)
		svc := NewClassService(store)

		err := svc.UpdateFeedback(ctx, 7, "   ")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}
