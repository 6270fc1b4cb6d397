package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new student account", func(t *testing.T) {
		store := new(MockUserStore)
		svc := NewUserService(store)

		store.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "mia@example.com" && u.Role == models.RoleStudent
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 3
		}).Return(nil)

		user, created, err := svc.Register(ctx, dto.CreateUserRequest{Email: "mia@example.com", Name: "Mia"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(3), user.ID)
		store.AssertExpectations(t)
	})

	t.Run("duplicate email returns the existing account", func(t *testing.T) {
		store := new(MockUserStore)
		svc := NewUserService(store)

		existing := &models.User{ID: 3, Email: "mia@example.com", Role: models.RoleInstructor}
		store.On("Create", ctx, mock.Anything).Return(apperrors.ErrEmailAlreadyExists)
		store.On("GetByEmail", ctx, "mia@example.com").Return(existing, nil)

		user, created, err := svc.Register(ctx, dto.CreateUserRequest{Email: "mia@example.com", Name: "Mia"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, models.RoleInstructor, user.Role, "re-registration must not reset an upgraded role")
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		store := new(MockUserStore)
		svc := NewUserService(store)

		store.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

		_, _, err := svc.Register(ctx, dto.CreateUserRequest{Email: "mia@example.com"})
		assert.Error(t, err)
	})
}

func TestUserService_Promotions(t *testing.T) {
	ctx := context.Background()

	t.Run("promote to admin", func(t *testing.T) {
		store := new(MockUserStore)
		svc := NewUserService(store)

		store.On("UpdateRole", ctx, int64(3), models.RoleAdmin).Return(nil)

		assert.NoError(t, svc.PromoteToAdmin(ctx, 3))
		store.AssertExpectations(t)
	})

	t.Run("promote to instructor", func(t *testing.T) {
		store := new(MockUserStore)
		svc := NewUserService(store)

		store.On("UpdateRole", ctx, int64(3), models.RoleInstructor).Return(nil)

		assert.NoError(t, svc.PromoteToInstructor(ctx, 3))
	})

	t.Run("unknown user", func(t *testing.T) {
		store := new(MockUserStore)
		svc := NewUserService(store)

		store.On("UpdateRole", ctx, int64(99), models.RoleAdmin).Return(apperrors.ErrUserNotFound)

		assert.ErrorIs(t, svc.PromoteToAdmin(ctx, 99), apperrors.ErrUserNotFound)
	})

	t.Run("invalid ID rejected before the store", func(t *testing.T) {
		store := new(MockUserStore)
		svc := NewUserService(store)

		err := svc.PromoteToInstructor(ctx, 0)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		store.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_HasRole(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		stored   *models.User
		storeErr error
		role     models.RoleType
		want     bool
		wantErr  bool
	}{
		{
			name:   "stored role matches",
			stored: &models.User{Email: "ada@melodica.app", Role: models.RoleAdmin},
			role:   models.RoleAdmin,
			want:   true,
		},
		{
			name:   "stored role differs from the asserted one",
			stored: &models.User{Email: "ada@melodica.app", Role: models.RoleStudent},
			role:   models.RoleAdmin,
			want:   false,
		},
		{
			name:     "unknown account is simply not in the role",
			storeErr: apperrors.ErrUserNotFound,
			role:     models.RoleInstructor,
			want:     false,
		},
		{
			name:     "lookup failure surfaces",
			storeErr: errors.New("connection refused"),
			role:     models.RoleAdmin,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockUserStore)
			svc := NewUserService(store)

			store.On("GetByEmail", ctx, "ada@melodica.app").Return(tt.stored, tt.storeErr)

			got, err := svc.HasRole(ctx, "ada@melodica.app", tt.role)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserService_Listings(t *testing.T) {
	ctx := context.Background()
	store := new(MockUserStore)
	svc := NewUserService(store)

	store.On("GetAll", ctx).Return([]*models.User{{ID: 1}, {ID: 2}}, nil)
	store.On("GetByRole", ctx, models.RoleInstructor).Return([]*models.User{{ID: 2, Role: models.RoleInstructor}}, nil)

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	instructors, err := svc.GetInstructors(ctx)
	require.NoError(t, err)
	assert.Len(t, instructors, 1)
}
