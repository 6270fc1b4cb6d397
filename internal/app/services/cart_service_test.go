package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
)

func TestCartService_AddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves a seat and returns the entry", func(t *testing.T) {
		store := new(MockCartStore)
		svc := NewCartService(store, zerolog.Nop())

		store.On("AddEntry", ctx, mock.MatchedBy(func(e *models.CartEntry) bool {
			return e.StudentEmail == "sam@melodica.app" && e.ClassID == 7 && e.Price == 100
		})).Run(func(args mock.Arguments) {
			entry := args.Get(1).(*models.CartEntry)
			entry.ID = 3
		}).Return(nil)

		entry, err := svc.AddToCart(ctx, "sam@melodica.app", dto.AddToCartRequest{ClassID: 7, Price: 100})
		require.NoError(t, err)
		assert.Equal(t, int64(3), entry.ID)
		assert.Equal(t, "sam@melodica.app", entry.StudentEmail)
		store.AssertExpectations(t)
	})

	t.Run("sold out class surfaces as seats exhausted", func(t *testing.T) {
		store := new(MockCartStore)
		svc := NewCartService(store, zerolog.Nop())

		store.On("AddEntry", ctx, mock.Anything).Return(apperrors.ErrSeatsExhausted)

		entry, err := svc.AddToCart(ctx, "tia@melodica.app", dto.AddToCartRequest{ClassID: 7, Price: 100})
		assert.Nil(t, entry)
		assert.ErrorIs(t, err, apperrors.ErrSeatsExhausted)
	})

	t.Run("missing class passes through", func(t *testing.T) {
		store := new(MockCartStore)
		svc := NewCartService(store, zerolog.Nop())

		store.On("AddEntry", ctx, mock.Anything).Return(apperrors.ErrClassNotFound)

		_, err := svc.AddToCart(ctx, "sam@melodica.app", dto.AddToCartRequest{ClassID: 99, Price: 100})
		assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
	})

	t.Run("unapproved class is not bookable", func(t *testing.T) {
		store := new(MockCartStore)
		svc := NewCartService(store, zerolog.Nop())

		store.On("AddEntry", ctx, mock.Anything).Return(apperrors.ErrClassNotOpen)

		_, err := svc.AddToCart(ctx, "sam@melodica.app", dto.AddToCartRequest{ClassID: 7, Price: 100})
		assert.ErrorIs(t, err, apperrors.ErrClassNotOpen)
	})

	t.Run("store failure wraps the error", func(t *testing.T) {
		store := new(MockCartStore)
		svc := NewCartService(store, zerolog.Nop())

		store.On("AddEntry", ctx, mock.Anything).Return(errors.New("connection reset"))

		_, err := svc.AddToCart(ctx, "sam@melodica.app", dto.AddToCartRequest{ClassID: 7, Price: 100})
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrSeatsExhausted)
	})
}

func TestCartService_RemoveFromCart(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the entry", func(t *testing.T) {
		store := new(MockCartStore)
		svc := NewCartService(store, zerolog.Nop())

		store.On("RemoveEntry", ctx, int64(3)).Return(nil)

		err := svc.RemoveFromCart(ctx, 3)
		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("second removal is a no-op", func(t *testing.T) {
		store := new(MockCartStore)
		svc := NewCartService(store, zerolog.Nop())

		store.On("RemoveEntry", ctx, int64(3)).Return(nil).Once()
		store.On("RemoveEntry", ctx, int64(3)).Return(apperrors.ErrCartEntryNotFound).Once()

		require.NoError(t, svc.RemoveFromCart(ctx, 3))
		assert.NoError(t, svc.RemoveFromCart(ctx, 3))
		store.AssertExpectations(t)
	})

	t.Run("store failure is reported", func(t *testing.T) {
		store := new(MockCartStore)
		svc := NewCartService(store, zerolog.Nop())

		store.On("RemoveEntry", ctx, int64(3)).Return(errors.New("connection reset"))

		assert.Error(t, svc.RemoveFromCart(ctx, 3))
	})
}

func TestCartService_ListCart(t *testing.T) {
	ctx := context.Background()

	store := new(MockCartStore)
	svc := NewCartService(store, zerolog.Nop())

	entries := []*models.CartEntry{
		{ID: 1, StudentEmail: "sam@melodica.app", ClassID: 7, Price: 100},
		{ID: 2, StudentEmail: "sam@melodica.app", ClassID: 9, Price: 80},
	}
	store.On("ListByStudent", ctx, "sam@melodica.app").Return(entries, nil)

	got, err := svc.ListCart(ctx, "sam@melodica.app")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(7), got[0].ClassID)
}
