package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
)

// cartStore is the cart persistence surface the service needs. AddEntry and
// RemoveEntry carry the seat hold atomically; DeleteByID leaves the seat
// counter alone and exists for checkout.
type cartStore interface {
	AddEntry(ctx context.Context, entry *models.CartEntry) error
	RemoveEntry(ctx context.Context, id int64) error
	ListByStudent(ctx context.Context, email string) ([]*models.CartEntry, error)
	DeleteByID(ctx context.Context, id int64) error
}

// CartService defines the interface for the seat-reservation workflow
type CartService interface {
	AddToCart(ctx context.Context, studentEmail string, req dto.AddToCartRequest) (*models.CartEntry, error)
	RemoveFromCart(ctx context.Context, id int64) error
	ListCart(ctx context.Context, email string) ([]*models.CartEntry, error)
}

// cartServiceImpl implements the CartService interface
type cartServiceImpl struct {
	cartRepo cartStore
	logger   zerolog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(cartRepo cartStore, logger zerolog.Logger) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// AddToCart reserves a seat for the student. A sold-out class surfaces as
// apperrors.ErrSeatsExhausted with no state change; the seat hold itself is
// a single atomic operation in the store, so concurrent adds for the last
// seat cannot both succeed.
func (s *cartServiceImpl) AddToCart(ctx context.Context, studentEmail string, req dto.AddToCartRequest) (*models.CartEntry, error) {
	entry := &models.CartEntry{
		StudentEmail: studentEmail,
		ClassID:      req.ClassID,
		Price:        req.Price,
	}

	err := s.cartRepo.AddEntry(ctx, entry)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrSeatsExhausted,
			apperrors.ErrClassNotFound,
			apperrors.ErrClassNotOpen,
			apperrors.ErrAlreadyInCart) {
			return nil, err
		}
		return nil, fmt.Errorf("error adding to cart: %w", err)
	}

	s.logger.Info().
		Str("student", studentEmail).
		Int64("classID", req.ClassID).
		Int64("cartID", entry.ID).
		Msg("Seat reserved in cart")

	return entry, nil
}

// RemoveFromCart releases the held seat and deletes the entry. A missing
// entry is a no-op so client retries stay harmless.
func (s *cartServiceImpl) RemoveFromCart(ctx context.Context, id int64) error {
	err := s.cartRepo.RemoveEntry(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCartEntryNotFound) {
			s.logger.Debug().Int64("cartID", id).Msg("Cart entry already removed")
			return nil
		}
		return fmt.Errorf("error removing from cart: %w", err)
	}
	return nil
}

// ListCart retrieves the student's cart entries
func (s *cartServiceImpl) ListCart(ctx context.Context, email string) ([]*models.CartEntry, error) {
	entries, err := s.cartRepo.ListByStudent(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving cart: %w", err)
	}
	return entries, nil
}
