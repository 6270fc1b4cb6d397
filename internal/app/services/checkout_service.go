package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
	"github.com/dkaya/melodica/internal/pkg/payments"
)

// paymentStore is the payment persistence surface checkout needs
type paymentStore interface {
	Insert(ctx context.Context, payment *models.Payment) error
	ListByStudent(ctx context.Context, email string) ([]*models.Payment, error)
}

// enrollmentStore is the slice of the catalog checkout touches
type enrollmentStore interface {
	ConfirmEnrollment(ctx context.Context, id int64) error
}

// CheckoutService defines the interface for payment-intent creation and
// checkout completion
type CheckoutService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
	CompleteCheckout(ctx context.Context, studentEmail string, req dto.CompleteCheckoutRequest) (*dto.CheckoutResponse, error)
	PaymentHistory(ctx context.Context, email string) ([]*models.Payment, error)
}

// checkoutServiceImpl implements the CheckoutService interface
type checkoutServiceImpl struct {
	paymentRepo paymentStore
	cartRepo    cartStore
	classRepo   enrollmentStore
	intents     payments.IntentCreator
	currency    string
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(
	paymentRepo paymentStore,
	cartRepo cartStore,
	classRepo enrollmentStore,
	intents payments.IntentCreator,
	currency string,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		classRepo:   classRepo,
		intents:     intents,
		currency:    currency,
		logger:      logger,
	}
}

// CreatePaymentIntent asks the provider for an intent over the
// caller-supplied amount and returns the client secret. The amount is not
// checked against the class price; the upstream flow trusts the frontend
// here and that behavior is preserved deliberately.
func (s *checkoutServiceImpl) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amountCents := int64(math.Round(price * 100))
	if amountCents <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", apperrors.ErrValidationFailed)
	}

	secret, err := s.intents.CreateIntent(ctx, amountCents, s.currency)
	if err != nil {
		return "", fmt.Errorf("error creating payment intent: %w", err)
	}
	return secret, nil
}

// CompleteCheckout records the payment and settles the seat accounting.
// Step 1 (the payment insert) is the durability point: everything after it
// is best-effort and reported, never rolled back. A partial settlement
// comes back as ErrPartialCompletion alongside the result so callers can
// still acknowledge the payment. The unique cart reference
// on payments makes a second call for the same cart a clean conflict
// instead of a double enrollment.
func (s *checkoutServiceImpl) CompleteCheckout(ctx context.Context, studentEmail string, req dto.CompleteCheckoutRequest) (*dto.CheckoutResponse, error) {
	payment := &models.Payment{
		StudentEmail:   studentEmail,
		ClassID:        req.ClassID,
		CartID:         req.CartID,
		Amount:         req.Amount,
		TransactionRef: req.TransactionRef,
	}

	if err := s.paymentRepo.Insert(ctx, payment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicatePayment) {
			return nil, apperrors.NewCustomError(apperrors.ErrDuplicatePayment, "Payment already recorded for this cart entry")
		}
		return nil, fmt.Errorf("error recording payment: %w", err)
	}

	result := &dto.CheckoutResponse{Payment: payment, CartDeleted: true, Enrolled: true}

	// The held seat converts into an enrollment, so the cart entry goes
	// away without releasing the seat.
	if err := s.cartRepo.DeleteByID(ctx, req.CartID); err != nil {
		result.CartDeleted = false
		if errors.Is(err, apperrors.ErrCartEntryNotFound) {
			s.logger.Warn().Int64("cartID", req.CartID).Msg("Cart entry missing at checkout")
		} else {
			s.logger.Error().Err(err).Int64("cartID", req.CartID).Msg("Failed to delete cart entry after payment")
		}
	}

	if err := s.classRepo.ConfirmEnrollment(ctx, req.ClassID); err != nil {
		result.Enrolled = false
		s.logger.Error().Err(err).
			Int64("classID", req.ClassID).
			Int64("paymentID", payment.ID).
			Msg("Payment recorded but enrollment accounting failed")
	}

	if !result.CartDeleted || !result.Enrolled {
		return result, apperrors.NewCustomError(apperrors.ErrPartialCompletion, "Payment recorded but enrollment accounting incomplete")
	}

	return result, nil
}

// PaymentHistory retrieves the student's payment records, newest first
func (s *checkoutServiceImpl) PaymentHistory(ctx context.Context, email string) ([]*models.Payment, error) {
	history, err := s.paymentRepo.ListByStudent(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving payment history: %w", err)
	}
	return history, nil
}
