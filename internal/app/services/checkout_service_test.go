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

func newCheckoutFixture() (*MockPaymentStore, *MockCartStore, *MockClassStore, *MockIntentCreator, CheckoutService) {
	payments := new(MockPaymentStore)
	carts := new(MockCartStore)
	classes := new(MockClassStore)
	intents := new(MockIntentCreator)
	svc := NewCheckoutService(payments, carts, classes, intents, "usd", zerolog.Nop())
	return payments, carts, classes, intents, svc
}

func TestCheckoutService_CreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("converts price to cents and returns the client secret", func(t *testing.T) {
		_, _, _, intents, svc := newCheckoutFixture()

		intents.On("CreateIntent", ctx, int64(10050), "usd").Return("pi_secret_123", nil)

		secret, err := svc.CreatePaymentIntent(ctx, 100.50)
		require.NoError(t, err)
		assert.Equal(t, "pi_secret_123", secret)
		intents.AssertExpectations(t)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, _, _, _, svc := newCheckoutFixture()

		_, err := svc.CreatePaymentIntent(ctx, 0)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("provider failure is reported", func(t *testing.T) {
		_, _, _, intents, svc := newCheckoutFixture()

		intents.On("CreateIntent", ctx, int64(10000), "usd").Return("", errors.New("provider down"))

		_, err := svc.CreatePaymentIntent(ctx, 100)
		assert.Error(t, err)
	})
}

func TestCheckoutService_CompleteCheckout(t *testing.T) {
	ctx := context.Background()
	req := dto.CompleteCheckoutRequest{
		ClassID:        7,
		CartID:         3,
		Amount:         100,
		TransactionRef: "pi_abc",
	}

	t.Run("records payment, deletes cart and enrolls", func(t *testing.T) {
		payments, carts, classes, _, svc := newCheckoutFixture()

		payments.On("Insert", ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.StudentEmail == "sam@melodica.app" && p.CartID == 3 && p.ClassID == 7
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Payment).ID = 11
		}).Return(nil)
		carts.On("DeleteByID", ctx, int64(3)).Return(nil)
		classes.On("ConfirmEnrollment", ctx, int64(7)).Return(nil)

		result, err := svc.CompleteCheckout(ctx, "sam@melodica.app", req)
		require.NoError(t, err)
		assert.True(t, result.CartDeleted)
		assert.True(t, result.Enrolled)
		assert.Equal(t, int64(11), result.Payment.ID)
		payments.AssertExpectations(t)
		carts.AssertExpectations(t)
		classes.AssertExpectations(t)
	})

	t.Run("second checkout for the same cart is rejected before any accounting", func(t *testing.T) {
		payments, carts, classes, _, svc := newCheckoutFixture()

		payments.On("Insert", ctx, mock.Anything).Return(apperrors.ErrDuplicatePayment)

		result, err := svc.CompleteCheckout(ctx, "sam@melodica.app", req)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrDuplicatePayment)
		carts.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
		classes.AssertNotCalled(t, "ConfirmEnrollment", mock.Anything, mock.Anything)
	})

	t.Run("missing cart entry reports partial completion, payment stands", func(t *testing.T) {
		payments, carts, classes, _, svc := newCheckoutFixture()

		payments.On("Insert", ctx, mock.Anything).Return(nil)
		carts.On("DeleteByID", ctx, int64(3)).Return(apperrors.ErrCartEntryNotFound)
		classes.On("ConfirmEnrollment", ctx, int64(7)).Return(nil)

		result, err := svc.CompleteCheckout(ctx, "sam@melodica.app", req)
		assert.ErrorIs(t, err, apperrors.ErrPartialCompletion)
		require.NotNil(t, result)
		assert.False(t, result.CartDeleted)
		assert.True(t, result.Enrolled)
	})

	t.Run("enrollment failure surfaces as partial completion, payment stands", func(t *testing.T) {
		payments, carts, classes, _, svc := newCheckoutFixture()

		payments.On("Insert", ctx, mock.Anything).Return(nil)
		carts.On("DeleteByID", ctx, int64(3)).Return(nil)
		classes.On("ConfirmEnrollment", ctx, int64(7)).Return(apperrors.ErrClassNotFound)

		result, err := svc.CompleteCheckout(ctx, "sam@melodica.app", req)
		assert.ErrorIs(t, err, apperrors.ErrPartialCompletion)
		require.NotNil(t, result)
		assert.NotNil(t, result.Payment)
		assert.True(t, result.CartDeleted)
		assert.False(t, result.Enrolled)
	})

	t.Run("insert failure aborts the checkout", func(t *testing.T) {
		payments, carts, _, _, svc := newCheckoutFixture()

		payments.On("Insert", ctx, mock.Anything).Return(errors.New("connection reset"))

		result, err := svc.CompleteCheckout(ctx, "sam@melodica.app", req)
		assert.Nil(t, result)
		assert.Error(t, err)
		carts.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}

// Checkout after a cart hold must finish with the seat still out of the
// available pool and exactly one enrollment: the happy path above plus this
// sequence pin down the single-counting policy at the service level.
func TestCheckoutService_SeatAccountingSequence(t *testing.T) {
	ctx := context.Background()

	payments, carts, classes, _, svc := newCheckoutFixture()
	cartSvc := NewCartService(carts, zerolog.Nop())

	// Student S takes the last seat.
	carts.On("AddEntry", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.CartEntry).ID = 3
	}).Return(nil).Once()

	entry, err := cartSvc.AddToCart(ctx, "sam@melodica.app", dto.AddToCartRequest{ClassID: 7, Price: 100})
	require.NoError(t, err)

	// Student T is turned away.
	carts.On("AddEntry", ctx, mock.Anything).Return(apperrors.ErrSeatsExhausted).Once()
	_, err = cartSvc.AddToCart(ctx, "tia@melodica.app", dto.AddToCartRequest{ClassID: 7, Price: 100})
	assert.ErrorIs(t, err, apperrors.ErrSeatsExhausted)

	// S checks out: the cart row goes, enrollment is confirmed exactly once,
	// and nothing releases the seat back.
	payments.On("Insert", ctx, mock.Anything).Return(nil).Once()
	carts.On("DeleteByID", ctx, entry.ID).Return(nil).Once()
	classes.On("ConfirmEnrollment", ctx, int64(7)).Return(nil).Once()

	result, err := svc.CompleteCheckout(ctx, "sam@melodica.app", dto.CompleteCheckoutRequest{
		ClassID:        7,
		CartID:         entry.ID,
		Amount:         100,
		TransactionRef: "pi_abc",
	})
	require.NoError(t, err)
	assert.True(t, result.Enrolled)
	carts.AssertNotCalled(t, "RemoveEntry", mock.Anything, mock.Anything)
	classes.AssertNumberOfCalls(t, "ConfirmEnrollment", 1)
}

func TestCheckoutService_PaymentHistory(t *testing.T) {
	ctx := context.Background()
	payments, _, _, _, svc := newCheckoutFixture()

	history := []*models.Payment{
		{ID: 2, StudentEmail: "sam@melodica.app", ClassID: 9},
		{ID: 1, StudentEmail: "sam@melodica.app", ClassID: 7},
	}
	payments.On("ListByStudent", ctx, "sam@melodica.app").Return(history, nil)

	got, err := svc.PaymentHistory(ctx, "sam@melodica.app")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}
