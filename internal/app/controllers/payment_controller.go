package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/app/services"
	"github.com/dkaya/melodica/internal/middleware"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
)

// PaymentController handles checkout operations
type PaymentController struct {
	checkoutService services.CheckoutService
	logger          zerolog.Logger
}

// NewPaymentController creates a new payment controller
func NewPaymentController(checkoutService services.CheckoutService, logger zerolog.Logger) *PaymentController {
	return &PaymentController{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// CreateIntent opens a payment intent with the provider
// @Summary Create a payment intent
// @Description Creates a provider payment intent for the given price and returns its client secret.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateIntentRequest true "Amount to charge"
// @Success 200 {object} dto.APIResponse{data=dto.CreateIntentResponse} "Intent created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Payment provider error"
// @Router /create-payment-intent [post]
func (c *PaymentController) CreateIntent(ctx *gin.Context) {
	var req dto.CreateIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	clientSecret, err := c.checkoutService.CreatePaymentIntent(ctx.Request.Context(), req.Price)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create payment intent")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CreateIntentResponse{ClientSecret: clientSecret}))
}

// CompleteCheckout records a confirmed payment and settles the cart entry.
// The payment record is the durable outcome; cart deletion and enrollment
// accounting are best effort and reported in the warning field when they
// could not complete.
// @Summary Complete a checkout
// @Description Records the payment, removes the cart entry, and confirms the enrollment. A repeated cart ID is rejected.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CompleteCheckoutRequest true "Confirmed payment"
// @Success 201 {object} dto.APIResponse{data=dto.CheckoutResponse} "Payment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Payment already recorded for this cart entry"
// @Router /payments [post]
func (c *PaymentController) CompleteCheckout(ctx *gin.Context) {
	var req dto.CompleteCheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.checkoutService.CompleteCheckout(ctx.Request.Context(), ctx.GetString("email"), req)
	if err != nil && !errors.Is(err, apperrors.ErrPartialCompletion) {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewMessageResponse("Payment recorded", result)
	if err != nil {
		resp.Warning = "Payment recorded but enrollment accounting incomplete"
		c.logger.Warn().
			Int64("cartId", req.CartID).
			Bool("cartDeleted", result.CartDeleted).
			Bool("enrolled", result.Enrolled).
			Msg("Checkout completed partially")
	}
	ctx.JSON(http.StatusCreated, resp)
}

// PaymentHistory lists the authenticated student's paid classes
// @Summary List paid classes
// @Description Retrieves the payment history for the email in the query, newest first. The email must match the authenticated subject.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string true "Student email"
// @Success 200 {object} dto.APIResponse{data=[]models.Payment} "Payments retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden access"
// @Router /paidClasses [get]
func (c *PaymentController) PaymentHistory(ctx *gin.Context) {
	payments, err := c.checkoutService.PaymentHistory(ctx.Request.Context(), ctx.Query("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(payments))
}
