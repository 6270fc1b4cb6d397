package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/app/services"
	"github.com/dkaya/melodica/internal/middleware"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
)

// CartController handles seat reservation operations
type CartController struct {
	cartService services.CartService
	logger      zerolog.Logger
}

// NewCartController creates a new cart controller
func NewCartController(cartService services.CartService, logger zerolog.Logger) *CartController {
	return &CartController{
		cartService: cartService,
		logger:      logger,
	}
}

// AddToCart reserves a seat and records the cart entry.
// A sold-out class is a normal outcome for the frontend, so it answers 200
// with a message instead of an error status.
// @Summary Add a class to the cart
// @Description Atomically reserves a seat in the class and records a cart entry for the authenticated student.
// @Tags carts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddToCartRequest true "Class to reserve"
// @Success 200 {object} dto.APIResponse "No seats available"
// @Success 201 {object} dto.APIResponse{data=models.CartEntry} "Seat reserved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 409 {object} dto.ErrorResponse "Class already in cart"
// @Router /carts [post]
func (c *CartController) AddToCart(ctx *gin.Context) {
	var req dto.AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	email := ctx.GetString("email")
	entry, err := c.cartService.AddToCart(ctx.Request.Context(), email, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSeatsExhausted) {
			c.logger.Info().Int64("classId", req.ClassID).Str("student", email).Msg("Reservation refused, class sold out")
			ctx.JSON(http.StatusOK, dto.NewMessageResponse("No seats available", nil))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Seat reserved", entry))
}

// ListCart lists the authenticated student's cart
// @Summary List cart entries
// @Description Retrieves cart entries for the email in the query. The email must match the authenticated subject.
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param email query string true "Student email"
// @Success 200 {object} dto.APIResponse{data=[]models.CartEntry} "Cart retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden access"
// @Router /carts [get]
func (c *CartController) ListCart(ctx *gin.Context) {
	entries, err := c.cartService.ListCart(ctx.Request.Context(), ctx.Query("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// RemoveFromCart releases a reserved seat. Removing an entry that is already
// gone succeeds, so retries are safe.
// @Summary Remove a cart entry
// @Description Deletes the cart entry and returns its seat to the class.
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart entry ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Entry removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid cart entry ID"
// @Router /carts/{id} [delete]
func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid cart entry ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.cartService.RemoveFromCart(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Entry removed", nil))
}
