package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
	"github.com/dkaya/melodica/internal/pkg/auth"
)

// HandleAPIError maps domain errors onto HTTP responses. Controllers call it
// for any service error they do not handle themselves.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrClassNotFound,
		apperrors.ErrCartEntryNotFound,
		apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"))
	case apperrors.Is(err, apperrors.ErrUnauthorized, auth.ErrInvalidToken, auth.ErrInvalidFormat):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized access"))
	case errors.Is(err, auth.ErrExpiredToken):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrDuplicatePayment):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeDuplicatePayment, "Payment already recorded for this cart entry"))
	case apperrors.Is(err, apperrors.ErrAlreadyInCart,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error()))
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidStatus,
		apperrors.ErrClassNotOpen,
		apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))
	default:
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}
