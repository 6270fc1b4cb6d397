// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/pkg/auth"
)

// AuthController handles token issuance
type AuthController struct {
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(jwtService *auth.JWTService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		jwtService: jwtService,
		logger:     logger,
	}
}

// IssueToken mints a bearer token for the asserted identity.
// Issuance is unauthenticated and the role claim is client-asserted; every
// privileged endpoint re-checks the stored role, so the claim is advisory.
// @Summary Issue a JWT
// @Description Issues a bearer token for the given email. The token only gates access; roles are enforced against stored accounts.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Identity to issue a token for"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jwt [post]
func (c *AuthController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid token request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = string(models.RoleStudent)
	}
	if !models.ValidRole(role) {
		c.logger.Warn().Str("role", req.Role).Msg("Rejected token request with unknown role")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown role: "+req.Role)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, expiresAt, err := c.jwtService.IssueToken(req.Email, role)
	if err != nil {
		c.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to issue token")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Failed to issue token")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}))
}
