package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/app/services"
	"github.com/dkaya/melodica/internal/middleware"
)

// UserController handles account operations
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// Register creates an account on first login
// @Summary Register a user
// @Description Creates an account for a social sign-in. Re-registering an existing email returns the stored account unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Account information"
// @Success 200 {object} dto.APIResponse{data=models.User} "Existing account returned"
// @Success 201 {object} dto.APIResponse{data=models.User} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, created, err := c.userService.Register(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	message := "Account already registered"
	if created {
		status = http.StatusCreated
		message = "Account created"
	}
	ctx.JSON(status, dto.NewMessageResponse(message, user))
}

// GetAllUsers lists every account
// @Summary List users
// @Description Retrieves all accounts. Admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(users))
}

// GetInstructors lists instructor accounts
// @Summary List instructors
// @Description Retrieves all accounts holding the instructor role. Public.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Instructors retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructors [get]
func (c *UserController) GetInstructors(ctx *gin.Context) {
	instructors, err := c.userService.GetInstructors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructors))
}

// PromoteToAdmin grants the admin role
// @Summary Promote a user to admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Role updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/admin/{id} [patch]
func (c *UserController) PromoteToAdmin(ctx *gin.Context) {
	c.promote(ctx, c.userService.PromoteToAdmin)
}

// PromoteToInstructor grants the instructor role
// @Summary Promote a user to instructor
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Role updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/instructor/{id} [patch]
func (c *UserController) PromoteToInstructor(ctx *gin.Context) {
	c.promote(ctx, c.userService.PromoteToInstructor)
}

func (c *UserController) promote(ctx *gin.Context, apply func(ctx context.Context, id int64) error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := apply(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Role updated", nil))
}

// CheckAdmin reports whether the account holds the admin role
// @Summary Check admin role
// @Description Reports whether the stored account for the email is an admin. Callers may only query their own email; a mismatch reports false.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Account email"
// @Success 200 {object} dto.APIResponse{data=dto.RoleCheckResponse} "Role check result"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/admin/{email} [get]
func (c *UserController) CheckAdmin(ctx *gin.Context) {
	c.checkRole(ctx, models.RoleAdmin)
}

// CheckInstructor reports whether the account holds the instructor role
// @Summary Check instructor role
// @Description Reports whether the stored account for the email is an instructor. Callers may only query their own email; a mismatch reports false.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Account email"
// @Success 200 {object} dto.APIResponse{data=dto.RoleCheckResponse} "Role check result"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/instructor/{email} [get]
func (c *UserController) CheckInstructor(ctx *gin.Context) {
	c.checkRole(ctx, models.RoleInstructor)
}

// checkRole answers a role probe. Asking about someone else's email is not
// an error; it just reports false, matching the frontend contract.
func (c *UserController) checkRole(ctx *gin.Context, role models.RoleType) {
	email := ctx.Param("email")
	holds := false

	if email == ctx.GetString("email") {
		var err error
		holds, err = c.userService.HasRole(ctx.Request.Context(), email, role)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	resp := dto.RoleCheckResponse{}
	switch role {
	case models.RoleAdmin:
		resp.Admin = holds
	case models.RoleInstructor:
		resp.Instructor = holds
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
