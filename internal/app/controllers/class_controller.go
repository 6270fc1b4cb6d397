package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/app/services"
	"github.com/dkaya/melodica/internal/middleware"
)

// ClassController handles catalog operations
type ClassController struct {
	classService services.ClassService
	logger       zerolog.Logger
}

// NewClassController creates a new class controller
func NewClassController(classService services.ClassService, logger zerolog.Logger) *ClassController {
	return &ClassController{
		classService: classService,
		logger:       logger,
	}
}

// CreateClass submits a new class for admin approval
// @Summary Create a class
// @Description Creates a class in PENDING state owned by the authenticated instructor. Available seats start equal to total seats.
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class information"
// @Success 201 {object} dto.APIResponse{data=models.Class} "Class created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class, err := c.classService.CreateClass(ctx.Request.Context(), ctx.GetString("email"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("classId", class.ID).Str("instructor", class.InstructorEmail).Msg("Class submitted for approval")
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Class submitted for approval", class))
}

// GetAllClasses lists the full catalog
// @Summary List all classes
// @Description Retrieves every class regardless of approval state. Admin only.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Class} "Classes retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /classes [get]
func (c *ClassController) GetAllClasses(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(classes))
}

// GetApprovedClasses lists classes open for enrollment
// @Summary List approved classes
// @Description Retrieves classes approved for enrollment. Public.
// @Tags classes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Class} "Classes retrieved"
// @Router /approvedClasses [get]
func (c *ClassController) GetApprovedClasses(ctx *gin.Context) {
	classes, err := c.classService.GetApprovedClasses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(classes))
}

// GetInstructorClasses lists classes owned by the requesting instructor
// @Summary List an instructor's classes
// @Description Retrieves classes owned by the email in the query. The email must match the authenticated subject.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param email query string true "Instructor email"
// @Success 200 {object} dto.APIResponse{data=[]models.Class} "Classes retrieved"
// @Failure 403 {object} dto.ErrorResponse "Forbidden access"
// @Router /instructorClasses [get]
func (c *ClassController) GetInstructorClasses(ctx *gin.Context) {
	classes, err := c.classService.GetInstructorClasses(ctx.Request.Context(), ctx.Query("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(classes))
}

// UpdateStatus records an admin approval decision
// @Summary Approve or deny a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Param request body dto.UpdateClassStatusRequest true "Decision"
// @Success 200 {object} dto.APIResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/admin/{id} [patch]
func (c *ClassController) UpdateStatus(ctx *gin.Context) {
	id, ok := c.classID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateClassStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.classService.UpdateStatus(ctx.Request.Context(), id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("classId", id).Str("status", req.Status).Msg("Class status updated")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Status updated", nil))
}

// UpdateFeedback records admin feedback on a class
// @Summary Send feedback to an instructor
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Param request body dto.UpdateFeedbackRequest true "Feedback"
// @Success 200 {object} dto.APIResponse "Feedback saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/updateFeedback/admin/{id} [patch]
func (c *ClassController) UpdateFeedback(ctx *gin.Context) {
	id, ok := c.classID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.classService.UpdateFeedback(ctx.Request.Context(), id, req.Feedback); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Feedback saved", nil))
}

func (c *ClassController) classID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
