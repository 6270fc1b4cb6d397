package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dkaya/melodica/internal/app/controllers"
	"github.com/dkaya/melodica/internal/app/models"
	"github.com/dkaya/melodica/internal/app/models/dto"
	"github.com/dkaya/melodica/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	classController *controllers.ClassController,
	cartController *controllers.CartController,
	paymentController *controllers.PaymentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.POST("/jwt", authController.IssueToken)
	router.POST("/users", userController.Register)
	router.GET("/instructors", userController.GetInstructors)
	router.GET("/approvedClasses", classController.GetApprovedClasses)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Role probes; a mismatched email reports false rather than failing
		authenticated.GET("/users/admin/:email", userController.CheckAdmin)
		authenticated.GET("/users/instructor/:email", userController.CheckInstructor)

		// Owner-scoped reads keyed by the email query parameter
		owned := authenticated.Group("")
		owned.Use(authMiddleware.OwnerRequired())
		{
			owned.GET("/carts", cartController.ListCart)
			owned.GET("/paidClasses", paymentController.PaymentHistory)
			owned.GET("/instructorClasses",
				authMiddleware.RoleRequired(models.RoleInstructor),
				classController.GetInstructorClasses)
		}

		// Cart and checkout
		authenticated.POST("/carts", cartController.AddToCart)
		authenticated.DELETE("/carts/:id", cartController.RemoveFromCart)
		authenticated.POST("/create-payment-intent", paymentController.CreateIntent)
		authenticated.POST("/payments", paymentController.CompleteCheckout)

		// Instructor routes; the stored role decides, not the token claim
		instructorProtected := authenticated.Group("")
		instructorProtected.Use(authMiddleware.RoleRequired(models.RoleInstructor))
		{
			instructorProtected.POST("/classes", classController.CreateClass)
		}

		// Admin routes
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminProtected.GET("/users", userController.GetAllUsers)
			adminProtected.PATCH("/users/admin/:id", userController.PromoteToAdmin)
			adminProtected.PATCH("/users/instructor/:id", userController.PromoteToInstructor)
			adminProtected.GET("/classes", classController.GetAllClasses)
			adminProtected.PATCH("/classes/admin/:id", classController.UpdateStatus)
			adminProtected.PATCH("/classes/updateFeedback/admin/:id", classController.UpdateFeedback)
		}
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
