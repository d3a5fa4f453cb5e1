package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subhadipbhowmik/hirequest/internal/app/controllers"
	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	placementController *controllers.PlacementController,
	applicationController *controllers.ApplicationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public student routes ---
	students := api.Group("/students")
	{
		students.POST("/signup", authController.Signup)
		students.POST("/login", authController.Login)
	}

	// --- Public placement directory (read path) ---
	placements := api.Group("/placements")
	{
		placements.GET("", placementController.GetAll)
		placements.GET("/:id", placementController.GetByID)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/students/me", authController.GetCurrentStudent)
		authenticated.PUT("/students/profile", authController.UpdateProfile)
		authenticated.GET("/students/profile", applicationController.GetMyApplications)

		authenticated.POST("/applications/:placementId", applicationController.Apply)

		// Posting drives is restricted to placement-cell coordinators.
		coordinatorOnly := authenticated.Group("/placements")
		coordinatorOnly.Use(authMiddleware.RoleRequired(string(models.RoleCoordinator)))
		{
			coordinatorOnly.POST("", placementController.Create)
		}
	}
}
