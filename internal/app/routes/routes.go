package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/keremavci/studentapi/internal/app/controllers"
	"github.com/keremavci/studentapi/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Protected student routes ---
	// Authentication is enforced on the whole group; login is the only
	// route outside the gate.
	students := api.Group("/students")
	students.Use(authMiddleware.JWTAuth())
	{
		// State lookup routes are registered before the id routes so the
		// static "states" segment wins over the :id parameter.
		students.GET("/states", studentController.GetStates)
		students.POST("/states", studentController.CreateState)

		students.GET("", studentController.GetStudents)
		students.GET("/:id", studentController.GetStudent)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
