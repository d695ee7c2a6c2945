package route

import (
	"TaskNest/controllers"
	"TaskNest/handlers"
	"TaskNest/middleware"
	"TaskNest/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes under /api
func RegisterRoutes(router *gin.Engine) {
	authController := controllers.NewAuthController()
	userController := controllers.NewUserController()
	taskController := controllers.NewTaskController()
	projectController := controllers.NewProjectController()

	authRequired := middleware.AuthMiddleware(services.NewTokenService())

	apiRoutes := router.Group("/api")
	{
		apiRoutes.GET("/health", controllers.HealthCheck)
		handlers.RegisterAuthRoutes(apiRoutes, authController)
		handlers.RegisterProfileRoutes(apiRoutes, userController, authRequired)
		handlers.RegisterTaskRoutes(apiRoutes, taskController, authRequired)
		handlers.RegisterProjectRoutes(apiRoutes, projectController, authRequired)
	}
}
