package handlers

import (
	"TaskNest/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProjectRoutes(router *gin.RouterGroup, projectController *controllers.ProjectController, authRequired gin.HandlerFunc) {

	projectGroup := router.Group("/projects", authRequired)
	{
		projectGroup.GET("", projectController.GetProjects)
		projectGroup.POST("", projectController.CreateProject)
		projectGroup.GET("/:id", projectController.GetProject)
		projectGroup.PUT("/:id", projectController.UpdateProject)
		projectGroup.DELETE("/:id", projectController.DeleteProject)
	}

}
