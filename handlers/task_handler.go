package handlers

import (
	"TaskNest/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterTaskRoutes(router *gin.RouterGroup, taskController *controllers.TaskController, authRequired gin.HandlerFunc) {

	taskGroup := router.Group("/tasks", authRequired)
	{
		taskGroup.GET("", taskController.GetTasks)
		taskGroup.POST("", taskController.CreateTask)
		taskGroup.PUT("/:id", taskController.UpdateTask)
		taskGroup.DELETE("/:id", taskController.DeleteTask)
	}

}
