package handlers

import (
	"TaskNest/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.RouterGroup, userController *controllers.UserController, authRequired gin.HandlerFunc) {

	profileGroup := router.Group("/profile", authRequired)
	{
		profileGroup.GET("", userController.GetProfile)
		profileGroup.PUT("", userController.UpdateProfile)
		profileGroup.DELETE("", userController.DeleteAccount)
		profileGroup.POST("/change-password", userController.ChangePassword)
		profileGroup.PUT("/theme", userController.UpdateTheme)
	}

}
