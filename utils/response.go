package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the error body `{ "message": ... }`.
func ErrorResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, gin.H{
		"message": message,
	})
}

// MessageResponse writes a success body that is only a message, used by
// delete and password operations.
func MessageResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, gin.H{
		"message": message,
	})
}
