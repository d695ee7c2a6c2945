package controllers

import (
	"TaskNest/config/environment"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// HealthCheck reports process status.
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"environment": environment.GetAppEnv(),
		"uptime":      time.Since(startedAt).String(),
	})
}
