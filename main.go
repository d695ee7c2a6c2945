package main

import (
	"TaskNest/config/database"
	"TaskNest/config/environment"
	"TaskNest/middleware"
	route "TaskNest/routes/api"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// Load environment variables, .env is optional outside local dev
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if environment.GetAppEnv() == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// MongoDB init
	database.InitMongo()
	defer database.Disconnect()

	// Setup Gin router
	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(middleware.RateLimitMiddleware(10, 20))

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     environment.GetAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Register all routes
	route.RegisterRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	port := environment.GetPort()
	log.Println("Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
