package middleware

import (
	"TaskNest/services"
	"TaskNest/utils"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey   = "userId"
	UserNameKey = "userName"
)

// AuthMiddleware verifies the Bearer token and attaches the resolved
// identity to the request context. All three failure modes answer 401 but
// are logged apart: no token, expired token, invalid token.
func AuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Printf("Unauthenticated request to %s: no token supplied", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization token required")
			c.Abort()
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Printf("Unauthenticated request to %s: malformed Authorization header", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization token required")
			c.Abort()
			return
		}

		userID, name, err := tokenService.Verify(parts[1])
		if err != nil {
			if errors.Is(err, services.ErrTokenExpired) {
				log.Printf("Unauthenticated request to %s: token expired", c.Request.URL.Path)
				utils.ErrorResponse(c, http.StatusUnauthorized, "Token has expired")
			} else {
				log.Printf("Unauthenticated request to %s: invalid token", c.Request.URL.Path)
				utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserNameKey, name)
		c.Next()
	}
}
