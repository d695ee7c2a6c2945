package middleware

import (
	"TaskNest/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware translates errors pushed onto the gin context into
// the JSON error body. Anything that is not a CustomError surfaces as a
// generic 500 so internals never leak to the client.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			log.Printf("Unhandled error on %s: %v", c.Request.URL.Path, err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
