package middleware

import (
	"TaskNest/utils"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandlerTranslatesCustomError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlerMiddleware())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(utils.NewCustomError(http.StatusConflict, "Email already registered"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Email already registered"}`, w.Body.String())
}

func TestErrorHandlerHidesUnexpectedErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlerMiddleware())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("connection reset while writing oplog"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "oplog")
}
