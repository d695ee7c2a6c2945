package middleware

import (
	"TaskNest/services"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(svc *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   c.GetString(UserIDKey),
			"userName": c.GetString(UserNameKey),
		})
	})
	return r
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := newAuthTestRouter(services.NewTokenServiceWith("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization token required")
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	r := newAuthTestRouter(services.NewTokenServiceWith("test-secret", time.Hour))

	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	svc := services.NewTokenServiceWith("test-secret", -time.Minute)
	token, err := svc.Issue("64f1a2b3c4d5e6f7a8b9c0d1", "Alice")
	require.NoError(t, err)

	r := newAuthTestRouter(services.NewTokenServiceWith("test-secret", time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	r := newAuthTestRouter(services.NewTokenServiceWith("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMiddlewareAttachesIdentity(t *testing.T) {
	svc := services.NewTokenServiceWith("test-secret", time.Hour)
	token, err := svc.Issue("64f1a2b3c4d5e6f7a8b9c0d1", "Alice")
	require.NoError(t, err)

	r := newAuthTestRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "64f1a2b3c4d5e6f7a8b9c0d1")
	assert.Contains(t, w.Body.String(), "Alice")
}
