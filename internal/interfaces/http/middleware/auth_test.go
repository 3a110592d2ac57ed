package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"mandi-bazaar.backend/pkg/jwt"
)

func newAuthRouter(svc *jwt.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		id, ok := GetAccountID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no account in context"})
			return
		}
		role, _ := GetAccountRole(c)
		c.JSON(http.StatusOK, gin.H{"accountId": id.String(), "role": role})
	})
	return r
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", 15*time.Minute, time.Hour)
	accountID := uuid.New()
	pair, err := svc.GenerateTokenPair(accountID, "9876543210", "Wholesaler")
	require.NoError(t, err)

	r := newAuthRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), accountID.String())
	require.Contains(t, w.Body.String(), "Wholesaler")
}

func TestAuthMiddlewareRejections(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(svc)

	// No header.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Authorization header is required")

	// Not a bearer token.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, "Basic abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+"garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expired := jwt.NewJWTService("test-secret", -time.Minute, time.Hour)
	pair, err := expired.GenerateTokenPair(uuid.New(), "9876543210", "Wholesaler")
	require.NoError(t, err)

	r := newAuthRouter(jwt.NewJWTService("test-secret", 15*time.Minute, time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Token has expired")
}
