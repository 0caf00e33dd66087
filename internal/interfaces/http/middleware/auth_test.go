package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tradedesk.backend/pkg/jwt"
)

type stubResolver struct {
	tokens map[string]string
}

func (s stubResolver) ResolveSession(_ context.Context, id string) (string, error) {
	token, ok := s.tokens[id]
	if !ok {
		return "", errors.New("session not found")
	}
	return token, nil
}

func newAuthRouter(jwtService *jwt.JWTService, sessions SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(jwtService, sessions))
	r.GET("/me", func(c *gin.Context) {
		id, ok := GetAccountID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String()+"|"+GetSessionID(c))
	})
	return r
}

func TestAuthMiddleware_BearerFlow(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	r := newAuthRouter(jwtService, nil)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer invalid")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair(uuid.New(), "admin@tradedesk.io", "ADMIN")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		id := uuid.New()
		pair, err := jwtService.GenerateTokenPair(id, "admin@tradedesk.io", "ADMIN")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id.String()+"|", w.Body.String())
	})
}

func TestAuthMiddleware_SessionFlow(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	id := uuid.New()
	pair, err := jwtService.GenerateTokenPair(id, "staff@tradedesk.io", "STAFF")
	require.NoError(t, err)
	r := newAuthRouter(jwtService, stubResolver{tokens: map[string]string{"sess-1": pair.AccessToken}})

	t.Run("known session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(SessionHeader, "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id.String()+"|sess-1", w.Body.String())
	})

	t.Run("unknown session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(SessionHeader, "missing")
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Session has expired")
	})
}
