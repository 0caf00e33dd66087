package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/pkg/jwt"
	"tradedesk.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// SessionHeader carries a server-side session id instead of a bearer token
	SessionHeader = "X-Session-ID"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AccountIDKey is the context key for the account ID
	AccountIDKey = "accountId"
	// AccountEmailKey is the context key for the account email
	AccountEmailKey = "accountEmail"
	// AccountRoleKey is the context key for the account role
	AccountRoleKey = "accountRole"
	// SessionIDKey is the context key for the session id, when one was used
	SessionIDKey = "sessionId"
)

// SessionResolver returns the access token held by a session
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (string, error)
}

// AuthMiddleware accepts a bearer access token, or a session id whose stored access
// token is used instead. sessions may be nil.
func AuthMiddleware(jwtService *jwt.JWTService, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		tokenString := ""

		sessionID := c.GetHeader(SessionHeader)
		if sessionID != "" && sessions != nil {
			token, err := sessions.ResolveSession(ctx, sessionID)
			if err != nil {
				logger.Warn(ctx, "session lookup failed", zap.String("path", c.Request.URL.Path))
				abort(c, domainerrors.Unauthorized("Session has expired. Sign in again."))
				return
			}
			tokenString = token
			c.Set(SessionIDKey, sessionID)
		}

		if tokenString == "" {
			authHeader := c.GetHeader(AuthorizationHeader)
			if authHeader == "" {
				abort(c, domainerrors.Unauthorized("Authorization header is required"))
				return
			}
			if !strings.HasPrefix(authHeader, BearerPrefix) {
				abort(c, domainerrors.Unauthorized("Invalid authorization format. Use: Bearer <token>"))
				return
			}
			tokenString = strings.TrimPrefix(authHeader, BearerPrefix)
		}

		claims, err := jwtService.ValidateKind(tokenString, jwt.KindAccess)
		if err != nil {
			logger.Debug(ctx, "token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			if errors.Is(err, jwt.ErrExpiredToken) {
				abort(c, domainerrors.Unauthorized("Token has expired"))
				return
			}
			abort(c, domainerrors.Unauthorized("Invalid token"))
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(AccountEmailKey, claims.Email)
		c.Set(AccountRoleKey, claims.Role)
		c.Request = c.Request.WithContext(context.WithValue(ctx, logger.AccountIDKey, claims.AccountID.String()))

		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// GetAccountID gets the account ID from context
func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(AccountIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetSessionID gets the session id the request authenticated with, if any
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
