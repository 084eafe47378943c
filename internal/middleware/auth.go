package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionResolver maps the session and subject of a token to a live
// identity. It must reject ended sessions as well as users that no longer
// exist or have been deactivated.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID, userID string) (*domain.Identity, error)
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// and stores the resolved identity and session ID in the request context.
func AuthMiddleware(jwtSecret string, resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAccessToken(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				msg = "Token has expired"
			case errors.Is(err, jwt.ErrTokenNotValidYet):
				msg = "Token not valid yet"
			case errors.Is(err, jwt.ErrTokenInvalidClaims):
				msg = "Invalid token claims"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		identity, err := resolver.Resolve(c.Request.Context(), claims.ID, claims.Subject)
		if err != nil {
			logger.Warn("Token session rejected",
				slog.String("user_id", claims.Subject),
				slog.String("session_id", claims.ID),
				slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has ended or user is inactive"})
			return
		}

		enrichedLogger := logger.With(
			slog.String("user_id", identity.ID),
			slog.String("role", string(identity.Role)),
		)
		ctx := WithIdentity(c.Request.Context(), *identity)
		ctx = WithSessionID(ctx, claims.ID)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}
