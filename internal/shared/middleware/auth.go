package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cinema-backend/internal/shared/response"
	"cinema-backend/pkg/jwt"
)

const (
	// ContextUserIDKey là key chứa user ID trong gin context
	ContextUserIDKey = "user_id"
	// ContextUsernameKey là key chứa username trong gin context
	ContextUsernameKey = "username"
)

// AuthMiddleware validates JWT access token và set user identity vào context
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		// Format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}
