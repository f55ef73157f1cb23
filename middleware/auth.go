package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pharmapp/lib/sl"
	"pharmapp/services"
	"pharmapp/store"
)

// AccessTokenMiddleware verifies the bearer token, resolves the user document
// and attaches it to the request context. Every failure mode is a 401: missing
// or malformed header, bad signature, expired token, vanished user.
func AccessTokenMiddleware(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		claims, err := services.ParseAccessToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if err != store.ErrNotFound {
				slog.Error("auth: load user failed", sl.Err(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found for token"})
			return
		}

		c.Set("userId", user.UserID)
		c.Set("user", user)
		c.Next()
	}
}
