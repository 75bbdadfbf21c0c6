package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripgenius/internal/services"
	"tripgenius/pkg/utils"
)

const (
	// ContextUserKey holds the resolved user on the request context.
	ContextUserKey = "user"
	// ContextUserIDKey holds the resolved user id.
	ContextUserIDKey = "user_id"
)

// SessionAuthMiddleware is the single gate in front of every
// trip-scoped route: it resolves the bearer token to a user and aborts
// the request before any handler runs when that fails.
func SessionAuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}
