package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cookhub/auth-service/internal/app/auth/service"
	"github.com/cookhub/auth-service/internal/domain/auth/model"
)

const currentUserKey = "currentUser"

// RequireAuth gates a route behind a valid, non-revoked access token and
// stores the resolved principal on the request context.
func RequireAuth(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header missing"})
			return
		}

		user, err := svc.Validate(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin runs after RequireAuth and additionally demands an admin
// credential for the authenticated principal.
func RequireAdmin(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		isAdmin, err := svc.IsAdmin(c.Request.Context(), user.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the principal stored by RequireAuth.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
