package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDHeader names the request header carrying the acting user's id. The
// value is trusted as-is; there is no signature or lookup behind it.
const UserIDHeader = "x-user-id"

const userIDKey = "userID"

// RequireIdentity rejects any request without the identity header and stores
// the resolved user id in the context for downstream handlers.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "x-user-id header is missing"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the user id resolved by RequireIdentity, or "" if the
// middleware did not run.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
