package middleware

import (
	"net/http"
	"strings"

	"epoch-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID  = "userId"
	ContextIsAdmin = "isAdmin"
)

func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(h, "Bearer "), true
}

// authenticate validates the bearer token and stamps the session on the
// context. On failure it aborts with 401 and returns false.
func authenticate(c *gin.Context, secret string) bool {
	tokenStr, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing or invalid token"})
		c.Abort()
		return false
	}

	claims, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
		c.Abort()
		return false
	}

	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextIsAdmin, claims.IsAdmin)
	return true
}

// RequireAuth rejects requests without a valid session token.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			return
		}
		c.Next()
	}
}

// RequireAdmin additionally rejects authenticated non-admin users. The client
// turns the 403 into a redirect home with a denial notice.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			return
		}
		if !c.GetBool(ContextIsAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth stamps the user on the context when a valid token is present
// but lets anonymous requests through. Used by the public review form.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := bearerToken(c); ok {
			if claims, err := utils.ParseToken(tokenStr, secret); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextIsAdmin, claims.IsAdmin)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user id from the context, if any.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
