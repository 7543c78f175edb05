package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jihokang/massage-shop-web/util"
)

const (
	usernameContextKey = "username"
	roleContextKey     = "role"
)

// AuthRequired gates protected endpoints on a valid bearer token. It checks
// identity only; the role claim is stored in the context but grants no
// additional permissions.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			util.LogUnauthorizedAccess(c.ClientIP(), c.Request.URL.Path, "missing authorization header")
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Authorization token required",
				Err: fmt.Errorf("authorization header not provided"),
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			util.LogUnauthorizedAccess(c.ClientIP(), c.Request.URL.Path, "malformed authorization header")
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Invalid authorization header",
				Err: fmt.Errorf("expected bearer token"),
			})
			c.Abort()
			return
		}

		claims, err := util.ParseToken(parts[1])
		if err != nil {
			util.LogUnauthorizedAccess(c.ClientIP(), c.Request.URL.Path, "invalid token")
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Invalid or expired token",
				Err: err,
			})
			c.Abort()
			return
		}

		c.Set(usernameContextKey, claims.Subject)
		c.Set(roleContextKey, claims.Role)
		c.Next()
	}
}

// GetUsername returns the authenticated username stored by AuthRequired.
func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(usernameContextKey)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok
}

// GetRole returns the authenticated user's role stored by AuthRequired.
func GetRole(c *gin.Context) (string, bool) {
	value, exists := c.Get(roleContextKey)
	if !exists {
		return "", false
	}
	role, ok := value.(string)
	return role, ok
}
