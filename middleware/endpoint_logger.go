package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jihokang/massage-shop-web/util"
)

// EndpointCallLogger logs each HTTP request through the security logger,
// including the authenticated username when AuthRequired has run.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		username, _ := GetUsername(c)

		util.LogSecurityEvent(util.SecurityEvent{
			EventType: util.EventEndpointCall,
			Username:  username,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Message:   fmt.Sprintf("%s %s -> %d (%dms)", c.Request.Method, c.Request.URL.Path, status, duration.Milliseconds()),
		})
	}
}
