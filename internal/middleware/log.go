package middleware

import (
	"time"

	"github.com/rohitpatil07/flaskapp/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestLog logs one line per request: method, path, status, latency and
// the acting user when authenticated.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		var userID uint
		if v, ok := c.Get(CurrentUserKey); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}

		ev := log.Info()
		if c.Writer.Status() >= 500 {
			ev = log.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Uint("user_id", userID).
			Msg("request")
	}
}
