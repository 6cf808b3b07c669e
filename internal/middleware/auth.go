package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/rohitpatil07/flaskapp/internal/repository"
	"github.com/rohitpatil07/flaskapp/internal/util"

	"github.com/gin-gonic/gin"
)

// CookieName is the session JWT cookie.
const CookieName = "fa_token"

// CurrentUserKey is where the authenticated user lands in the gin context.
const CurrentUserKey = "currentUser"

// SessionIDKey holds the session row id for logout.
const SessionIDKey = "sessionID"

// Auth validates the session JWT and puts the current user into the context.
// Token sources, in order: Authorization header, ?token= query (for
// downloads), cookie.
func Auth(jwtSecret string, users repository.UserRepository, sessions repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// 2) URL query ?token=xxx (export links cannot set headers)
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		// 3) Cookie
		if tokenStr == "" {
			if cookie, err := c.Cookie(CookieName); err == nil {
				tokenStr = cookie
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.Purpose != util.PurposeSession {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "session expired, please log in again")
			c.Abort()
			return
		}

		now := time.Now()

		session, err := sessions.Find(claims.SessionID)
		if err != nil || session.Revoked || session.ExpiresAt.Before(now) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "session expired, please log in again")
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "unknown user")
			c.Abort()
			return
		}

		// activity tracking; a failed update never blocks the request
		_ = users.TouchLastSeen(user.ID, now)
		user.LastSeen = &now

		c.Set(CurrentUserKey, user)
		c.Set(SessionIDKey, session.ID)
		c.Next()
	}
}
