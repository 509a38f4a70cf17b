// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/darling-boutique/internal/config"
)

const (
	// SessionHeader carries the session identifier on every request
	SessionHeader = "X-Session-ID"

	sessionCookie = "session_id"
	sessionKey    = "session_id"
)

// Session guarantees a session identifier for every request. The
// identifier comes from the X-Session-ID header, falls back to the session
// cookie, and is generated when the client has neither. It is echoed back
// in the response header so clients can persist it. Minted session cookies
// live as long as the cart TTL.
func Session(cfg *config.Config) gin.HandlerFunc {
	cookieMaxAge := int(cfg.Cart.TTL.Seconds())

	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)

		if sessionID == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				sessionID = cookie
			}
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(sessionCookie, sessionID, cookieMaxAge, "/", "", false, true)
		}

		c.Set(sessionKey, sessionID)
		c.Header(SessionHeader, sessionID)

		c.Next()
	}
}

// GetSessionID returns the request's session identifier
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
