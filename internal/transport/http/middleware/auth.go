package middleware

import (
	"net/http"

	"github.com/aidosk/taskvault/internal/auth"
	"github.com/aidosk/taskvault/internal/session"
	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Unauthorized"

// Auth verifies the session token cookie and sets "userID" in the gin
// context. The 401 body is the same for a missing, expired, malformed or
// forged token — the caller learns nothing about which it was.
//
// This only establishes who is asking. Every repository query still applies
// the ownership predicate itself.
func Auth(codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, err := c.Cookie(session.CookieName)
		if err != nil || rawToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		userID, err := codec.Verify(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
