package api

import (
	"net/http"
	"strings"

	"meet-lab/domain"
	"meet-lab/services"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// AuthMiddleware only lets through requests carrying the stored session
// token as a bearer token.
func AuthMiddleware(sessions services.ISessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		session, err := sessions.Authenticate(parts[1])
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *domain.Session {
	session, _ := c.MustGet(sessionKey).(*domain.Session)
	return session
}
