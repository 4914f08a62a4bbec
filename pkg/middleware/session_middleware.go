package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

const sessionKey = "session"

// SessionMiddleware resolves the bearer token to the caller's planning session.
func SessionMiddleware(secret []byte, store memcache.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateSessionToken(secret, tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session token")
			c.Abort()
			return
		}

		state, ok := store.Get(claims.SessionID)
		if !ok {
			utils.HandleServiceError(c, utils.ErrSessionNotFound)
			c.Abort()
			return
		}

		c.Set(sessionKey, state)
		c.Set("session_id", state.ID)
		c.Next()
	}
}

// CurrentSession returns the state stored by SessionMiddleware.
func CurrentSession(c *gin.Context) (*memcache.SessionState, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	state, ok := v.(*memcache.SessionState)
	return state, ok && state != nil
}
