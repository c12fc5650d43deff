package middleware

import (
	"net/http"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "session_token"

// SessionRequired resolves the session cookie against the session store
// and rejects the request when no valid session exists.
func SessionRequired(sessions domain.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := resolveSession(c, sessions)
		if session == nil {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyAccountID), session.AccountID)
		c.Set(string(domain.KeyRole), session.Role)
		c.Next()
	}
}

// SessionOptional resolves the session when present but lets anonymous
// requests through. Handlers behind it see a zero account id for
// anonymous callers and answer with their permissive defaults.
func SessionOptional(sessions domain.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session := resolveSession(c, sessions); session != nil {
			c.Set(string(domain.KeyAccountID), session.AccountID)
			c.Set(string(domain.KeyRole), session.Role)
		}
		c.Next()
	}
}

func resolveSession(c *gin.Context, sessions domain.SessionRepository) *domain.Session {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		return nil
	}
	session, err := sessions.Get(c.Request.Context(), token)
	if err != nil {
		return nil
	}
	return session
}
