// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the admin gate protecting lead data and catalog
// management. Authentication is a server-side session: the cookie carries an
// opaque session ID, and the gate checks it against the database on every
// request. There are no roles beyond "admin"; a live session is sufficient.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the admin session ID.
const SessionCookieName = "admin_session"

// SessionChecker reports whether sessionID names a live admin session.
// The AuthService satisfies this with IsAuthenticated.
type SessionChecker func(ctx context.Context, sessionID string) bool

// AdminGate returns a middleware that rejects requests lacking a live admin
// session with 401. The response shape matches the handlers' error envelope.
func AdminGate(check SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if err != nil || id == "" || !check(c.Request.Context(), id) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "unauthorized",
				"message":    "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
