// Admin authentication HTTP handlers.
//
// This file exposes the admin session endpoints:
//   - POST /admin/login    (verify password, mint session cookie)
//   - POST /admin/logout   (destroy session)
//   - GET  /admin/status   (is the caller authenticated?)
//
// The session ID travels in an HttpOnly cookie; the session itself lives in
// the database, so a restart does not log admins out.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medigo-care/go-leads-backend/internal/http/middleware"
	"github.com/medigo-care/go-leads-backend/internal/services"
)

// sessionCookieMaxAge matches the server-side session TTL (24h). The cookie
// expiring early is harmless; the DB row is authoritative either way.
const sessionCookieMaxAge = 24 * 60 * 60

// LoginRequest is the JSON payload for an admin login attempt.
type LoginRequest struct {
	Password string `json:"password" example:"********"`
}

// LoginResponse is the JSON body returned on a successful login.
type LoginResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Login successful"`
}

// StatusResponse reports whether the caller holds a live admin session.
type StatusResponse struct {
	IsAuthenticated bool `json:"isAuthenticated" example:"true"`
}

// AdminLogin godoc
// @ID          adminLogin
// @Summary     Admin login
// @Description Verifies the admin password and sets the session cookie.
// @Tags        Admin
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.LoginResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Password missing"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid password"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/login [post]
func (h *Handlers) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	sess, err := h.authSvc.Login(c.Request.Context(), req.Password)
	switch {
	case errors.Is(err, services.ErrPasswordRequired):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Password is required")
		return
	case errors.Is(err, services.ErrInvalidPassword):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid password")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, sess.ID, sessionCookieMaxAge, "/", "", false, true)
	ok(c, http.StatusOK, LoginResponse{Success: true, Message: "Login successful"})
}

// AdminLogout godoc
// @ID          adminLogout
// @Summary     Admin logout
// @Description Destroys the caller's session and clears the cookie.
// @Tags        Admin
// @Produce     json
//
// @Success     200  {object}  handlers.LoginResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/logout [post]
func (h *Handlers) AdminLogout(c *gin.Context) {
	id, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || id == "" {
		// Nothing to destroy; still report success so logout is idempotent.
		ok(c, http.StatusOK, LoginResponse{Success: true, Message: "No session found"})
		return
	}
	if err := h.authSvc.Logout(c.Request.Context(), id); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	ok(c, http.StatusOK, LoginResponse{Success: true, Message: "Logout successful"})
}

// AdminStatus godoc
// @ID          adminStatus
// @Summary     Admin session status
// @Description Reports whether the caller holds a live admin session.
// @Tags        Admin
// @Produce     json
//
// @Success     200  {object}  handlers.StatusResponse
// @Router      /admin/status [get]
func (h *Handlers) AdminStatus(c *gin.Context) {
	id, _ := c.Cookie(middleware.SessionCookieName)
	authed := id != "" && h.authSvc.IsAuthenticated(c.Request.Context(), id)
	ok(c, http.StatusOK, StatusResponse{IsAuthenticated: authed})
}
