// Contact request HTTP handlers.
//
// This file exposes REST endpoints for contact-form leads:
//   - POST  /contact-requests              (public intake)
//   - GET   /contact-requests              (admin list)
//   - PATCH /contact-requests/{id}/status  (admin confirmation)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medigo-care/go-leads-backend/internal/domain"
	"github.com/medigo-care/go-leads-backend/internal/services"
)

// UpdateContactStatusRequest is the JSON payload for a status change.
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required" example:"sent"`
}

// CreateContactRequest godoc
// @ID          createContactRequest
// @Summary     Submit a contact form
// @Description Stores a contact lead with status "new" and returns the created record.
// @Tags        Contacts
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.ContactRequest  true  "Contact payload"
//
// @Success     200  {object}  domain.ContactRequest
// @Failure     400  {object}  handlers.ErrorResponse  "Missing required fields"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contact-requests [post]
func (h *Handlers) CreateContactRequest(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if err := h.contactSvc.Create(c.Request.Context(), &req); err != nil {
		if ve := services.AsValidationError(err); ve != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, ve.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, req)
}

// ListContactRequests godoc
// @ID          listContactRequests
// @Summary     List contact leads
// @Description Returns stored leads newest-first. Admin only.
// @Tags        Contacts
// @Produce     json
//
// @Param       limit  query  int  false  "Cap the number of results"  minimum(1) maximum(500)
//
// @Success     200  {array}   domain.ContactRequest
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contact-requests [get]
func (h *Handlers) ListContactRequests(c *gin.Context) {
	items, err := h.contactSvc.List(c.Request.Context(), listLimit(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if items == nil {
		items = []domain.ContactRequest{}
	}
	ok(c, http.StatusOK, items)
}

// UpdateContactRequestStatus godoc
// @ID          updateContactRequestStatus
// @Summary     Update a lead's status
// @Description Moves a lead between "new" and "sent". Repeating a confirmation succeeds. Admin only.
// @Tags        Contacts
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                                   true  "Contact request ID"
// @Param       body  body  handlers.UpdateContactStatusRequest  true  "Status payload"
//
// @Success     200  {object}  domain.ContactRequest
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid ID or status"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contact-requests/{id}/status [patch]
func (h *Handlers) UpdateContactRequestStatus(c *gin.Context) {
	id, okID := uintParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid contact request id")
		return
	}

	var req UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status is required")
		return
	}

	rec, err := h.contactSvc.UpdateStatus(c.Request.Context(), id, req.Status)
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrContactNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, rec)
}
