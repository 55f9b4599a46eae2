// Treatment catalog HTTP handlers.
//
// This file exposes the admin price-list endpoints:
//   - GET   /admin/treatments       (full price list)
//   - PATCH /admin/treatments/{id}  (edit base price and/or commission)
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medigo-care/go-leads-backend/internal/domain"
	"github.com/medigo-care/go-leads-backend/internal/services"
)

// UpdateTreatmentRequest is the JSON payload for a price edit. Omitted fields
// are left unchanged; at least one must be present.
type UpdateTreatmentRequest struct {
	BasePrice  *int     `json:"basePrice"  example:"1300000"`
	Commission *float64 `json:"commission" example:"20"`
}

// ListTreatments godoc
// @ID          listTreatments
// @Summary     List the treatment price catalog
// @Description Returns every price-list entry with base, commission, and final price. Admin only.
// @Tags        Catalog
// @Produce     json
//
// @Success     200  {array}   domain.CatalogItem
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/treatments [get]
func (h *Handlers) ListTreatments(c *gin.Context) {
	items, err := h.catalogSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}
	ok(c, http.StatusOK, items)
}

// UpdateTreatment godoc
// @ID          updateTreatment
// @Summary     Edit a price-list entry
// @Description Changes the base price and/or commission; the final price is recomputed server-side. Admin only.
// @Tags        Catalog
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                            true  "Treatment ID"  example(ulthera-300)
// @Param       body  body  handlers.UpdateTreatmentRequest  true  "Price edit payload"
//
// @Success     200  {object}  domain.CatalogItem
// @Failure     400  {object}  handlers.ErrorResponse  "No fields or out-of-range values"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/treatments/{id} [patch]
func (h *Handlers) UpdateTreatment(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid treatment id")
		return
	}

	var req UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	item, err := h.catalogSvc.UpdatePrice(c.Request.Context(), id, req.BasePrice, req.Commission)
	switch {
	case services.AsValidationError(err) != nil:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "basePrice or commission is required")
		return
	case errors.Is(err, services.ErrInvalidPrice), errors.Is(err, services.ErrInvalidCommission):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrCatalogItemNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, item)
}
