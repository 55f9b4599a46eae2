// Quotation request HTTP handlers.
//
// This file exposes REST endpoints for assessment submissions:
//   - POST /quotation-requests                      (public intake)
//   - GET  /quotation-requests                      (admin list)
//   - GET  /quotation-requests/{id}/recommendation  (admin re-derivation)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medigo-care/go-leads-backend/internal/domain"
	"github.com/medigo-care/go-leads-backend/internal/services"
	"github.com/medigo-care/go-leads-backend/internal/utils"
)

// maxListLimit caps admin list responses.
const maxListLimit = 500

// listLimit parses and bounds the optional ?limit query param. Zero means
// "no cap".
func listLimit(c *gin.Context) int {
	limit := utils.AtoiDefault(c.Query("limit"), 0)
	if limit < 0 {
		limit = 0
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit
}

// uintParam parses a positive integer path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// CreateQuotationRequest godoc
// @ID          createQuotationRequest
// @Summary     Submit an assessment questionnaire
// @Description Stores a completed skin assessment and returns the created record.
// @Tags        Quotations
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.QuotationRequest  true  "Assessment payload"
//
// @Success     200  {object}  domain.QuotationRequest
// @Failure     400  {object}  handlers.ErrorResponse  "Missing required fields"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /quotation-requests [post]
func (h *Handlers) CreateQuotationRequest(c *gin.Context) {
	var q domain.QuotationRequest
	if err := c.ShouldBindJSON(&q); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if err := h.quotationSvc.Create(c.Request.Context(), &q); err != nil {
		if ve := services.AsValidationError(err); ve != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, ve.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, q)
}

// ListQuotationRequests godoc
// @ID          listQuotationRequests
// @Summary     List assessment submissions
// @Description Returns stored submissions newest-first. Admin only.
// @Tags        Quotations
// @Produce     json
//
// @Param       limit  query  int  false  "Cap the number of results"  minimum(1) maximum(500)
//
// @Success     200  {array}   domain.QuotationRequest
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /quotation-requests [get]
func (h *Handlers) ListQuotationRequests(c *gin.Context) {
	items, err := h.quotationSvc.List(c.Request.Context(), listLimit(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if items == nil {
		items = []domain.QuotationRequest{}
	}
	ok(c, http.StatusOK, items)
}

// GetQuotationRecommendation godoc
// @ID          getQuotationRecommendation
// @Summary     Recommendation for a stored submission
// @Description Re-derives the treatment recommendation from a submission's answers. Admin only.
// @Tags        Quotations
// @Produce     json
//
// @Param       id  path  int  true  "Quotation request ID"
//
// @Success     200  {object}  recommend.Recommendation
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid ID"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /quotation-requests/{id}/recommendation [get]
func (h *Handlers) GetQuotationRecommendation(c *gin.Context) {
	id, okID := uintParam(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid quotation request id")
		return
	}

	rec, err := h.quotationSvc.Recommendation(c.Request.Context(), id)
	switch {
	case err == services.ErrQuotationNotFound:
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, rec)
}
