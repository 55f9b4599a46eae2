// Treatment package HTTP handlers.
//
// This file exposes the public recommendation surface:
//   - GET  /packages         (the four fixed treatment packages)
//   - POST /recommendations  (score answers without storing anything)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medigo-care/go-leads-backend/internal/recommend"
)

// ListPackages godoc
// @ID          listPackages
// @Summary     List treatment packages
// @Description Returns the four fixed treatment packages with procedures and total prices.
// @Tags        Packages
// @Produce     json
//
// @Success     200  {array}  recommend.TreatmentPackage
// @Router      /packages [get]
func (h *Handlers) ListPackages(c *gin.Context) {
	ok(c, http.StatusOK, recommend.Packages())
}

// PreviewRecommendation godoc
// @ID          previewRecommendation
// @Summary     Preview a treatment recommendation
// @Description Scores assessment answers and returns the winning category and package. Nothing is stored.
// @Tags        Packages
// @Accept      json
// @Produce     json
//
// @Param       body  body  recommend.Input  true  "Scoring input"
//
// @Success     200  {object}  recommend.Recommendation
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /recommendations [post]
func (h *Handlers) PreviewRecommendation(c *gin.Context) {
	var in recommend.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	ok(c, http.StatusOK, recommend.Recommend(in))
}
