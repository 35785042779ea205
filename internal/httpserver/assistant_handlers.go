package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/talipby/koroglu-site/internal/domain"
)

type assistantRequest struct {
	Query string `json:"query" binding:"required"`
}

type assistantResponse struct {
	Reply           string           `json:"reply"`
	Recommendations []domain.Product `json:"recommendations"`
}

// assistant answers with a canned reply and echoes the head of the catalog
// as recommendations. No inference happens anywhere behind this endpoint.
func (h *handlers) assistant(c *gin.Context) {
	var req assistantRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		respondError(c, http.StatusBadRequest, "query required")
		return
	}
	if h.deps.Advisor == nil || h.deps.Recommender == nil {
		respondError(c, http.StatusNotFound, "assistant disabled")
		return
	}
	products := h.deps.Catalog.Products()
	recs := h.deps.Recommender.Recommend(products, req.Query)
	if recs == nil {
		recs = []domain.Product{}
	}
	c.JSON(http.StatusOK, assistantResponse{
		Reply:           h.deps.Advisor.Advise(req.Query),
		Recommendations: recs,
	})
}
