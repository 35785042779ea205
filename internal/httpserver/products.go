package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talipby/koroglu-site/internal/catalog"
	"github.com/talipby/koroglu-site/internal/domain"
	productsvc "github.com/talipby/koroglu-site/internal/service/product"
)

type productListResponse struct {
	Total    int              `json:"total"`
	Products []domain.Product `json:"products"`
}

// listProducts serves the storefront grid from the in-memory snapshot.
func (h *handlers) listProducts(c *gin.Context) {
	query := c.Query("q")
	category := c.DefaultQuery("category", catalog.AllCategories)
	products := h.deps.Catalog.Filter(query, category)
	c.JSON(http.StatusOK, productListResponse{Total: len(products), Products: products})
}

func (h *handlers) getProduct(c *gin.Context) {
	id := c.Param("id")
	for _, p := range h.deps.Catalog.Products() {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	respondError(c, http.StatusNotFound, "product not found")
}

func (h *handlers) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.deps.Catalog.Categories()})
}

func (h *handlers) createProduct(c *gin.Context) {
	var in productsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid product payload")
		return
	}
	created, err := h.deps.ProductSvc.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			respondError(c, http.StatusConflict, "product already exists")
			return
		}
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	h.refreshCatalog(c.Request.Context())
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) updateProduct(c *gin.Context) {
	var in productsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid product payload")
		return
	}
	updated, err := h.deps.ProductSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	h.refreshCatalog(c.Request.Context())
	c.JSON(http.StatusOK, updated)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.ProductSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.refreshCatalog(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *handlers) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file required")
		return
	}
	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "cannot read file")
		return
	}
	defer src.Close()

	url, err := h.deps.Uploads.Store(c.Request.Context(), file.Filename, src)
	if err != nil {
		h.logger.Printf("upload failed: %v", err)
		respondError(c, http.StatusBadGateway, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
