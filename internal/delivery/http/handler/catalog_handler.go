package handler

import (
	"net/http"

	"github.com/gdugdh24/clinicmatch-backend/internal/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// ListDomains handles GET /catalog/domains. ?domain=<id> narrows the
// result to one domain.
func (h *CatalogHandler) ListDomains(c *gin.Context) {
	if id := c.Query("domain"); id != "" {
		d, ok := h.catalog.Domain(id)
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown domain", Code: "not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"domains": []catalog.Domain{*d}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"domains": h.catalog.Domains})
}
