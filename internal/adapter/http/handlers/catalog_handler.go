package handlers

import (
	"net/http"

	"webatelier/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static reference data the order form is
// built from. Everything is in-process and read-only, so the handlers
// are plain pass-throughs.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) GetPackages(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Packages())
}

func (h *CatalogHandler) GetFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Features())
}

func (h *CatalogHandler) GetPageOptions(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.PageOptions())
}

func (h *CatalogHandler) GetPalettes(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Palettes())
}

func (h *CatalogHandler) GetProfessions(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Professions())
}
