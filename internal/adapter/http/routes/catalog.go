package routes

import (
	"webatelier/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	cat := rg.Group(PathCatalog)
	{
		cat.GET("/packages", catalogHandler.GetPackages)
		cat.GET("/features", catalogHandler.GetFeatures)
		cat.GET("/pages", catalogHandler.GetPageOptions)
		cat.GET("/palettes", catalogHandler.GetPalettes)
		cat.GET("/professions", catalogHandler.GetProfessions)
	}
}
