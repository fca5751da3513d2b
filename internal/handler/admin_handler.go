package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/VeloraJewelry/storefront_api/internal/service"
	"github.com/VeloraJewelry/storefront_api/internal/utils"
)

// AdminHandler handles operator endpoints.
type AdminHandler struct {
	catalogService *service.CatalogService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(catalogService *service.CatalogService) *AdminHandler {
	return &AdminHandler{catalogService: catalogService}
}

// RefreshCatalog forces an immediate catalog refresh. Concurrent refreshes
// are not sequenced; whichever response lands last wins the snapshot.
func (h *AdminHandler) RefreshCatalog(c *gin.Context) {
	if err := h.catalogService.Refresh(c.Request.Context()); err != nil {
		utils.Error(c, 502, utils.ErrUpstreamFailure.Error(), "Catalog refresh failed, previous snapshot retained")
		return
	}
	utils.Success(c, 200, "Catalog refreshed", gin.H{
		"fetchedAt": h.catalogService.LastFetched(),
	})
}
