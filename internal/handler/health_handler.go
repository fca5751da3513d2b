package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VeloraJewelry/storefront_api/internal/service"
	"github.com/VeloraJewelry/storefront_api/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides health endpoint.
type HealthHandler struct {
	catalogService *service.CatalogService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(catalogService *service.CatalogService) *HealthHandler {
	return &HealthHandler{catalogService: catalogService}
}

// GetHealth responds with service status and catalog snapshot freshness.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	fetchedAt := h.catalogService.LastFetched()

	catalogStatus := "ready"
	if fetchedAt.IsZero() {
		catalogStatus = "pending"
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"catalog": gin.H{
			"status":    catalogStatus,
			"fetchedAt": fetchedAt,
		},
	})
}
