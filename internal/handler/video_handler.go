package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/VeloraJewelry/storefront_api/internal/service"
	"github.com/VeloraJewelry/storefront_api/internal/utils"
)

// VideoHandler serves the social video feed.
type VideoHandler struct {
	videoService *service.VideoService
}

// NewVideoHandler constructs a VideoHandler.
func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// GetFeed returns the cached-or-fetched video feed. The chain ends in a
// static fallback, so failures here are rare and advisory either way.
func (h *VideoHandler) GetFeed(c *gin.Context) {
	feed, err := h.videoService.Feed(c.Request.Context())
	if err != nil {
		utils.Error(c, 502, utils.ErrUpstreamFailure.Error(), "Video feed unavailable")
		return
	}
	utils.Success(c, 200, "Video feed retrieved successfully", gin.H{"feed": feed})
}
