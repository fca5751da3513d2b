package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VeloraJewelry/storefront_api/internal/service"
	"github.com/VeloraJewelry/storefront_api/internal/utils"
)

// BlogHandler handles blog endpoints.
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler constructs a BlogHandler.
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// GetPosts returns the published post list.
func (h *BlogHandler) GetPosts(c *gin.Context) {
	posts, err := h.blogService.ListPosts(c.Request.Context())
	if err != nil {
		utils.Error(c, 502, utils.ErrUpstreamFailure.Error(), "Failed to load posts")
		return
	}
	utils.Success(c, 200, "Posts retrieved successfully", gin.H{"posts": posts})
}

// GetPost returns one post by slug.
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogService.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, utils.ErrPostNotFound) {
			utils.Error(c, 404, utils.ErrPostNotFound.Error(), "Post not found")
			return
		}
		utils.Error(c, 502, utils.ErrUpstreamFailure.Error(), "Failed to load post")
		return
	}
	utils.Success(c, 200, "Post retrieved successfully", gin.H{"post": post})
}
