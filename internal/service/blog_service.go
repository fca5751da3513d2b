package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VeloraJewelry/storefront_api/internal/catalog"
	"github.com/VeloraJewelry/storefront_api/internal/models"
	"github.com/VeloraJewelry/storefront_api/internal/utils"
	"github.com/VeloraJewelry/storefront_api/pkg/wixblog"
)

// excerptLimit caps derived excerpts for list views.
const excerptLimit = 200

// BlogFetcher is the slice of the blog client the service needs.
type BlogFetcher interface {
	ListPosts(ctx context.Context) ([]wixblog.RawPost, error)
	GetPost(ctx context.Context, slug string) (*wixblog.RawPost, error)
}

// BlogService adapts the CMS backend's posts for the storefront.
type BlogService struct {
	fetcher BlogFetcher
}

// NewBlogService constructs a BlogService.
func NewBlogService(fetcher BlogFetcher) *BlogService {
	return &BlogService{fetcher: fetcher}
}

// ListPosts returns the published posts, with an excerpt derived from the
// rich content when the CMS did not provide one. List views drop the body.
func (s *BlogService) ListPosts(ctx context.Context) ([]models.Post, error) {
	raw, err := s.fetcher.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := wixblog.AdaptPosts(raw)
	for i := range posts {
		if posts[i].Excerpt == "" {
			posts[i].Excerpt = deriveExcerpt(posts[i].Content)
		}
		posts[i].Content = nil
	}
	return posts, nil
}

// GetPost returns one post by slug with its full content.
func (s *BlogService) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	raw, err := s.fetcher.GetPost(ctx, slug)
	if err != nil {
		if errors.Is(err, wixblog.ErrPostNotFound) {
			return nil, utils.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post %q: %w", slug, err)
	}

	post := raw.Adapt()
	if post.Excerpt == "" {
		post.Excerpt = deriveExcerpt(post.Content)
	}
	return &post, nil
}

func deriveExcerpt(content []models.RichNode) string {
	text := catalog.FlattenRichText(content)
	if len(text) <= excerptLimit {
		return text
	}
	return text[:excerptLimit]
}
