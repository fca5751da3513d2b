package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/VeloraJewelry/storefront_api/internal/models"
)

// FeedFetcher produces the video feed; the strategy chain implements it.
type FeedFetcher interface {
	Fetch(ctx context.Context) (*models.VideoFeed, error)
}

// FeedCache caches feeds per handle; a nil feed result means a miss.
type FeedCache interface {
	Get(ctx context.Context, handle string) (*models.VideoFeed, error)
	Set(ctx context.Context, feed *models.VideoFeed) error
}

// VideoService serves the social video feed: cache first, then the strategy
// chain, writing fresh results back best-effort.
type VideoService struct {
	handle  string
	fetcher FeedFetcher
	cache   FeedCache
}

// NewVideoService constructs a VideoService for the given account handle.
func NewVideoService(handle string, fetcher FeedFetcher, cache FeedCache) *VideoService {
	return &VideoService{handle: handle, fetcher: fetcher, cache: cache}
}

// Feed returns the cached feed when fresh, otherwise fetches through the
// strategy chain. Cache failures are logged, never fatal: the feature's only
// obligation is to show something if possible.
func (s *VideoService) Feed(ctx context.Context) (*models.VideoFeed, error) {
	cached, err := s.cache.Get(ctx, s.handle)
	if err != nil {
		log.Warn().Err(err).Str("handle", s.handle).Msg("Video feed cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	feed, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video feed: %w", err)
	}

	if err := s.cache.Set(ctx, feed); err != nil {
		log.Warn().Err(err).Str("handle", s.handle).Msg("Video feed cache write failed")
	}
	return feed, nil
}
