package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeloraJewelry/storefront_api/internal/models"
)

type fakeFeedFetcher struct {
	feed  *models.VideoFeed
	err   error
	calls int
}

func (f *fakeFeedFetcher) Fetch(context.Context) (*models.VideoFeed, error) {
	f.calls++
	return f.feed, f.err
}

type fakeFeedCache struct {
	feeds  map[string]*models.VideoFeed
	getErr error
	setErr error
}

func newFakeFeedCache() *fakeFeedCache {
	return &fakeFeedCache{feeds: make(map[string]*models.VideoFeed)}
}

func (f *fakeFeedCache) Get(_ context.Context, handle string) (*models.VideoFeed, error) {
	return f.feeds[handle], f.getErr
}

func (f *fakeFeedCache) Set(_ context.Context, feed *models.VideoFeed) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.feeds[feed.Handle] = feed
	return nil
}

func liveFeed() *models.VideoFeed {
	return &models.VideoFeed{Handle: "velora", Source: "official-api", Items: []models.VideoItem{{ID: "v1"}}}
}

func TestVideoService_CacheHitSkipsFetch(t *testing.T) {
	cache := newFakeFeedCache()
	cache.feeds["velora"] = liveFeed()
	fetcher := &fakeFeedFetcher{}

	svc := NewVideoService("velora", fetcher, cache)
	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "official-api", feed.Source)
	assert.Zero(t, fetcher.calls)
}

func TestVideoService_MissFetchesAndCaches(t *testing.T) {
	cache := newFakeFeedCache()
	fetcher := &fakeFeedFetcher{feed: liveFeed()}

	svc := NewVideoService("velora", fetcher, cache)
	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.Same(t, feed, cache.feeds["velora"])
}

func TestVideoService_CacheFailuresAreNotFatal(t *testing.T) {
	cache := newFakeFeedCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	fetcher := &fakeFeedFetcher{feed: liveFeed()}

	svc := NewVideoService("velora", fetcher, cache)
	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	assert.Len(t, feed.Items, 1)
}

func TestVideoService_FetchFailureSurfaces(t *testing.T) {
	svc := NewVideoService("velora", &fakeFeedFetcher{err: errors.New("exhausted")}, newFakeFeedCache())
	_, err := svc.Feed(context.Background())
	assert.Error(t, err)
}
