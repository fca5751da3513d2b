package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/VeloraJewelry/storefront_api/internal/models"
)

// VideoFeedTTL is how long a scraped feed stays fresh. The feed is decorative
// and the scraping tiers are slow, so half an hour is plenty.
const VideoFeedTTL = 30 * time.Minute

// KV is the minimal key-value surface the video cache needs. RedisClient
// satisfies it; tests use an in-memory fake.
type KV interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

// cachedFeed is the stored envelope: the feed plus an absolute expiry so a
// stale entry reads as a miss even if the store's own TTL has not fired.
type cachedFeed struct {
	Feed      models.VideoFeed `json:"feed"`
	ExpiresAt time.Time        `json:"expiresAt"`
	CachedAt  time.Time        `json:"cachedAt"`
}

// VideoCache caches the social video feed per account handle.
type VideoCache struct {
	kv  KV
	now func() time.Time
}

// NewVideoCache creates a VideoCache backed by the given store.
func NewVideoCache(kv KV) *VideoCache {
	return &VideoCache{kv: kv, now: time.Now}
}

func (c *VideoCache) key(handle string) string {
	return fmt.Sprintf("videofeed:%s", handle)
}

// Set overwrites the cached feed for the handle unconditionally.
func (c *VideoCache) Set(ctx context.Context, feed *models.VideoFeed) error {
	now := c.now()
	entry := cachedFeed{
		Feed:      *feed,
		ExpiresAt: now.Add(VideoFeedTTL),
		CachedAt:  now,
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal video feed: %w", err)
	}
	return c.kv.Set(ctx, c.key(feed.Handle), string(raw), VideoFeedTTL)
}

// Get returns the cached feed for the handle, or nil on a miss. Expired and
// undecodable entries read as misses; a broken cache must never break the
// feature it accelerates.
func (c *VideoCache) Get(ctx context.Context, handle string) (*models.VideoFeed, error) {
	raw, err := c.kv.Get(ctx, c.key(handle))
	if err != nil {
		if IsMiss(err) {
			return nil, nil
		}
		return nil, err
	}

	var entry cachedFeed
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, nil
	}
	if !c.now().Before(entry.ExpiresAt) {
		return nil, nil
	}
	return &entry.Feed, nil
}
