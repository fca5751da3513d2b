package videofeed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/VeloraJewelry/storefront_api/internal/models"
)

// strategyTimeout bounds each strategy attempt. The feed is decorative; a
// slow upstream must not hold the page hostage.
const strategyTimeout = 8 * time.Second

// Strategy is one way of obtaining the video feed. Strategies are tried in
// order; each failure is contained and the chain moves on.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, handle string) ([]models.VideoItem, error)
}

// Chain tries strategies in order and returns the first successful feed.
// The last strategy is expected to be a static fallback that cannot fail,
// so Fetch only errors when the chain was built without one.
type Chain struct {
	handle     string
	strategies []Strategy
}

// NewChain builds a fetch chain for the given account handle.
func NewChain(handle string, strategies ...Strategy) *Chain {
	return &Chain{handle: handle, strategies: strategies}
}

// Fetch walks the strategies and returns the first non-empty result, tagged
// with the strategy that produced it.
func (c *Chain) Fetch(ctx context.Context) (*models.VideoFeed, error) {
	for _, s := range c.strategies {
		attemptCtx, cancel := context.WithTimeout(ctx, strategyTimeout)
		items, err := s.Fetch(attemptCtx, c.handle)
		cancel()

		if err != nil {
			log.Warn().
				Err(err).
				Str("strategy", s.Name()).
				Str("handle", c.handle).
				Msg("Video feed strategy failed, trying next")
			continue
		}
		if len(items) == 0 {
			log.Warn().
				Str("strategy", s.Name()).
				Str("handle", c.handle).
				Msg("Video feed strategy returned nothing, trying next")
			continue
		}

		return &models.VideoFeed{Handle: c.handle, Source: s.Name(), Items: items}, nil
	}
	return nil, errors.New("all video feed strategies exhausted")
}
