package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/VeloraJewelry/storefront_api/internal/utils"
	"github.com/VeloraJewelry/storefront_api/pkg/formrelay"
)

// FormRelay submits a form to the third-party relay endpoint.
type FormRelay interface {
	Submit(ctx context.Context, sub formrelay.Submission) error
}

// SubscribeService validates and relays subscription/contact submissions.
type SubscribeService struct {
	relay FormRelay
}

// NewSubscribeService constructs a SubscribeService. relay may be nil when no
// endpoint is configured; submissions then fail with a tagged error.
func NewSubscribeService(relay FormRelay) *SubscribeService {
	return &SubscribeService{relay: relay}
}

// Submit relays one submission. Fire-and-forget: one POST, the caller shows
// a success or error state and moves on.
func (s *SubscribeService) Submit(ctx context.Context, sub formrelay.Submission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)

	if sub.Name == "" || (sub.Email == "" && sub.Phone == "") {
		return utils.ErrInvalidSubmission
	}
	if s.relay == nil {
		return utils.ErrRelayNotConfigured
	}

	if err := s.relay.Submit(ctx, sub); err != nil {
		return fmt.Errorf("form relay submission failed: %w", err)
	}
	return nil
}
