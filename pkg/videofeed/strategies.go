package videofeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/VeloraJewelry/storefront_api/internal/models"
)

// APIStrategy calls the platform's official video list API with an access
// token. It reports "not configured" when no token is present so the chain
// can move straight to scraping.
type APIStrategy struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewAPIStrategy constructs the official-API strategy.
func NewAPIStrategy(baseURL, accessToken string) *APIStrategy {
	if baseURL == "" {
		baseURL = "https://open.tiktokapis.com"
	}
	return &APIStrategy{
		httpClient:  &http.Client{Timeout: strategyTimeout},
		baseURL:     baseURL,
		accessToken: accessToken,
	}
}

func (s *APIStrategy) Name() string { return "official-api" }

type apiVideoListResponse struct {
	Data struct {
		Videos []struct {
			ID         string `json:"id"`
			ShareURL   string `json:"share_url"`
			CoverImage string `json:"cover_image_url"`
			Title      string `json:"title"`
		} `json:"videos"`
	} `json:"data"`
}

// Fetch lists recent videos via the official API.
func (s *APIStrategy) Fetch(ctx context.Context, handle string) ([]models.VideoItem, error) {
	if s.accessToken == "" {
		return nil, errors.New("video API access token not configured")
	}

	endpoint := s.baseURL + "/v2/video/list/?fields=id,title,cover_image_url,share_url"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(`{"max_count":12}`))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("video API returned status %d", resp.StatusCode)
	}

	var parsed apiVideoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	items := make([]models.VideoItem, 0, len(parsed.Data.Videos))
	for _, v := range parsed.Data.Videos {
		items = append(items, models.VideoItem{
			ID:        v.ID,
			URL:       v.ShareURL,
			Thumbnail: v.CoverImage,
			Caption:   v.Title,
		})
	}
	return items, nil
}

// videoLinkRe pulls video ids out of profile page markup.
var videoLinkRe = regexp.MustCompile(`/video/(\d{6,})`)

// ScrapeStrategy fetches the public profile page and extracts video links
// from the markup. Brittle on purpose: when the page shape changes it fails
// and the chain falls through to the static list.
type ScrapeStrategy struct {
	httpClient *http.Client
	baseURL    string
}

// NewScrapeStrategy constructs the profile-page scraping strategy.
func NewScrapeStrategy(baseURL string) *ScrapeStrategy {
	if baseURL == "" {
		baseURL = "https://www.tiktok.com"
	}
	return &ScrapeStrategy{
		httpClient: &http.Client{Timeout: strategyTimeout},
		baseURL:    baseURL,
	}
}

func (s *ScrapeStrategy) Name() string { return "profile-scrape" }

// Fetch scrapes the public profile page for video links.
func (s *ScrapeStrategy) Fetch(ctx context.Context, handle string) ([]models.VideoItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/@"+handle, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// the profile page serves bare user agents a stub with no video links
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("profile page returned status %d", resp.StatusCode)
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read profile page: %w", err)
	}

	seen := make(map[string]bool)
	var items []models.VideoItem
	for _, m := range videoLinkRe.FindAllStringSubmatch(string(page), -1) {
		id := m[1]
		if seen[id] {
			continue
		}
		seen[id] = true
		items = append(items, models.VideoItem{
			ID:  id,
			URL: fmt.Sprintf("%s/@%s/video/%s", s.baseURL, handle, id),
		})
		if len(items) == 12 {
			break
		}
	}
	return items, nil
}

// StaticStrategy returns a curated fallback list. It never fails and always
// terminates the chain.
type StaticStrategy struct {
	items []models.VideoItem
}

// NewStaticStrategy constructs the static fallback strategy.
func NewStaticStrategy(items []models.VideoItem) *StaticStrategy {
	return &StaticStrategy{items: items}
}

func (s *StaticStrategy) Name() string { return "static-fallback" }

// Fetch returns the curated list unchanged.
func (s *StaticStrategy) Fetch(context.Context, string) ([]models.VideoItem, error) {
	return s.items, nil
}
