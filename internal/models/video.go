package models

// VideoItem is one entry of the social video feed.
type VideoItem struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Caption   string `json:"caption,omitempty"`
}

// VideoFeed is the feed payload served to the storefront, tagged with the
// strategy that produced it so the UI can distinguish live from fallback data.
type VideoFeed struct {
	Handle string      `json:"handle"`
	Source string      `json:"source"`
	Items  []VideoItem `json:"items"`
}
