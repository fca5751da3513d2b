package wixblog

import (
	"errors"
	"time"

	"github.com/VeloraJewelry/storefront_api/internal/models"
)

// ErrPostNotFound is returned when the upstream reports no post for a slug.
var ErrPostNotFound = errors.New("post not found")

type listPostsResponse struct {
	Posts []RawPost `json:"posts"`
}

type getPostResponse struct {
	Post RawPost `json:"post"`
}

// RawPost is the upstream post payload. Content may arrive either as a
// rich-content node tree or as a plain excerpt string.
type RawPost struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Excerpt        string    `json:"excerpt,omitempty"`
	FirstPublished time.Time `json:"firstPublishedDate"`
	CoverMedia     struct {
		Image struct {
			URL string `json:"url"`
		} `json:"image"`
	} `json:"coverMedia"`
	RichContent struct {
		Nodes []models.RichNode `json:"nodes"`
	} `json:"richContent"`
	Owner struct {
		Name string `json:"name"`
	} `json:"owner"`
}

// Adapt converts the upstream post into the storefront model.
func (rp *RawPost) Adapt() models.Post {
	return models.Post{
		ID:         rp.ID,
		Slug:       rp.Slug,
		Title:      rp.Title,
		Excerpt:    rp.Excerpt,
		CoverImage: rp.CoverMedia.Image.URL,
		Content:    rp.RichContent.Nodes,
		Author:     rp.Owner.Name,
		Published:  rp.FirstPublished,
	}
}

// AdaptPosts converts a batch of upstream posts.
func AdaptPosts(raw []RawPost) []models.Post {
	out := make([]models.Post, 0, len(raw))
	for i := range raw {
		out = append(out, raw[i].Adapt())
	}
	return out
}
