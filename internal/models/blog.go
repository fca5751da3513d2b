package models

import "time"

// Post is a blog entry from the CMS backend.
type Post struct {
	ID         string     `json:"id"`
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	Excerpt    string     `json:"excerpt,omitempty"`
	CoverImage string     `json:"coverImage,omitempty"`
	Content    []RichNode `json:"content,omitempty"`
	Author     string     `json:"author,omitempty"`
	Published  time.Time  `json:"published"`
}
