package models

import (
	"math"
	"strings"
	"time"
)

const wordsPerMinute = 200

// Blog is a blog post, either defined statically or served by the blog API
type Blog struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content,omitempty"`
	Tags        string    `json:"tags"` // comma separated
	Category    string    `json:"category,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	ExternalURL string    `json:"externalUrl,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// TagList splits the comma separated tags, trimming blanks
func (b *Blog) TagList() []string {
	if strings.TrimSpace(b.Tags) == "" {
		return nil
	}
	parts := strings.Split(b.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ReadTimeMinutes approximates reading time at 200 words per minute.
// Posts without content (external links) default to 3 minutes.
func (b *Blog) ReadTimeMinutes() int {
	if b.Content == "" {
		return 3
	}
	words := len(strings.Fields(b.Content))
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

// HasContent reports whether the post is hosted on this site
func (b *Blog) HasContent() bool {
	return strings.TrimSpace(b.Content) != ""
}

// Link returns where a listing entry should point
func (b *Blog) Link() string {
	if b.HasContent() {
		return b.Path()
	}
	if b.ExternalURL != "" {
		return b.ExternalURL
	}
	return "#"
}

// IsExternal reports whether Link leaves the site
func (b *Blog) IsExternal() bool {
	return !b.HasContent() && b.ExternalURL != ""
}

// Path is the site-relative URL of the post
func (b *Blog) Path() string {
	return "/blog/" + b.Slug
}
