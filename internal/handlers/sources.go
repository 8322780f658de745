package handlers

import (
	"context"

	"github.com/pacman-cli/portfolio/internal/models"
)

// RepoSource lists public repositories and looks up single repository stats
type RepoSource interface {
	GetRepos(ctx context.Context) []models.GithubRepo
	FindRepoBadge(ctx context.Context, repoURL string) *models.RepoBadge
}

// BlogFeed returns posts served by the blog API, empty when it is unreachable
type BlogFeed interface {
	GetBlogs(ctx context.Context) []models.Blog
}

// ActivityLoader builds the contribution summary for a viewport class
type ActivityLoader interface {
	Load(ctx context.Context, viewport models.ViewportClass) *models.ActivitySummary
}

// ContactSubmitter relays a contact form and reports the UI state to show
type ContactSubmitter interface {
	Submit(ctx context.Context, form models.ContactForm) models.ContactResult
}
