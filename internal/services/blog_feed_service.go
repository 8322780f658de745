package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/pkg/logger"
)

// BlogFeedService reads posts published through the companion API
type BlogFeedService struct {
	baseURL    string
	httpClient *http.Client
}

func NewBlogFeedService(baseURL string, timeout time.Duration) *BlogFeedService {
	return &BlogFeedService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// feedBlog accepts both RFC 3339 and zone-less publishedAt values
type feedBlog struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	Tags        string `json:"tags"`
	Category    string `json:"category"`
	PublishedAt string `json:"publishedAt"`
	ExternalURL string `json:"externalUrl"`
	ImageURL    string `json:"imageUrl"`
}

var feedTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseFeedTime(value string) (time.Time, error) {
	for _, layout := range feedTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// FetchBlogs retrieves the feed sorted newest first
func (s *BlogFeedService) FetchBlogs(ctx context.Context) ([]models.Blog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/v1/blogs", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blog API returned status: %d", resp.StatusCode)
	}

	var raw []feedBlog
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}

	blogs := make([]models.Blog, 0, len(raw))
	for _, item := range raw {
		publishedAt, err := parseFeedTime(item.PublishedAt)
		if err != nil {
			logger.WithField("slug", item.Slug).Warnf("Skipping blog with bad publishedAt: %v", err)
			continue
		}
		blogs = append(blogs, models.Blog{
			ID:          item.ID,
			Title:       item.Title,
			Slug:        item.Slug,
			Excerpt:     item.Excerpt,
			Content:     item.Content,
			Tags:        item.Tags,
			Category:    item.Category,
			PublishedAt: publishedAt,
			ExternalURL: item.ExternalURL,
			ImageURL:    item.ImageURL,
		})
	}

	sort.SliceStable(blogs, func(i, j int) bool {
		return blogs[i].PublishedAt.After(blogs[j].PublishedAt)
	})
	return blogs, nil
}

// GetBlogs returns the feed, or an empty list when the API cannot be reached
func (s *BlogFeedService) GetBlogs(ctx context.Context) []models.Blog {
	blogs, err := s.FetchBlogs(ctx)
	if err != nil {
		logger.WithError(err).WithField("url", s.baseURL).Warn("Blog feed unavailable")
		return []models.Blog{}
	}
	return blogs
}
