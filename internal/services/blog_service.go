package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/internal/repositories"
	"github.com/pacman-cli/portfolio/pkg/logger"
)

// BlogService manages posts stored by the companion API
type BlogService struct {
	blogRepo *repositories.BlogRepository
}

func NewBlogService(blogRepo *repositories.BlogRepository) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
	}
}

// CreateBlog validates and stores a post, deriving the slug from the title when empty
func (s *BlogService) CreateBlog(blog *models.Blog) error {
	if err := blog.Validate(); err != nil {
		return err
	}

	if blog.Slug == "" {
		blog.Slug = SlugFromTitle(blog.Title)
	}
	if blog.PublishedAt.IsZero() {
		blog.PublishedAt = time.Now().UTC()
	}

	if err := s.blogRepo.Create(blog); err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

func (s *BlogService) GetAllBlogs() ([]*models.Blog, error) {
	blogs, err := s.blogRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs: %w", err)
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}
	return blogs, nil
}

// GetBlogBySlug returns nil when the post does not exist
func (s *BlogService) GetBlogBySlug(slug string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return blog, nil
}

// SeedBlogs inserts the given posts, skipping any slug already stored.
// It returns how many posts were inserted.
func (s *BlogService) SeedBlogs(blogs []models.Blog) (int, error) {
	inserted := 0
	for i := range blogs {
		blog := blogs[i]
		exists, err := s.blogRepo.ExistsBySlug(blog.Slug)
		if err != nil {
			return inserted, fmt.Errorf("failed to check blog %s: %w", blog.Slug, err)
		}
		if exists {
			logger.Debugf("Blog %s already seeded, skipping", blog.Slug)
			continue
		}

		blog.ID = 0
		if err := s.blogRepo.Create(&blog); err != nil {
			return inserted, fmt.Errorf("failed to seed blog %s: %w", blog.Slug, err)
		}
		inserted++
	}

	if inserted > 0 {
		logger.WithField("count", inserted).Info("Seeded blogs")
	}
	return inserted, nil
}

// SlugFromTitle lower-cases the title and replaces spaces with hyphens
func SlugFromTitle(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}
