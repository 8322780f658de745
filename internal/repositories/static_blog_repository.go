package repositories

import (
	"sort"

	"github.com/pacman-cli/portfolio/internal/models"
)

// StaticBlogRepository is a read-only, in-memory set of blog posts
type StaticBlogRepository struct {
	blogs  []models.Blog
	bySlug map[string]int
}

func NewStaticBlogRepository(blogs []models.Blog) *StaticBlogRepository {
	copied := make([]models.Blog, len(blogs))
	copy(copied, blogs)
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].PublishedAt.After(copied[j].PublishedAt)
	})

	bySlug := make(map[string]int, len(copied))
	for i, blog := range copied {
		if _, exists := bySlug[blog.Slug]; !exists {
			bySlug[blog.Slug] = i
		}
	}

	return &StaticBlogRepository{
		blogs:  copied,
		bySlug: bySlug,
	}
}

// GetAll returns every post, newest first
func (r *StaticBlogRepository) GetAll() []models.Blog {
	out := make([]models.Blog, len(r.blogs))
	copy(out, r.blogs)
	return out
}

// GetBySlug returns nil when no post has the slug
func (r *StaticBlogRepository) GetBySlug(slug string) *models.Blog {
	i, ok := r.bySlug[slug]
	if !ok {
		return nil
	}
	blog := r.blogs[i]
	return &blog
}

// GetBySlugs returns the posts matching slugs, in the order given, skipping unknown slugs
func (r *StaticBlogRepository) GetBySlugs(slugs []string) []models.Blog {
	var out []models.Blog
	for _, slug := range slugs {
		if blog := r.GetBySlug(slug); blog != nil {
			out = append(out, *blog)
		}
	}
	return out
}
