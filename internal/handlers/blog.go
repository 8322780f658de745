package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/pacman-cli/portfolio/internal/markdown"
	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/internal/repositories"
	"github.com/pacman-cli/portfolio/internal/seo"
	"github.com/pacman-cli/portfolio/pkg/logger"
)

type BlogHandler struct {
	page     *PageRenderer
	blogs    *repositories.StaticBlogRepository
	feed     BlogFeed
	markdown *markdown.Renderer
}

func NewBlogHandler(page *PageRenderer, blogs *repositories.StaticBlogRepository, feed BlogFeed, md *markdown.Renderer) *BlogHandler {
	return &BlogHandler{
		page:     page,
		blogs:    blogs,
		feed:     feed,
		markdown: md,
	}
}

// ListBlogs shows static posts and blog API posts, newest first
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	data := gin.H{
		"Blogs": MergeBlogs(h.blogs.GetAll(), h.feed.GetBlogs(c.Request.Context())),
	}

	h.page.Render(c, http.StatusOK, "blog", seo.Options{
		Title:       "Blog",
		Description: "Articles on backend engineering, Spring Boot, system design and cloud infrastructure.",
	}, data)
}

// ViewBlog renders a post hosted on this site. Posts that only exist
// elsewhere redirect to their external URL.
func (h *BlogHandler) ViewBlog(c *gin.Context) {
	slug := c.Param("slug")

	blog := h.blogs.GetBySlug(slug)
	if blog == nil {
		blog = findBlog(h.feed.GetBlogs(c.Request.Context()), slug)
	}
	if blog == nil {
		h.page.NotFound(c)
		return
	}

	if !blog.HasContent() {
		if blog.ExternalURL != "" {
			c.Redirect(http.StatusFound, blog.ExternalURL)
			return
		}
		h.page.NotFound(c)
		return
	}

	content, err := h.markdown.Render(blog.Content)
	if err != nil {
		logger.WithError(err).WithField("slug", slug).Error("Failed to render blog post")
		c.String(http.StatusInternalServerError, "Failed to render post")
		return
	}

	data := gin.H{
		"Blog":    blog,
		"Content": content,
	}

	h.page.Render(c, http.StatusOK, "blog_post", seo.Options{
		Title:       blog.Title,
		Description: blog.Excerpt,
		Image:       blog.ImageURL,
		Path:        blog.Path(),
		Keywords:    blog.TagList(),
		Type:        "article",
	}, data, h.page.seo.BlogPostingSchema(blog))
}

// MergeBlogs combines both sources, keeping the first post seen for a slug
func MergeBlogs(primary, secondary []models.Blog) []models.Blog {
	seen := make(map[string]bool, len(primary)+len(secondary))
	merged := make([]models.Blog, 0, len(primary)+len(secondary))
	for _, list := range [][]models.Blog{primary, secondary} {
		for _, blog := range list {
			if seen[blog.Slug] {
				continue
			}
			seen[blog.Slug] = true
			merged = append(merged, blog)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})
	return merged
}

func findBlog(blogs []models.Blog, slug string) *models.Blog {
	for i := range blogs {
		if blogs[i].Slug == slug {
			return &blogs[i]
		}
	}
	return nil
}
