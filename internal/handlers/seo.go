package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pacman-cli/portfolio/internal/markdown"
	"github.com/pacman-cli/portfolio/internal/repositories"
	"github.com/pacman-cli/portfolio/internal/seo"
	"github.com/pacman-cli/portfolio/pkg/logger"
)

type SEOHandler struct {
	seo      *seo.Builder
	projects *repositories.StaticProjectRepository
	blogs    *repositories.StaticBlogRepository
	feed     BlogFeed
}

func NewSEOHandler(builder *seo.Builder, projects *repositories.StaticProjectRepository,
	blogs *repositories.StaticBlogRepository, feed BlogFeed) *SEOHandler {
	return &SEOHandler{
		seo:      builder,
		projects: projects,
		blogs:    blogs,
		feed:     feed,
	}
}

// Robots serves robots.txt
func (h *SEOHandler) Robots(c *gin.Context) {
	c.String(http.StatusOK, seo.DefaultRobots(h.seo.SiteURL()))
}

// Sitemap serves sitemap.xml covering pages, projects and every known post
func (h *SEOHandler) Sitemap(c *gin.Context) {
	sitemap := seo.BuildSitemap(h.seo.SiteURL(), h.projects.GetAll(), h.blogs.GetAll(),
		h.feed.GetBlogs(c.Request.Context()), time.Now())

	body, err := sitemap.XML()
	if err != nil {
		logger.WithError(err).Error("Failed to encode sitemap")
		c.String(http.StatusInternalServerError, "Failed to build sitemap")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// HighlightCSS serves the stylesheet for highlighted code blocks
func HighlightCSS(c *gin.Context) {
	c.Header("Content-Type", "text/css; charset=utf-8")
	c.Header("Cache-Control", "public, max-age=86400")
	if err := markdown.WriteHighlightCSS(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to write highlight stylesheet")
		c.Status(http.StatusInternalServerError)
	}
}

// HealthCheck reports that the process is serving
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
