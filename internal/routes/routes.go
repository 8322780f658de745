// Package routes wires handlers into the website and API routers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pacman-cli/portfolio/internal/handlers"
	"github.com/pacman-cli/portfolio/internal/middleware"
	"github.com/pacman-cli/portfolio/web"
)

// SiteHandlers groups everything the website router serves
type SiteHandlers struct {
	Home     *handlers.HomeHandler
	Projects *handlers.ProjectHandler
	Blog     *handlers.BlogHandler
	Activity *handlers.ActivityHandler
	Contact  *handlers.ContactHandler
	SEO      *handlers.SEOHandler
	NotFound *handlers.NotFoundHandler
}

// Site builds the website router with embedded templates and static assets
func Site(h SiteHandlers, csrfSecret string) (*gin.Engine, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}
	static, err := web.Static()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	router.SetHTMLTemplate(templates)

	assets := router.Group("/static")
	assets.Use(middleware.StaticCache())
	assets.StaticFS("/", http.FS(static))

	router.GET("/health", handlers.HealthCheck)
	router.GET("/robots.txt", h.SEO.Robots)
	router.GET("/sitemap.xml", h.SEO.Sitemap)
	router.GET("/assets/highlight.css", handlers.HighlightCSS)

	pages := router.Group("/")
	pages.Use(middleware.CSRFMiddleware(csrfSecret))
	{
		pages.GET("/", h.Home.Index)
		pages.GET("/about", h.Home.About)
		pages.GET("/resume", h.Home.Resume)

		pages.GET("/projects", h.Projects.ListProjects)
		pages.GET("/projects/:slug", h.Projects.ViewProject)

		pages.GET("/blog", h.Blog.ListBlogs)
		pages.GET("/blog/:slug", h.Blog.ViewBlog)

		pages.GET("/contact/form", h.Contact.Form)
		pages.POST("/contact", h.Contact.Submit)

		pages.GET("/partials/github-activity", h.Activity.GitHubActivity)
	}

	router.NoRoute(middleware.CSRFMiddleware(csrfSecret), h.NotFound.NotFound)

	return router, nil
}

// API builds the companion API router. Write endpoints require the admin token.
func API(h *handlers.APIHandler, adminToken string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	router.GET("/health", handlers.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/blogs", h.ListBlogs)
		v1.GET("/blogs/:slug", h.GetBlog)
		v1.GET("/projects", h.ListProjects)
		v1.POST("/contact", h.SubmitContact)

		admin := v1.Group("")
		admin.Use(middleware.AdminRequired(adminToken))
		{
			admin.POST("/blogs", h.CreateBlog)
			admin.POST("/projects", h.CreateProject)
			admin.GET("/contact/export", h.ExportContacts)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}
