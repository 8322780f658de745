package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pacman-cli/portfolio/internal/repositories"
	"github.com/pacman-cli/portfolio/internal/seo"
	"github.com/pacman-cli/portfolio/internal/services"
)

const (
	homeBlogLimit      = 3
	homeTechStackLimit = 8
)

type HomeHandler struct {
	page      *PageRenderer
	projects  *repositories.StaticProjectRepository
	blogs     *repositories.StaticBlogRepository
	feed      BlogFeed
	repos     RepoSource
	resumeURL string
}

func NewHomeHandler(page *PageRenderer, projects *repositories.StaticProjectRepository,
	blogs *repositories.StaticBlogRepository, feed BlogFeed, repos RepoSource, resumeURL string) *HomeHandler {
	return &HomeHandler{
		page:      page,
		projects:  projects,
		blogs:     blogs,
		feed:      feed,
		repos:     repos,
		resumeURL: resumeURL,
	}
}

// Index handles the home page
func (h *HomeHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	blogs := h.feed.GetBlogs(ctx)
	if len(blogs) == 0 {
		blogs = h.blogs.GetAll()
	}
	if len(blogs) > homeBlogLimit {
		blogs = blogs[:homeBlogLimit]
	}

	techStack := services.TechStackFromRepos(h.repos.GetRepos(ctx))
	if len(techStack) > homeTechStackLimit {
		techStack = techStack[:homeTechStackLimit]
	}

	data := gin.H{
		"Projects":  h.projects.GetFeatured(),
		"Blogs":     blogs,
		"TechStack": techStack,
	}

	h.page.Render(c, http.StatusOK, "index", seo.Options{}, data, h.page.seo.PersonSchema(h.page.profile))
}

// About handles the about page
func (h *HomeHandler) About(c *gin.Context) {
	h.page.Render(c, http.StatusOK, "about", seo.Options{
		Title:       "About",
		Description: h.page.profile.Tagline,
		Type:        "profile",
	}, nil, h.page.seo.PersonSchema(h.page.profile))
}

// Resume handles the printable resume page
func (h *HomeHandler) Resume(c *gin.Context) {
	data := gin.H{
		"ResumeURL": h.resumeURL,
		"Projects":  h.projects.GetAll(),
	}

	h.page.Render(c, http.StatusOK, "resume", seo.Options{
		Title: "Resume",
	}, data)
}
