package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pacman-cli/portfolio/internal/markdown"
	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/internal/repositories"
	"github.com/pacman-cli/portfolio/internal/seo"
	"github.com/pacman-cli/portfolio/pkg/logger"
)

type ProjectHandler struct {
	page     *PageRenderer
	projects *repositories.StaticProjectRepository
	blogs    *repositories.StaticBlogRepository
	repos    RepoSource
	markdown *markdown.Renderer
}

func NewProjectHandler(page *PageRenderer, projects *repositories.StaticProjectRepository,
	blogs *repositories.StaticBlogRepository, repos RepoSource, md *markdown.Renderer) *ProjectHandler {
	return &ProjectHandler{
		page:     page,
		projects: projects,
		blogs:    blogs,
		repos:    repos,
		markdown: md,
	}
}

// ListProjects shows every project, optionally narrowed with ?category=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	category := models.ProjectCategory(c.Query("category"))

	var projects []models.Project
	if isKnownCategory(category) {
		projects = h.projects.GetByCategory(category)
	} else {
		// Unknown categories fall back to the full list
		category = ""
		projects = h.projects.GetAll()
	}

	data := gin.H{
		"Category":   category,
		"Categories": models.ProjectCategories,
		"Projects":   projects,
	}

	h.page.Render(c, http.StatusOK, "projects", seo.Options{
		Title:       "Projects",
		Description: "Backend, full stack and systems projects with architecture notes and case studies.",
	}, data)
}

// ViewProject shows a project case study
func (h *ProjectHandler) ViewProject(c *gin.Context) {
	project := h.projects.GetBySlug(c.Param("slug"))
	if project == nil {
		h.page.NotFound(c)
		return
	}

	var architecture template.HTML
	if project.Architecture != "" {
		rendered, err := h.markdown.Render(project.Architecture)
		if err != nil {
			logger.WithError(err).WithField("project", project.Slug).Warn("Failed to render architecture")
		} else {
			architecture = rendered
		}
	}

	data := gin.H{
		"Project":      project,
		"Badge":        h.repos.FindRepoBadge(c.Request.Context(), project.GithubURL),
		"Architecture": architecture,
		"RelatedBlogs": h.blogs.GetBySlugs(project.RelatedBlogSlugs),
	}

	h.page.Render(c, http.StatusOK, "project", seo.Options{
		Title:       project.Name,
		Description: project.Description,
		Path:        project.Path(),
		Keywords:    project.TechStack,
		Type:        "article",
	}, data, h.page.seo.SoftwareSourceCodeSchema(project))
}

func isKnownCategory(category models.ProjectCategory) bool {
	for _, known := range models.ProjectCategories {
		if known == category {
			return true
		}
	}
	return false
}
