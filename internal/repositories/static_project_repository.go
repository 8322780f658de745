package repositories

import (
	"github.com/pacman-cli/portfolio/internal/models"
)

// StaticProjectRepository is a read-only, in-memory set of projects
type StaticProjectRepository struct {
	projects []models.Project
}

func NewStaticProjectRepository(projects []models.Project) *StaticProjectRepository {
	copied := make([]models.Project, len(projects))
	for i, p := range projects {
		copied[i] = p.Clone()
	}
	return &StaticProjectRepository{projects: copied}
}

// GetAll returns every project in definition order
func (r *StaticProjectRepository) GetAll() []models.Project {
	return r.filter(func(*models.Project) bool { return true })
}

// GetFeatured returns the projects shown on the homepage
func (r *StaticProjectRepository) GetFeatured() []models.Project {
	return r.filter(func(p *models.Project) bool { return p.Featured })
}

// GetByCategory returns the projects in one category
func (r *StaticProjectRepository) GetByCategory(category models.ProjectCategory) []models.Project {
	return r.filter(func(p *models.Project) bool { return p.Category == category })
}

// GetBySlug returns nil when no project has the slug
func (r *StaticProjectRepository) GetBySlug(slug string) *models.Project {
	for i := range r.projects {
		if r.projects[i].Slug == slug {
			project := r.projects[i].Clone()
			return &project
		}
	}
	return nil
}

// GetAllSlugs returns the slug of every project
func (r *StaticProjectRepository) GetAllSlugs() []string {
	slugs := make([]string, len(r.projects))
	for i, p := range r.projects {
		slugs[i] = p.Slug
	}
	return slugs
}

func (r *StaticProjectRepository) filter(keep func(*models.Project) bool) []models.Project {
	out := make([]models.Project, 0, len(r.projects))
	for i := range r.projects {
		if keep(&r.projects[i]) {
			out = append(out, r.projects[i].Clone())
		}
	}
	return out
}
