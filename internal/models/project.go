package models

// ProjectCategory groups projects on the listing page
type ProjectCategory string

const (
	ProjectCategoryFullstack ProjectCategory = "fullstack"
	ProjectCategoryBackend   ProjectCategory = "backend"
	ProjectCategoryFrontend  ProjectCategory = "frontend"
	ProjectCategorySystems   ProjectCategory = "systems"
)

// ProjectCategories lists categories in display order
var ProjectCategories = []ProjectCategory{
	ProjectCategoryFullstack,
	ProjectCategoryBackend,
	ProjectCategoryFrontend,
	ProjectCategorySystems,
}

// Project is a statically defined portfolio project with optional case study sections
type Project struct {
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	LongDescription string          `json:"longDescription,omitempty"`
	TechStack       []string        `json:"techStack"`
	GithubURL       string          `json:"githubUrl"`
	DemoURL         string          `json:"demoUrl,omitempty"`
	Category        ProjectCategory `json:"category"`
	Featured        bool            `json:"featured,omitempty"`

	ProblemStatement string   `json:"problemStatement,omitempty"`
	Architecture     string   `json:"architecture,omitempty"` // markdown, usually a mermaid fence
	Challenges       []string `json:"challenges,omitempty"`
	Solutions        []string `json:"solutions,omitempty"`
	Results          []string `json:"results,omitempty"`

	RelatedBlogSlugs []string `json:"relatedBlogSlugs,omitempty"`
}

// HasCaseStudy reports whether the project page should render case study sections
func (p *Project) HasCaseStudy() bool {
	return p.ProblemStatement != "" || len(p.Challenges) > 0
}

// Summary returns the long description, falling back to the short one
func (p *Project) Summary() string {
	if p.LongDescription != "" {
		return p.LongDescription
	}
	return p.Description
}

// Path is the site-relative URL of the case study page
func (p *Project) Path() string {
	return "/projects/" + p.Slug
}

// Clone returns a deep copy so callers cannot mutate static data
func (p Project) Clone() Project {
	p.TechStack = cloneStrings(p.TechStack)
	p.Challenges = cloneStrings(p.Challenges)
	p.Solutions = cloneStrings(p.Solutions)
	p.Results = cloneStrings(p.Results)
	p.RelatedBlogSlugs = cloneStrings(p.RelatedBlogSlugs)
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
