package models

// ProjectEntry is a project listing stored by the companion API
type ProjectEntry struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	TechStack   string `json:"techStack"` // comma separated
	GithubURL   string `json:"githubUrl"`
	LiveDemoURL string `json:"liveDemoUrl"`
	ImageURL    string `json:"imageUrl"`
}

func (p *ProjectEntry) Validate() error {
	if p.Title == "" {
		return ErrProjectTitleRequired
	}
	if p.Description == "" {
		return ErrProjectDescriptionRequired
	}
	return nil
}

func (b *Blog) Validate() error {
	if b.Title == "" {
		return ErrBlogTitleRequired
	}
	return nil
}

// Common errors
var (
	ErrProjectTitleRequired       = &ValidationError{Field: "title", Message: "Project title is required"}
	ErrProjectDescriptionRequired = &ValidationError{Field: "description", Message: "Project description is required"}
	ErrBlogTitleRequired          = &ValidationError{Field: "title", Message: "Blog title is required"}
)
