package seo

import (
	"encoding/json"
	"html/template"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
)

const schemaContext = "https://schema.org"

// JSONLD encodes structured data for a <script type="application/ld+json"> tag.
// encoding/json escapes <, > and & so the result cannot close the script element.
func JSONLD(data map[string]any) (template.JS, error) {
	out, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return template.JS(out), nil
}

func (b *Builder) author() map[string]any {
	return map[string]any{
		"@type": "Person",
		"name":  b.site.Author,
		"url":   b.site.URL,
	}
}

// PersonSchema describes the site owner
func (b *Builder) PersonSchema(profile *models.Profile) map[string]any {
	data := map[string]any{
		"@context": schemaContext,
		"@type":    "Person",
		"name":     b.site.Author,
		"url":      b.site.URL,
		"image":    b.AbsoluteURL(b.site.Image),
	}
	if profile != nil {
		data["jobTitle"] = profile.Role
		if profile.Email != "" {
			data["email"] = "mailto:" + profile.Email
		}
		sameAs := make([]string, 0, len(profile.Links))
		for _, link := range profile.Links {
			sameAs = append(sameAs, link.URL)
		}
		if len(sameAs) > 0 {
			data["sameAs"] = sameAs
		}
	}
	return data
}

// SoftwareSourceCodeSchema describes a project page
func (b *Builder) SoftwareSourceCodeSchema(project *models.Project) map[string]any {
	url := project.GithubURL
	if project.DemoURL != "" {
		url = project.DemoURL
	}

	data := map[string]any{
		"@context":            schemaContext,
		"@type":               "SoftwareSourceCode",
		"name":                project.Name,
		"description":         project.Description,
		"codeRepository":      project.GithubURL,
		"url":                 url,
		"programmingLanguage": project.TechStack,
		"author":              b.author(),
	}
	if project.DemoURL != "" {
		data["targetProduct"] = map[string]any{
			"@type":               "WebApplication",
			"name":                project.Name,
			"url":                 project.DemoURL,
			"applicationCategory": "WebApplication",
			"operatingSystem":     "Any",
		}
	}
	return data
}

// BlogPostingSchema describes a blog article page
func (b *Builder) BlogPostingSchema(blog *models.Blog) map[string]any {
	url := b.AbsoluteURL(blog.Path())
	published := blog.PublishedAt.UTC().Format(time.RFC3339)

	return map[string]any{
		"@context":      schemaContext,
		"@type":         "BlogPosting",
		"headline":      blog.Title,
		"description":   blog.Excerpt,
		"datePublished": published,
		"dateModified":  published,
		"url":           url,
		"author":        b.author(),
		"publisher":     b.author(),
		"keywords":      blog.Tags,
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   url,
		},
	}
}
