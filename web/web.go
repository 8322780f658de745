// Package web embeds the HTML templates and static assets of the site.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
)

//go:embed templates static
var files embed.FS

// Templates parses every page, layout and partial template
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(files,
		"templates/*.html",
		"templates/layouts/*.html",
		"templates/partials/*.html",
		"templates/projects/*.html",
		"templates/blog/*.html",
	)
}

// Static returns the static asset tree rooted at web/static
func Static() (fs.FS, error) {
	return fs.Sub(files, "static")
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"isoDate": func(t time.Time) string {
			return t.UTC().Format("2006-01-02")
		},
		"join":  strings.Join,
		"lower": strings.ToLower,
		"limit": func(n int, items []string) []string {
			if len(items) > n {
				return items[:n]
			}
			return items
		},
		"levelClass": func(day *models.ContributionDay) string {
			if day == nil {
				return "cell cell-empty"
			}
			return "cell level-" + string(rune('0'+clampLevel(day.Level)))
		},
		"categoryLabel": func(c models.ProjectCategory) string {
			switch c {
			case models.ProjectCategoryFullstack:
				return "Full Stack"
			case models.ProjectCategoryBackend:
				return "Backend"
			case models.ProjectCategoryFrontend:
				return "Frontend"
			case models.ProjectCategorySystems:
				return "Systems"
			}
			return string(c)
		},
		"seconds": func(d time.Duration) int {
			return int(d / time.Second)
		},
	}
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 4 {
		return 4
	}
	return level
}
