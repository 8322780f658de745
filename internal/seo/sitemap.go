package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap lists the fixed pages, every project and every blog post.
// A URL already listed is not repeated, so feed posts that mirror static posts appear once.
func BuildSitemap(siteURL string, projects []models.Project, staticBlogs, feedBlogs []models.Blog, now time.Time) *Sitemap {
	siteURL = strings.TrimRight(siteURL, "/")
	today := now.UTC().Format("2006-01-02")

	sitemap := &Sitemap{Xmlns: sitemapNamespace}
	seen := make(map[string]bool)
	add := func(path, lastMod, changeFreq string, priority float64) {
		loc := siteURL + path
		if seen[loc] {
			return
		}
		seen[loc] = true
		sitemap.URLs = append(sitemap.URLs, SitemapURL{
			Loc:        loc,
			LastMod:    lastMod,
			ChangeFreq: changeFreq,
			Priority:   fmt.Sprintf("%.1f", priority),
		})
	}

	add("", today, "weekly", 1.0)
	add("/about", today, "monthly", 0.8)
	add("/resume", today, "monthly", 0.7)
	add("/projects", today, "weekly", 0.8)
	add("/blog", today, "weekly", 0.7)

	for i := range projects {
		add(projects[i].Path(), today, "monthly", 0.7)
	}

	for _, blogs := range [][]models.Blog{staticBlogs, feedBlogs} {
		for i := range blogs {
			add(blogs[i].Path(), blogs[i].PublishedAt.UTC().Format("2006-01-02"), "monthly", 0.6)
		}
	}

	return sitemap
}

// XML renders the sitemap document including the XML declaration
func (s *Sitemap) XML() ([]byte, error) {
	body, err := xml.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
