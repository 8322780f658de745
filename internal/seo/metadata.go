// Package seo builds per-page metadata, structured data, robots.txt and the sitemap.
package seo

import (
	"strings"

	"github.com/pacman-cli/portfolio/pkg/config"
)

var defaultKeywords = []string{
	"MD Ashikur Rahman Puspo",
	"Puspo",
	"Backend Developer",
	"Backend Engineer",
	"Software Developer",
	"Spring Boot Developer",
	"Java Developer",
	"API Developer",
	"Full Stack Developer",
	"System Design",
	"Microservices",
	"MySQL",
	"Docker",
	"Kubernetes",
	"AWS",
	"Cloud Infrastructure",
	"Next.js Developer",
	"DevOps",
}

// Options are the per-page overrides; empty fields fall back to site defaults
type Options struct {
	Title       string
	Description string
	Image       string
	Path        string
	Keywords    []string
	Type        string
	NoIndex     bool
}

// Metadata is everything the page head renders
type Metadata struct {
	Title          string
	Description    string
	Keywords       []string
	Canonical      string
	SiteName       string
	Image          string
	ImageWidth     int
	ImageHeight    int
	Locale         string
	Type           string
	TwitterCard    string
	TwitterCreator string
	Author         string
	AuthorURL      string
	NoIndex        bool
}

// KeywordList joins keywords for the meta tag
func (m *Metadata) KeywordList() string {
	return strings.Join(m.Keywords, ", ")
}

type Builder struct {
	site config.SiteConfig
}

func NewBuilder(site config.SiteConfig) *Builder {
	return &Builder{site: site}
}

// SiteURL returns the canonical origin without a trailing slash
func (b *Builder) SiteURL() string {
	return b.site.URL
}

// AbsoluteURL resolves a site path against the canonical origin
func (b *Builder) AbsoluteURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path == "" || path == "/" {
		return b.site.URL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.site.URL + path
}

// Construct fills page metadata from opts and the site defaults
func (b *Builder) Construct(opts Options) *Metadata {
	title := b.site.Title
	if opts.Title != "" {
		title = opts.Title + " | " + b.site.Name
	}

	description := opts.Description
	if description == "" {
		description = b.site.Description
	}

	image := opts.Image
	if image == "" {
		image = b.site.Image
	}

	keywords := opts.Keywords
	if len(keywords) == 0 {
		keywords = defaultKeywords
	}

	pageType := opts.Type
	if pageType == "" {
		pageType = "website"
	}

	return &Metadata{
		Title:          title,
		Description:    description,
		Keywords:       keywords,
		Canonical:      b.AbsoluteURL(opts.Path),
		SiteName:       b.site.Name,
		Image:          b.AbsoluteURL(image),
		ImageWidth:     1200,
		ImageHeight:    630,
		Locale:         "en_US",
		Type:           pageType,
		TwitterCard:    "summary_large_image",
		TwitterCreator: b.site.TwitterHandle,
		Author:         b.site.Author,
		AuthorURL:      b.site.URL,
		NoIndex:        opts.NoIndex,
	}
}
