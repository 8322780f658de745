// Package content holds the site's build-time data: blog posts as markdown
// files with YAML front matter, the owner's profile, and the project list.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/pacman-cli/portfolio/internal/models"
)

//go:embed posts/*.md
var postsFS embed.FS

//go:embed seed/*.md
var seedFS embed.FS

//go:embed profile.yaml
var profileYAML []byte

type postMeta struct {
	ID          int64  `yaml:"id"`
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug"`
	Excerpt     string `yaml:"excerpt"`
	Tags        string `yaml:"tags"`
	Category    string `yaml:"category"`
	PublishedAt string `yaml:"publishedAt"`
	ExternalURL string `yaml:"externalUrl"`
	ImageURL    string `yaml:"imageUrl"`
}

// Posts returns the statically defined blog posts, newest first
func Posts() ([]models.Blog, error) {
	return loadPosts(postsFS, "posts")
}

// SeedPosts returns the posts the blog API seeds into an empty database
func SeedPosts() ([]models.Blog, error) {
	return loadPosts(seedFS, "seed")
}

func loadPosts(fsys fs.FS, dir string) ([]models.Blog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var blogs []models.Blog
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		blog, err := ParsePost(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}
		if blog.Slug == "" {
			blog.Slug = strings.TrimSuffix(entry.Name(), ".md")
		}
		blogs = append(blogs, *blog)
	}

	sort.SliceStable(blogs, func(i, j int) bool {
		return blogs[i].PublishedAt.After(blogs[j].PublishedAt)
	})
	return blogs, nil
}

// ParsePost turns a markdown document with front matter into a Blog
func ParsePost(data []byte) (*models.Blog, error) {
	var meta postMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, err
	}
	if meta.Title == "" {
		return nil, fmt.Errorf("missing title")
	}

	publishedAt, err := parseDate(meta.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid publishedAt %q: %w", meta.PublishedAt, err)
	}

	return &models.Blog{
		ID:          meta.ID,
		Title:       meta.Title,
		Slug:        meta.Slug,
		Excerpt:     meta.Excerpt,
		Content:     strings.TrimSpace(string(body)),
		Tags:        meta.Tags,
		Category:    meta.Category,
		PublishedAt: publishedAt,
		ExternalURL: meta.ExternalURL,
		ImageURL:    meta.ImageURL,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// Profile parses the embedded profile document
func Profile() (*models.Profile, error) {
	var profile models.Profile
	if err := yaml.Unmarshal(profileYAML, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}
