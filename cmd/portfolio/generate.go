package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pacman-cli/portfolio/internal/content"
	"github.com/pacman-cli/portfolio/internal/repositories"
	"github.com/pacman-cli/portfolio/internal/seo"
	"github.com/pacman-cli/portfolio/internal/services"
	"github.com/pacman-cli/portfolio/pkg/config"
	"github.com/pacman-cli/portfolio/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write robots.txt and sitemap.xml for static hosting",
	Long: `Write robots.txt and sitemap.xml into the output directory.

The sitemap includes every project, every bundled post and every post the
blog API returns. An unreachable blog API only drops its posts.

Example:
  portfolio generate --out public`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateOut, "out", "public", "Output directory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.AppConfig

	posts, err := content.Posts()
	if err != nil {
		return errors.Wrap(err, "failed to load posts")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.GitHub.Timeout)*time.Second)
	defer cancel()
	feed := services.NewBlogFeedService(cfg.API.BlogAPIURL, time.Duration(cfg.GitHub.Timeout)*time.Second).GetBlogs(ctx)

	projects := repositories.NewStaticProjectRepository(content.Projects())
	blogs := repositories.NewStaticBlogRepository(posts)
	builder := seo.NewBuilder(cfg.Site)

	sitemap, err := seo.BuildSitemap(builder.SiteURL(), projects.GetAll(), blogs.GetAll(), feed, time.Now()).XML()
	if err != nil {
		return errors.Wrap(err, "failed to encode sitemap")
	}

	if err := os.MkdirAll(generateOut, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", generateOut)
	}

	files := map[string][]byte{
		"robots.txt":  []byte(seo.DefaultRobots(builder.SiteURL())),
		"sitemap.xml": sitemap,
	}
	for name, data := range files {
		path := filepath.Join(generateOut, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		logger.WithField("path", path).Info("Wrote file")
	}
	return nil
}
