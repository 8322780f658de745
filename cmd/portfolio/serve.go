package main

import (
	"time"

	"github.com/pacman-cli/portfolio/internal/content"
	"github.com/pacman-cli/portfolio/internal/handlers"
	"github.com/pacman-cli/portfolio/internal/markdown"
	"github.com/pacman-cli/portfolio/internal/repositories"
	"github.com/pacman-cli/portfolio/internal/routes"
	"github.com/pacman-cli/portfolio/internal/seo"
	"github.com/pacman-cli/portfolio/internal/services"
	"github.com/pacman-cli/portfolio/pkg/config"
	"github.com/pacman-cli/portfolio/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio website",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default $PORT or 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.AppConfig
	port := cfg.Server.Port
	if servePort != "" {
		port = servePort
	}

	profile, err := content.Profile()
	if err != nil {
		return errors.Wrap(err, "failed to load profile")
	}
	posts, err := content.Posts()
	if err != nil {
		return errors.Wrap(err, "failed to load posts")
	}

	githubService, err := services.NewGitHubService(cfg.GitHub)
	if err != nil {
		return errors.Wrap(err, "failed to create GitHub client")
	}

	timeout := time.Duration(cfg.GitHub.Timeout) * time.Second
	feed := services.NewBlogFeedService(cfg.API.BlogAPIURL, timeout)
	activity := services.NewActivityService(services.NewContributionsService(cfg.GitHub), githubService)
	contact := services.NewContactService(cfg.EmailJS, time.Duration(cfg.Contact.ResetSeconds)*time.Second, timeout)
	if cfg.Security.UsesDefaultCSRFSecret() {
		logger.Warnf("CSRF_SECRET is not set, contact form tokens are signed with the default key")
	}
	if !contact.Configured() {
		logger.Warnf("EmailJS credentials missing, contact form submissions will fail")
	}

	builder := seo.NewBuilder(cfg.Site)
	page := handlers.NewPageRenderer(builder, profile)
	projects := repositories.NewStaticProjectRepository(content.Projects())
	blogs := repositories.NewStaticBlogRepository(posts)
	md := markdown.New()

	router, err := routes.Site(routes.SiteHandlers{
		Home:     handlers.NewHomeHandler(page, projects, blogs, feed, githubService, cfg.Site.ResumeURL),
		Projects: handlers.NewProjectHandler(page, projects, blogs, githubService, md),
		Blog:     handlers.NewBlogHandler(page, blogs, feed, md),
		Activity: handlers.NewActivityHandler(activity),
		Contact:  handlers.NewContactHandler(contact, time.Duration(cfg.Contact.ResetSeconds)*time.Second),
		SEO:      handlers.NewSEOHandler(builder, projects, blogs, feed),
		NotFound: handlers.NewNotFoundHandler(page),
	}, cfg.Security.CSRFSecret)
	if err != nil {
		return errors.Wrap(err, "failed to build router")
	}

	return listenAndServe(":"+port, router, cfg.Server)
}
