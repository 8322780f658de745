package main

import (
	"time"

	"github.com/pacman-cli/portfolio/internal/content"
	"github.com/pacman-cli/portfolio/internal/handlers"
	"github.com/pacman-cli/portfolio/internal/repositories"
	"github.com/pacman-cli/portfolio/internal/routes"
	"github.com/pacman-cli/portfolio/internal/services"
	"github.com/pacman-cli/portfolio/pkg/config"
	"github.com/pacman-cli/portfolio/pkg/database"
	"github.com/pacman-cli/portfolio/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	apiPort string
	apiSeed bool
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the companion blog, project and contact API",
	RunE:  runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)
	apiCmd.Flags().StringVar(&apiPort, "port", "", "Port to listen on (default $API_PORT or 8082)")
	apiCmd.Flags().BoolVar(&apiSeed, "seed", true, "Insert the bundled blog posts that are not stored yet")
}

func runAPI(cmd *cobra.Command, args []string) error {
	cfg := config.AppConfig
	port := cfg.API.Port
	if apiPort != "" {
		port = apiPort
	}

	if err := database.Init(cfg.Database.Path); err != nil {
		return errors.Wrap(err, "failed to initialize database")
	}
	defer database.Close()

	blogService := services.NewBlogService(repositories.NewBlogRepository(database.DB))
	if apiSeed {
		seed, err := content.SeedPosts()
		if err != nil {
			return errors.Wrap(err, "failed to load seed posts")
		}
		if _, err := blogService.SeedBlogs(seed); err != nil {
			return errors.Wrap(err, "failed to seed blogs")
		}
	}

	if cfg.Resend.APIKey == "" || cfg.Resend.Recipient == "" {
		logger.Warnf("Resend is not configured, contact messages will fail to send")
	}
	if cfg.Security.AdminToken == "" {
		logger.Warnf("ADMIN_TOKEN is empty, write endpoints are disabled")
	}

	notifier := services.NewResendService(cfg.Resend, time.Duration(cfg.GitHub.Timeout)*time.Second)
	handler := handlers.NewAPIHandler(
		blogService,
		services.NewProjectEntryService(repositories.NewProjectEntryRepository(database.DB)),
		services.NewContactMessageService(repositories.NewContactMessageRepository(database.DB), notifier),
	)

	return listenAndServe(":"+port, routes.API(handler, cfg.Security.AdminToken), cfg.Server)
}
