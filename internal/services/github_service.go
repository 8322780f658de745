package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/pkg/config"
	"github.com/pacman-cli/portfolio/pkg/logger"
	"golang.org/x/oauth2"
)

// ErrInvalidRepoURL is returned when a URL does not point at a GitHub repository
var ErrInvalidRepoURL = errors.New("not a GitHub repository URL")

// GitHubService reads public profile and repository data for the site owner
type GitHubService struct {
	client   *github.Client
	username string
}

func NewGitHubService(cfg config.GitHubConfig) (*GitHubService, error) {
	httpClient := &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}

	// Unauthenticated unless a token is configured
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(ctx, tokenSource)
		httpClient.Timeout = time.Duration(cfg.Timeout) * time.Second
	}

	client := github.NewClient(httpClient)
	if cfg.APIBaseURL != "" {
		baseURL := cfg.APIBaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL: %w", err)
		}
		client.BaseURL = parsed
	}

	return &GitHubService{
		client:   client,
		username: cfg.Username,
	}, nil
}

// FetchProfile retrieves the configured user's public profile
func (s *GitHubService) FetchProfile(ctx context.Context) (*models.GithubProfile, error) {
	user, _, err := s.client.Users.Get(ctx, s.username)
	if err != nil {
		return nil, fmt.Errorf("failed to get GitHub profile: %w", err)
	}

	return &models.GithubProfile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		HTMLURL:     user.GetHTMLURL(),
		Bio:         user.GetBio(),
		Location:    user.GetLocation(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
	}, nil
}

// GetProfile returns the profile, or nil when GitHub cannot be reached
func (s *GitHubService) GetProfile(ctx context.Context) *models.GithubProfile {
	profile, err := s.FetchProfile(ctx)
	if err != nil {
		logger.WithError(err).WithField("username", s.username).Warn("GitHub profile unavailable")
		return nil
	}
	return profile
}

// FetchRepos retrieves up to 100 public repositories, most recently updated first
func (s *GitHubService) FetchRepos(ctx context.Context) ([]models.GithubRepo, error) {
	opts := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	repos, _, err := s.client.Repositories.List(ctx, s.username, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list GitHub repositories: %w", err)
	}

	result := make([]models.GithubRepo, 0, len(repos))
	for _, repo := range repos {
		result = append(result, models.GithubRepo{
			ID:              repo.GetID(),
			Name:            repo.GetName(),
			HTMLURL:         repo.GetHTMLURL(),
			Description:     repo.GetDescription(),
			StargazersCount: repo.GetStargazersCount(),
			ForksCount:      repo.GetForksCount(),
			Language:        repo.GetLanguage(),
			UpdatedAt:       repo.GetUpdatedAt().Time,
			Topics:          repo.Topics,
			Homepage:        repo.GetHomepage(),
			Fork:            repo.GetFork(),
		})
	}
	return result, nil
}

// GetRepos returns the user's own repositories (forks excluded), or an empty
// list when GitHub cannot be reached
func (s *GitHubService) GetRepos(ctx context.Context) []models.GithubRepo {
	repos, err := s.FetchRepos(ctx)
	if err != nil {
		logger.WithError(err).WithField("username", s.username).Warn("GitHub repositories unavailable")
		return []models.GithubRepo{}
	}

	own := make([]models.GithubRepo, 0, len(repos))
	for _, repo := range repos {
		if !repo.Fork {
			own = append(own, repo)
		}
	}
	return own
}

// FindRepoBadge looks up the stats for the repository a project links to.
// It returns nil when the URL is not a GitHub repository or no repository matches.
func (s *GitHubService) FindRepoBadge(ctx context.Context, repoURL string) *models.RepoBadge {
	owner, name, err := ParseRepoURL(repoURL)
	if err != nil {
		return nil
	}

	for _, repo := range s.GetRepos(ctx) {
		if strings.EqualFold(repo.Name, name) {
			return &models.RepoBadge{
				Owner:     owner,
				Name:      repo.Name,
				URL:       repo.HTMLURL,
				Stars:     repo.StargazersCount,
				Forks:     repo.ForksCount,
				UpdatedAt: repo.UpdatedAt,
			}
		}
	}
	return nil
}

// TechStackFromRepos returns the distinct repository languages in first-seen order
func TechStackFromRepos(repos []models.GithubRepo) []string {
	seen := make(map[string]bool)
	var languages []string
	for _, repo := range repos {
		if repo.Language == "" || seen[repo.Language] {
			continue
		}
		seen[repo.Language] = true
		languages = append(languages, repo.Language)
	}
	return languages
}

// ParseRepoURL extracts owner and repository name from a github.com URL
func ParseRepoURL(raw string) (string, string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", ErrInvalidRepoURL
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if host != "github.com" {
		return "", "", ErrInvalidRepoURL
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidRepoURL
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
