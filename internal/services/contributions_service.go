package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/pkg/config"
)

// ContributionsService reads the public contribution calendar for the site owner
type ContributionsService struct {
	baseURL    string
	username   string
	httpClient *http.Client
}

func NewContributionsService(cfg config.GitHubConfig) *ContributionsService {
	return &ContributionsService{
		baseURL:    cfg.ContributionsURL,
		username:   cfg.Username,
		httpClient: &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
	}
}

// FetchContributions retrieves the last year of daily contribution counts, oldest day first
func (s *ContributionsService) FetchContributions(ctx context.Context) (*models.ContributionData, error) {
	endpoint := fmt.Sprintf("%s/v4/%s?y=last", s.baseURL, url.PathEscape(s.username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get contributions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contributions API returned status: %d", resp.StatusCode)
	}

	var data models.ContributionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode contributions: %w", err)
	}

	return &data, nil
}
