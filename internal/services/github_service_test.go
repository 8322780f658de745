package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGitHubService(t *testing.T, handler http.Handler) *GitHubService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	service, err := NewGitHubService(config.GitHubConfig{
		Username:   "pacman-cli",
		APIBaseURL: server.URL,
		Timeout:    5,
	})
	require.NoError(t, err)
	return service
}

const reposJSON = `[
	{"id": 1, "name": "TakaTrack", "html_url": "https://github.com/pacman-cli/TakaTrack", "language": "Java", "stargazers_count": 12, "forks_count": 3, "updated_at": "2025-05-01T10:00:00Z", "fork": false},
	{"id": 2, "name": "forked-lib", "html_url": "https://github.com/pacman-cli/forked-lib", "language": "Rust", "fork": true},
	{"id": 3, "name": "portfolio", "html_url": "https://github.com/pacman-cli/portfolio", "language": "TypeScript", "stargazers_count": 4, "updated_at": "2025-04-01T10:00:00Z", "fork": false},
	{"id": 4, "name": "notes", "html_url": "https://github.com/pacman-cli/notes", "language": null, "fork": false},
	{"id": 5, "name": "spring-demo", "html_url": "https://github.com/pacman-cli/spring-demo", "language": "Java", "fork": false}
]`

func githubMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/pacman-cli", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"login": "pacman-cli", "name": "Puspo", "followers": 42, "public_repos": 30}`))
	})
	mux.HandleFunc("/users/pacman-cli/repos", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sort") != "updated" || r.URL.Query().Get("per_page") != "100" {
			http.Error(w, "unexpected query", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reposJSON))
	})
	return mux
}

func TestGitHubServiceProfile(t *testing.T) {
	service := newTestGitHubService(t, githubMux())

	profile, err := service.FetchProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pacman-cli", profile.Login)
	assert.Equal(t, 42, profile.Followers)
	assert.Equal(t, 30, profile.PublicRepos)
}

func TestGitHubServiceProfileFailure(t *testing.T) {
	service := newTestGitHubService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "API rate limit exceeded"}`, http.StatusForbidden)
	}))

	_, err := service.FetchProfile(context.Background())
	assert.Error(t, err)
	assert.Nil(t, service.GetProfile(context.Background()))
	assert.Empty(t, service.GetRepos(context.Background()))
}

func TestGitHubServiceRepos(t *testing.T) {
	service := newTestGitHubService(t, githubMux())

	repos := service.GetRepos(context.Background())
	require.Len(t, repos, 4)
	for _, repo := range repos {
		assert.False(t, repo.Fork)
	}
	assert.Equal(t, "TakaTrack", repos[0].Name)
	assert.Equal(t, 12, repos[0].StargazersCount)

	assert.Equal(t, []string{"Java", "TypeScript"}, TechStackFromRepos(repos))
}

func TestFindRepoBadge(t *testing.T) {
	service := newTestGitHubService(t, githubMux())
	ctx := context.Background()

	badge := service.FindRepoBadge(ctx, "https://github.com/pacman-cli/takatrack")
	require.NotNil(t, badge)
	assert.Equal(t, "pacman-cli", badge.Owner)
	assert.Equal(t, "TakaTrack", badge.Name)
	assert.Equal(t, 12, badge.Stars)
	assert.Equal(t, 3, badge.Forks)

	assert.Nil(t, service.FindRepoBadge(ctx, "https://github.com/pacman-cli/unknown"))
	assert.Nil(t, service.FindRepoBadge(ctx, "https://gitlab.com/pacman-cli/takatrack"))
}

func TestParseRepoURL(t *testing.T) {
	testCases := []struct {
		url   string
		owner string
		name  string
		err   bool
	}{
		{"https://github.com/pacman-cli/TakaTrack", "pacman-cli", "TakaTrack", false},
		{"https://www.github.com/pacman-cli/portfolio/", "pacman-cli", "portfolio", false},
		{"https://github.com/pacman-cli/portfolio.git", "pacman-cli", "portfolio", false},
		{"https://github.com/pacman-cli/portfolio/tree/main", "pacman-cli", "portfolio", false},
		{"https://github.com/pacman-cli", "", "", true},
		{"https://example.com/a/b", "", "", true},
		{"", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			owner, name, err := ParseRepoURL(tc.url)
			if tc.err {
				assert.ErrorIs(t, err, ErrInvalidRepoURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.owner, owner)
			assert.Equal(t, tc.name, name)
		})
	}
}

func TestTechStackFromRepos(t *testing.T) {
	repos := []models.GithubRepo{
		{Language: "Go"}, {Language: ""}, {Language: "Java"}, {Language: "Go"},
	}
	assert.Equal(t, []string{"Go", "Java"}, TechStackFromRepos(repos))
	assert.Empty(t, TechStackFromRepos(nil))
}
