package models

import "time"

// GithubProfile is the subset of a GitHub user shown on the site
type GithubProfile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// GithubRepo is a public repository fetched at render time, never persisted
type GithubRepo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Language        string    `json:"language"`
	UpdatedAt       time.Time `json:"updated_at"`
	Topics          []string  `json:"topics"`
	Homepage        string    `json:"homepage"`
	Fork            bool      `json:"fork"`
}

// RepoBadge holds the stats shown next to a project's source link
type RepoBadge struct {
	Owner     string
	Name      string
	URL       string
	Stars     int
	Forks     int
	UpdatedAt time.Time
}
