package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GITHUB_USERNAME", "")
	t.Setenv("EMAILJS_SERVICE_ID", "")

	require.NoError(t, Load())

	assert.Equal(t, "8080", AppConfig.Server.Port)
	assert.Equal(t, 15, AppConfig.Server.ReadTimeout)
	assert.Equal(t, "pacman-cli", AppConfig.GitHub.Username)
	assert.Equal(t, "https://api.github.com/", AppConfig.GitHub.APIBaseURL)
	assert.Equal(t, "https://github-contributions-api.jogruber.de", AppConfig.GitHub.ContributionsURL)
	assert.Equal(t, 3, AppConfig.Contact.ResetSeconds)
	assert.Empty(t, AppConfig.EmailJS.ServiceID)
	assert.Equal(t, "https://puspo.online", AppConfig.Site.URL)
	assert.True(t, AppConfig.Security.UsesDefaultCSRFSecret())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SITE_URL", "https://example.com/")
	t.Setenv("EMAILJS_SERVICE_ID", "service_abc")
	t.Setenv("CONTACT_RESET_SECONDS", "5")
	t.Setenv("BLOG_API_URL", "http://backend:8080/")

	require.NoError(t, Load())

	assert.Equal(t, "9090", AppConfig.Server.Port)
	assert.Equal(t, "https://example.com", AppConfig.Site.URL, "trailing slash should be trimmed")
	assert.Equal(t, "service_abc", AppConfig.EmailJS.ServiceID)
	assert.Equal(t, 5, AppConfig.Contact.ResetSeconds)
	assert.Equal(t, "http://backend:8080", AppConfig.API.BlogAPIURL)
}

func TestUsesDefaultCSRFSecret(t *testing.T) {
	assert.True(t, SecurityConfig{}.UsesDefaultCSRFSecret())
	assert.True(t, SecurityConfig{CSRFSecret: DefaultCSRFSecret}.UsesDefaultCSRFSecret())
	assert.False(t, SecurityConfig{CSRFSecret: "s3cret"}.UsesDefaultCSRFSecret())

	t.Setenv("CSRF_SECRET", "from-env")
	require.NoError(t, Load())
	assert.False(t, AppConfig.Security.UsesDefaultCSRFSecret())
}
