package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	API      APIConfig
	Site     SiteConfig
	GitHub   GitHubConfig
	EmailJS  EmailJSConfig
	Contact  ContactConfig
	Resend   ResendConfig
	Database DatabaseConfig
	Security SecurityConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

// APIConfig configures the companion blog/contact API.
type APIConfig struct {
	Port       string
	BlogAPIURL string
}

type SiteConfig struct {
	URL           string
	Name          string
	Author        string
	Title         string
	Description   string
	Image         string
	TwitterHandle string
	ResumeURL     string
}

type GitHubConfig struct {
	Username         string
	Token            string
	APIBaseURL       string
	ContributionsURL string
	Timeout          int
}

type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	APIURL     string
}

type ContactConfig struct {
	ResetSeconds int
}

type ResendConfig struct {
	APIKey    string
	APIURL    string
	From      string
	Recipient string
}

type DatabaseConfig struct {
	Path string
}

// DefaultCSRFSecret is only meant for local development
const DefaultCSRFSecret = "default-secret-key"

type SecurityConfig struct {
	CSRFSecret string
	AdminToken string
}

// UsesDefaultCSRFSecret reports whether CSRF tokens are signed with the public default key
func (s SecurityConfig) UsesDefaultCSRFSecret() bool {
	return s.CSRFSecret == "" || s.CSRFSecret == DefaultCSRFSecret
}

type LogConfig struct {
	Level string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			Mode:         v.GetString("GIN_MODE"),
			ReadTimeout:  v.GetInt("READ_TIMEOUT"),
			WriteTimeout: v.GetInt("WRITE_TIMEOUT"),
		},
		API: APIConfig{
			Port:       v.GetString("API_PORT"),
			BlogAPIURL: strings.TrimRight(v.GetString("BLOG_API_URL"), "/"),
		},
		Site: SiteConfig{
			URL:           strings.TrimRight(v.GetString("SITE_URL"), "/"),
			Name:          v.GetString("SITE_NAME"),
			Author:        v.GetString("SITE_AUTHOR"),
			Title:         v.GetString("SITE_TITLE"),
			Description:   v.GetString("SITE_DESCRIPTION"),
			Image:         v.GetString("SITE_IMAGE"),
			TwitterHandle: v.GetString("TWITTER_HANDLE"),
			ResumeURL:     v.GetString("RESUME_URL"),
		},
		GitHub: GitHubConfig{
			Username:         v.GetString("GITHUB_USERNAME"),
			Token:            v.GetString("GITHUB_TOKEN"),
			APIBaseURL:       v.GetString("GITHUB_API_URL"),
			ContributionsURL: strings.TrimRight(v.GetString("CONTRIBUTIONS_API_URL"), "/"),
			Timeout:          v.GetInt("HTTP_TIMEOUT"),
		},
		EmailJS: EmailJSConfig{
			ServiceID:  v.GetString("EMAILJS_SERVICE_ID"),
			TemplateID: v.GetString("EMAILJS_TEMPLATE_ID"),
			PublicKey:  v.GetString("EMAILJS_PUBLIC_KEY"),
			APIURL:     strings.TrimRight(v.GetString("EMAILJS_API_URL"), "/"),
		},
		Contact: ContactConfig{
			ResetSeconds: v.GetInt("CONTACT_RESET_SECONDS"),
		},
		Resend: ResendConfig{
			APIKey:    v.GetString("RESEND_API_KEY"),
			APIURL:    strings.TrimRight(v.GetString("RESEND_API_URL"), "/"),
			From:      v.GetString("CONTACT_FROM"),
			Recipient: v.GetString("CONTACT_RECIPIENT"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("DB_PATH"),
		},
		Security: SecurityConfig{
			CSRFSecret: v.GetString("CSRF_SECRET"),
			AdminToken: v.GetString("ADMIN_TOKEN"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("READ_TIMEOUT", 15)
	v.SetDefault("WRITE_TIMEOUT", 15)

	v.SetDefault("API_PORT", "8082")
	v.SetDefault("BLOG_API_URL", "http://localhost:8082")

	v.SetDefault("SITE_URL", "https://puspo.online")
	v.SetDefault("SITE_NAME", "MD Ashikur Rahman Puspo")
	v.SetDefault("SITE_AUTHOR", "MD Ashikur Rahman Puspo")
	v.SetDefault("SITE_TITLE", "MD Ashikur Rahman Puspo | Backend Developer")
	v.SetDefault("SITE_DESCRIPTION", "Experienced Backend Engineer specializing in Spring Boot, Java, MySQL, Docker, and scalable Cloud Infrastructure. Building production-grade APIs and microservices.")
	v.SetDefault("SITE_IMAGE", "/static/img/og.svg")
	v.SetDefault("TWITTER_HANDLE", "@iam_puspo")

	v.SetDefault("GITHUB_USERNAME", "pacman-cli")
	v.SetDefault("GITHUB_API_URL", "https://api.github.com/")
	v.SetDefault("CONTRIBUTIONS_API_URL", "https://github-contributions-api.jogruber.de")
	v.SetDefault("HTTP_TIMEOUT", 10)

	v.SetDefault("EMAILJS_API_URL", "https://api.emailjs.com")
	v.SetDefault("CONTACT_RESET_SECONDS", 3)

	v.SetDefault("RESEND_API_URL", "https://api.resend.com")
	v.SetDefault("CONTACT_FROM", "onboarding@resend.dev")

	v.SetDefault("DB_PATH", "./portfolio.db")
	v.SetDefault("CSRF_SECRET", DefaultCSRFSecret)
	v.SetDefault("LOG_LEVEL", "info")
}
