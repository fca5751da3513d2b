package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port     string
	Env      string
	AdminKey string

	Commerce CommerceConfig
	Blog     BlogConfig
	Redis    RedisConfig
	Form     FormConfig
	Video    VideoConfig
	Worker   WorkerConfig
}

// CommerceConfig contains credentials for the headless commerce read API.
type CommerceConfig struct {
	BaseURL string
	APIKey  string
	SiteID  string
}

// BlogConfig contains credentials for the blog/CMS read API. The blog lives
// on the same platform account, so the commerce credentials are reused when
// these are unset.
type BlogConfig struct {
	BaseURL string
	APIKey  string
	SiteID  string
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// FormConfig contains the third-party form-relay endpoint.
type FormConfig struct {
	RelayEndpoint string
}

// VideoConfig contains the social video feed settings.
type VideoConfig struct {
	Handle      string
	APIBaseURL  string
	AccessToken string
	ScrapeURL   string
}

// WorkerConfig contains interval configuration for background workers.
type WorkerConfig struct {
	RefreshInterval time.Duration
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.AdminKey = getEnv("ADMIN_KEY", "")

	// Commerce platform
	cfg.Commerce = CommerceConfig{
		BaseURL: getEnv("WIX_API_BASE_URL", ""),
		APIKey:  getEnv("WIX_API_KEY", ""),
		SiteID:  getEnv("WIX_SITE_ID", ""),
	}

	// Blog platform (falls back to the commerce credentials)
	cfg.Blog = BlogConfig{
		BaseURL: getEnv("BLOG_API_BASE_URL", cfg.Commerce.BaseURL),
		APIKey:  getEnv("BLOG_API_KEY", cfg.Commerce.APIKey),
		SiteID:  getEnv("BLOG_SITE_ID", cfg.Commerce.SiteID),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Form relay
	cfg.Form = FormConfig{
		RelayEndpoint: getEnv("FORM_RELAY_ENDPOINT", ""),
	}

	// Social video feed
	cfg.Video = VideoConfig{
		Handle:      getEnv("VIDEO_HANDLE", "velorajewelry"),
		APIBaseURL:  getEnv("VIDEO_API_BASE_URL", ""),
		AccessToken: getEnv("VIDEO_ACCESS_TOKEN", ""),
		ScrapeURL:   getEnv("VIDEO_SCRAPE_BASE_URL", ""),
	}

	// Workers (durations)
	var err error
	if cfg.Worker.RefreshInterval, err = parseDurationEnv("CATALOG_REFRESH_INTERVAL", "15m"); err != nil {
		return nil, fmt.Errorf("invalid CATALOG_REFRESH_INTERVAL: %w", err)
	}

	// Missing upstream credentials are a distinct, fatal-at-startup category;
	// keep the message concise and name the exact variables.
	if cfg.Commerce.APIKey == "" || cfg.Commerce.SiteID == "" {
		return nil, errors.New("commerce configuration incomplete: ensure WIX_API_KEY and WIX_SITE_ID are set")
	}
	if cfg.AdminKey == "" {
		return nil, errors.New("ADMIN_KEY must be set to protect the admin refresh endpoint")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
