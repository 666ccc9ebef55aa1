package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	ServerPort      string        `yaml:"server_port"`
	DatabaseType    string        `yaml:"database_type"` // sqlite (default), postgres, mysql
	DatabasePath    string        `yaml:"database_path"` // sqlite only
	DatabaseURL     string        `yaml:"database_url"`  // postgres/mysql DSN
	MigrationsPath  string        `yaml:"migrations_path"`
	SessionDuration time.Duration `yaml:"session_duration"`
	SessionSecret   string        `yaml:"session_secret"` // HMAC key for CSRF tokens
	DefaultLocale   string        `yaml:"default_locale"`

	// Login rate limiting
	LoginRateLimit  int           `yaml:"login_rate_limit"`
	LoginRateWindow time.Duration `yaml:"login_rate_window"`

	// Email notifications (Amazon SES); disabled when FromEmail is empty
	AWSRegion    string `yaml:"aws_region"`
	SESFromEmail string `yaml:"ses_from_email"`
	SESFromName  string `yaml:"ses_from_name"`
	AppBaseURL   string `yaml:"app_base_url"`

	// OAuth providers; a provider with an empty client ID is disabled
	OAuthRedirectBaseURL string `yaml:"oauth_redirect_base_url"`
	GoogleClientID       string `yaml:"google_client_id"`
	GoogleClientSecret   string `yaml:"google_client_secret"`
	FacebookClientID     string `yaml:"facebook_client_id"`
	FacebookClientSecret string `yaml:"facebook_client_secret"`
	AppleClientID        string `yaml:"apple_client_id"`
	AppleTeamID          string `yaml:"apple_team_id"`
	AppleKeyID           string `yaml:"apple_key_id"`
	ApplePrivateKey      string `yaml:"apple_private_key"`
}

// Load reads configuration from the environment with sensible
// defaults. A .env file is applied first if present, then an optional
// YAML file named by CONFIG_FILE, then environment variables override
// both.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := &Config{
		ServerPort:      "8080",
		DatabaseType:    "sqlite",
		DatabasePath:    "./yamsoo.db",
		MigrationsPath:  "./migrations",
		SessionDuration: 24 * time.Hour,
		SessionSecret:   "yamsoo-dev-secret",
		DefaultLocale:   "en",
		LoginRateLimit:  10,
		LoginRateWindow: time.Minute,
		AWSRegion:       "eu-west-1",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			log.Fatalf("Failed to load config file %s: %v", path, err)
		}
	}

	cfg.applyEnv()
	return cfg
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ServerPort = getEnv("PORT", c.ServerPort)
	c.DatabaseType = getEnv("DB_TYPE", c.DatabaseType)
	c.DatabasePath = getEnv("DB_PATH", c.DatabasePath)
	c.DatabaseURL = getEnv("DB_URL", c.DatabaseURL)
	c.MigrationsPath = getEnv("MIGRATIONS_PATH", c.MigrationsPath)
	c.SessionSecret = getEnv("SESSION_SECRET", c.SessionSecret)
	c.DefaultLocale = getEnv("DEFAULT_LOCALE", c.DefaultLocale)
	c.SessionDuration = getEnvDuration("SESSION_DURATION", c.SessionDuration)
	c.LoginRateLimit = getEnvInt("LOGIN_RATE_LIMIT", c.LoginRateLimit)
	c.LoginRateWindow = getEnvDuration("LOGIN_RATE_WINDOW", c.LoginRateWindow)

	c.AWSRegion = getEnv("AWS_REGION", c.AWSRegion)
	c.SESFromEmail = getEnv("SES_FROM_EMAIL", c.SESFromEmail)
	c.SESFromName = getEnv("SES_FROM_NAME", c.SESFromName)
	c.AppBaseURL = getEnv("APP_BASE_URL", c.AppBaseURL)

	c.OAuthRedirectBaseURL = getEnv("OAUTH_REDIRECT_BASE_URL", c.OAuthRedirectBaseURL)
	c.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", c.GoogleClientID)
	c.GoogleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", c.GoogleClientSecret)
	c.FacebookClientID = getEnv("FACEBOOK_CLIENT_ID", c.FacebookClientID)
	c.FacebookClientSecret = getEnv("FACEBOOK_CLIENT_SECRET", c.FacebookClientSecret)
	c.AppleClientID = getEnv("APPLE_CLIENT_ID", c.AppleClientID)
	c.AppleTeamID = getEnv("APPLE_TEAM_ID", c.AppleTeamID)
	c.AppleKeyID = getEnv("APPLE_KEY_ID", c.AppleKeyID)
	c.ApplePrivateKey = getEnv("APPLE_PRIVATE_KEY", c.ApplePrivateKey)
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid value for %s: %q, using default", key, value)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid value for %s: %q, using default", key, value)
		return defaultValue
	}
	return d
}
