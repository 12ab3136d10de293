package config

import (
	"fmt"
	"os"
	"strings"
)

// Database holds the connection settings shared by the API and seed processes.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// API is the configuration for the API process.
type API struct {
	Port               string
	Database           Database
	Auth0IssuerBaseURL string
	Auth0Audience      string
	CORSAllowedOrigins []string
}

// Web is the configuration for the web client process.
type Web struct {
	Port               string
	BaseURL            string
	Auth0IssuerBaseURL string
	Auth0ClientID      string
	Auth0ClientSecret  string
	SessionSecret      string
	APIBaseURL         string
	Auth0Audience      string
	LoginScopes        []string
}

func loadDatabase(missing *[]string) Database {
	return Database{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     requireEnv("DB_USER", missing),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     requireEnv("DB_NAME", missing),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// LoadDatabase reads the database settings from the environment.
func LoadDatabase() (*Database, error) {
	var missing []string
	cfg := loadDatabase(&missing)
	if len(missing) > 0 {
		return nil, missingError(missing)
	}
	return &cfg, nil
}

// LoadAPI reads the API configuration from the environment, failing with a
// single error that names every missing required variable.
func LoadAPI() (*API, error) {
	var missing []string
	cfg := &API{
		Port:               getEnv("PORT", "3001"),
		Database:           loadDatabase(&missing),
		Auth0IssuerBaseURL: requireEnv("AUTH0_API_ISSUER_BASE_URL", &missing),
		Auth0Audience:      requireEnv("AUTH0_API_AUDIENCE", &missing),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}
	if len(missing) > 0 {
		return nil, missingError(missing)
	}
	return cfg, nil
}

// LoadWeb reads the web client configuration from the environment.
func LoadWeb() (*Web, error) {
	var missing []string
	cfg := &Web{
		Port:               getEnv("PORT", "3000"),
		BaseURL:            requireEnv("APP_BASE_URL", &missing),
		Auth0IssuerBaseURL: requireEnv("AUTH0_ISSUER_BASE_URL", &missing),
		Auth0ClientID:      requireEnv("AUTH0_CLIENT_ID", &missing),
		Auth0ClientSecret:  requireEnv("AUTH0_CLIENT_SECRET", &missing),
		SessionSecret:      requireEnv("AUTH0_SECRET", &missing),
		APIBaseURL:         getEnv("API_BASE_URL", "http://localhost:3001"),
		Auth0Audience:      requireEnv("AUTH0_API_AUDIENCE", &missing),
		LoginScopes:        strings.Fields(getEnv("AUTH0_LOGIN_SCOPES", "openid profile email offline_access")),
	}
	if len(missing) > 0 {
		return nil, missingError(missing)
	}
	return cfg, nil
}

func (d *Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func requireEnv(key string, missing *[]string) string {
	value := os.Getenv(key)
	if value == "" {
		*missing = append(*missing, key)
	}
	return value
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func missingError(missing []string) error {
	return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
}
