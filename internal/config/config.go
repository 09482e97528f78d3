package config

import (
	"os"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatabaseType    string
	DatabasePath    string
	DatabaseURL     string
	SessionDuration time.Duration
	SessionSecret   string
	UploadMaxSize   int64
	UploadBaseURL   string
	UploadsPath     string
	StaticFilesPath string
	TemplatesPath   string
	MigrationsPath  string

	// Backblaze B2 upload backend; local disk is used when unset.
	B2KeyID  string
	B2AppKey string
	B2Bucket string

	// Password reset email via SES.
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string

	// OAuth login for staff accounts.
	GoogleClientID       string
	GoogleClientSecret   string
	FacebookClientID     string
	FacebookClientSecret string
	OAuthRedirectBaseURL string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./smartread.db"),
		DatabaseURL:     os.Getenv("DB_URL"),
		SessionDuration: 24 * time.Hour,
		SessionSecret:   getEnv("SESSION_SECRET", "smartread-dev-secret"),
		UploadMaxSize:   10 * 1024 * 1024, // 10MB
		UploadBaseURL:   getEnv("UPLOAD_BASE_URL", "/static"),
		UploadsPath:     getEnv("UPLOADS_PATH", "./static/uploads"),
		StaticFilesPath: getEnv("STATIC_PATH", "./static"),
		TemplatesPath:   getEnv("TEMPLATES_PATH", "./templates"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),

		B2KeyID:  os.Getenv("B2_KEY_ID"),
		B2AppKey: os.Getenv("B2_APP_KEY"),
		B2Bucket: os.Getenv("B2_BUCKET"),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail: os.Getenv("SES_FROM_EMAIL"),
		SESFromName:  getEnv("SES_FROM_NAME", "SmartRead"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),

		GoogleClientID:       os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:   os.Getenv("GOOGLE_CLIENT_SECRET"),
		FacebookClientID:     os.Getenv("FACEBOOK_CLIENT_ID"),
		FacebookClientSecret: os.Getenv("FACEBOOK_CLIENT_SECRET"),
		OAuthRedirectBaseURL: os.Getenv("OAUTH_REDIRECT_BASE_URL"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
