package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string

	// UseDatabase selects the relational store as the read source for blog
	// posts and page content. When false, public reads come from the bundled
	// files under ContentDir; admin writes still go to the store.
	UseDatabase bool
	ContentDir  string

	AdminPasswordHash string
	SessionSecret     string

	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	LogLevel string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		UseDatabase:          getenv("USE_DATABASE", "true") == "true",
		ContentDir:           getenv("CONTENT_DIR", "content"),
		AdminPasswordHash:    mustGetenv("ADMIN_PASSWORD_HASH"),
		SessionSecret:        mustGetenv("SESSION_SECRET"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		LogLevel:             getenv("LOG_LEVEL", "info"),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
