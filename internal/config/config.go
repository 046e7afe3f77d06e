package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime configuration sourced from env vars. Everything is
// read once at process start; there is no hot reload.
type Config struct {
	Port        string
	DatabaseURL string
	CORSOrigins []string
	BcryptCost  int
}

// Load reads configuration from the environment and performs minimal
// validation. DATABASE_URL takes precedence; otherwise the URL is composed
// from the DB_HOST/DB_PORT/DB_USER/DB_PASS/DB_NAME parts.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "3000"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		BcryptCost:  bcrypt.DefaultCost,
	}

	if cost, err := strconv.Atoi(fallback(os.Getenv("BCRYPT_COST"), "")); err == nil && cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		cfg.BcryptCost = cost
	}

	if cfg.DatabaseURL == "" {
		user := strings.TrimSpace(os.Getenv("DB_USER"))
		name := strings.TrimSpace(os.Getenv("DB_NAME"))
		if user == "" || name == "" {
			return Config{}, errors.New("DATABASE_URL or DB_USER and DB_NAME are required")
		}
		cfg.DatabaseURL = composeDatabaseURL(
			fallback(os.Getenv("DB_HOST"), "localhost"),
			fallback(os.Getenv("DB_PORT"), "5432"),
			user,
			os.Getenv("DB_PASS"),
			name,
		)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func composeDatabaseURL(host, port, user, pass, name string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pass),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
