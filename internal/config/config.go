package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	// Server
	ServerAddr string
	ServerPort int

	// Database
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Sessions
	SessionTTL    time.Duration
	SweepInterval time.Duration

	// Cookies
	CookieSecure bool
	CookieDomain string

	// Tenant resolution
	LoopbackHosts          []string
	TrustTenantHeader      bool
	TenantUnresolvedPolicy string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr: getEnv("SERVER_ADDR", "0.0.0.0"),
		ServerPort: getEnvInt("SERVER_PORT", 8080),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "orgable"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SessionTTL:    getEnvDuration("SESSION_TTL", 30*24*time.Hour),
		SweepInterval: getEnvDuration("SWEEP_INTERVAL", time.Hour),

		CookieSecure: getEnvBool("COOKIE_SECURE", false),
		CookieDomain: getEnv("COOKIE_DOMAIN", ""),

		LoopbackHosts:          getEnvList("LOOPBACK_HOSTS", []string{"localhost", "127.0.0.1"}),
		TrustTenantHeader:      getEnvBool("TRUST_TENANT_HEADER", false),
		TenantUnresolvedPolicy: getEnv("TENANT_UNRESOLVED_POLICY", "reject"),
	}

	switch cfg.TenantUnresolvedPolicy {
	case "reject", "not_found":
	default:
		return nil, fmt.Errorf("TENANT_UNRESOLVED_POLICY must be %q or %q, got %q",
			"reject", "not_found", cfg.TenantUnresolvedPolicy)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
