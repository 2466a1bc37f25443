package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. cmd/server loads
// a local .env file first (godotenv), so these names double as the .env keys.
//
//	ADDRESS                 HTTP bind address (e.g. ":8080")
//	DATABASE_DSN            PostgreSQL DSN
//	SECRET_KEY              HMAC secret for access tokens
//	ACCESS_TOKEN_VALIDITY   token lifetime in time.ParseDuration format
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok && v != "" {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_VALIDITY"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
}
