package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr           string
	DBPath         string
	JWTSecret      string
	TokenTTL       time.Duration
	GithubClientID string
	GithubSecret   string
	RateLimits     RateLimits
}

type RateLimits struct {
	RegisterPerMinute int
	PostPerMinute     int
	CommentPerMinute  int
}

func Load() Config {
	addr := envString("DEVLINK_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}
	return Config{
		Addr:      addr,
		DBPath:    envString("DEVLINK_DB", "devlink.db"),
		JWTSecret: envString("DEVLINK_JWT_SECRET", "dev-jwt-secret"),
		// The issued tokens are long-lived on purpose; clients have no
		// refresh flow.
		TokenTTL:       envDuration("DEVLINK_TOKEN_TTL", 100*time.Hour),
		GithubClientID: envString("DEVLINK_GITHUB_CLIENT_ID", ""),
		GithubSecret:   envString("DEVLINK_GITHUB_SECRET", ""),
		RateLimits: RateLimits{
			RegisterPerMinute: envInt("DEVLINK_RL_REGISTER_PER_MIN", 10),
			PostPerMinute:     envInt("DEVLINK_RL_POST_PER_MIN", 30),
			CommentPerMinute:  envInt("DEVLINK_RL_COMMENT_PER_MIN", 60),
		},
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
