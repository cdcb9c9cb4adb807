package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	pstrings "esaj/pkg/platform/strings"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr               string
	Source             string
	LogLevel           slog.Level
	LogFormat          string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
}

const (
	defaultAddr            = ":8080"
	defaultSource          = "render"
	defaultRequestTimeout  = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
// PORT is injected by hosting platforms and wins over ESAJ_ADDR.
func FromEnv() Server {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Server {
	addr := getenv("ESAJ_ADDR")
	if addr == "" {
		addr = defaultAddr
	}
	if port := strings.TrimSpace(getenv("PORT")); port != "" {
		addr = ":" + port
	}

	source := strings.TrimSpace(getenv("ESAJ_SOURCE"))
	if source == "" {
		source = defaultSource
	}

	format := strings.ToLower(strings.TrimSpace(getenv("LOG_FORMAT")))
	if format != "text" {
		format = "json"
	}

	return Server{
		Addr:               addr,
		Source:             source,
		LogLevel:           parseLevel(getenv("LOG_LEVEL")),
		LogFormat:          format,
		RequestTimeout:     parseDuration(getenv("REQUEST_TIMEOUT"), defaultRequestTimeout),
		ShutdownTimeout:    parseDuration(getenv("SHUTDOWN_TIMEOUT"), defaultShutdownTimeout),
		CORSAllowedOrigins: parseList(getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseList(s string, fallback []string) []string {
	if out := pstrings.SplitList(s, ","); len(out) > 0 {
		return out
	}
	return fallback
}
