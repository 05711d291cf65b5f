package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Init configures the process-wide slog logger from the environment:
// TRADEDASH_LOG_LEVEL (DEBUG|INFO|WARN|ERROR, default INFO) and
// TRADEDASH_LOG_FORMAT (json|text, default text). Returns the
// configured logger, which is also installed as slog's default.
func Init() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(getEnv("TRADEDASH_LOG_LEVEL", "INFO")),
	}

	var handler slog.Handler
	if getEnv("TRADEDASH_LOG_FORMAT", "text") == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
