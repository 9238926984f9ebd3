// Package obs contains observability utilities such as logging.
package obs

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the global structured logger used by the register.
//
// Logger is exported to allow other packages to use it for logging. It
// defaults to a text handler on stderr so packages can log before InitLogger
// runs (and so tests never hit a nil logger).
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// InitLogger initializes the global Logger with the given level and format.
// Format is "json" or "text"; unknown values fall back to text.
func InitLogger(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	Logger = slog.New(h)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
