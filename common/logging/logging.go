// Package logging configures the process-wide slog logger shared by the services.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Configure installs a text slog handler as the default logger. Level is one of
// DEBUG, INFO, WARN or ERROR; anything else means INFO.
func Configure(w io.Writer, level string) {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelInfo)
	switch strings.ToUpper(level) {
	case "DEBUG":
		lvl.Set(slog.LevelDebug)
	case "WARN":
		lvl.Set(slog.LevelWarn)
	case "ERROR":
		lvl.Set(slog.LevelError)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
