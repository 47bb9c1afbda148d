// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cadastro/internal/config"
)

func ParseLevel(s string) slog.Level {
	switch s {
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

// ToFile sends JSON logs to cfg.File. Used while the terminal form owns
// stdout and stderr.
func ToFile(cfg config.LogConfig) (func(), error) {
	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})))
	return func() { _ = f.Close() }, nil
}

// ToWriter sends text logs to w.
func ToWriter(w io.Writer, cfg config.LogConfig) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})))
}
