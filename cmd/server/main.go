// Package main is the entry point for the nusantara-stories server.
//
// main.go stays minimal: read configuration, create the logger, start the
// application. All actual logic lives in internal/.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/nusantara-stories/internal/config"
	"github.com/sakif/nusantara-stories/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.UsingDefaultSecret() {
		// The service still starts — local development depends on it —
		// but every session signed with this secret is forgeable.
		logger.Warn("JWT_SECRET not set, using the insecure built-in default")
	}

	// The users file is created on first write; its directory has to exist
	// before then. os.MkdirAll is a no-op when it already does.
	if dir := filepath.Dir(cfg.UsersPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("failed to create data directory",
				slog.String("dir", dir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until the server is shut down via SIGINT/SIGTERM.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
