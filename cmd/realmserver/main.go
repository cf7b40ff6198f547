// Command realmserver serves deterministic territory map generation over
// HTTP.
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/talgya/realmgen/internal/api"
	"github.com/talgya/realmgen/internal/config"
	"github.com/talgya/realmgen/internal/mapgen"
)

func main() {
	configPath := flag.String("config", "realmserver.yaml", "path to YAML config")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var logOut io.Writer = os.Stdout
	if cfg.Log.File != "" {
		logOut = &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		}
	}
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("realmserver starting",
		"port", cfg.Port,
		"rate_limit", cfg.RateLimit.Requests,
		"max_territories", cfg.Generation.MaxTerritories,
	)

	srv := &api.Server{
		Gen: mapgen.New(),
		Cfg: cfg,
	}
	if err := srv.Start(); err != nil {
		slog.Error("HTTP server error", "error", err)
		os.Exit(1)
	}
}
