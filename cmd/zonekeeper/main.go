package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zonekit/zonekeeper/internal/api"
	"github.com/zonekit/zonekeeper/internal/changelog"
	"github.com/zonekit/zonekeeper/internal/config"
	"github.com/zonekit/zonekeeper/internal/logging"
	"github.com/zonekit/zonekeeper/internal/store"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Path to JSON configuration file (or set ZONEKEEPER_CONFIG)")
		host         = flag.String("host", "", "Override bind host")
		port         = flag.Int("port", 0, "Override bind port")
		primaryDir   = flag.String("primary-dir", "", "Override primary zone directory")
		secondaryDir = flag.String("secondary-dir", "", "Override secondary (fallback) zone directory")
		jsonLogs     = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug        = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv("ZONEKEEPER_CONFIG")
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *primaryDir != "" {
		cfg.PrimaryDir = *primaryDir
	}
	if *secondaryDir != "" {
		cfg.SecondaryDir = *secondaryDir
	}
	if *jsonLogs {
		cfg.LogFormat = "json"
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.Configure(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Info("ZoneKeeper starting",
		"host", cfg.Host,
		"port", cfg.Port,
		"primary_dir", cfg.PrimaryDir,
		"secondary_dir", cfg.SecondaryDir,
	)

	var journal *changelog.Log
	if cfg.ChangelogDB != "" {
		journal, err = changelog.Open(cfg.ChangelogDB)
		if err != nil {
			// journaling is observational; run without it rather than die.
			logger.Warn("change journal unavailable", "path", cfg.ChangelogDB, "err", err)
			journal = nil
		} else {
			defer journal.Close()
		}
	}

	st := store.New(cfg.PrimaryDir, cfg.SecondaryDir, logger)
	srv := api.New(cfg, st, journal, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}
}
