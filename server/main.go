//go:build !js
// +build !js

package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simukka/ninja-slice/leaderboard"
)

//go:embed index.html
var indexHTML []byte

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args, os.Getenv)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		file, err := openLogFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	logger := newLogger(cfg.LogLevel, out)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	store, err := leaderboard.Dial(dialCtx, cfg.RedisURL)
	cancel()
	if err != nil {
		return err
	}
	defer store.Close()

	svc := leaderboard.NewService(store, time.Now)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           NewServer(svc, logger, indexHTML, cfg.StaticDir).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("Ninja Slice server starting", "addr", "http://localhost"+srv.Addr)
		logger.Info("Serving static files", "dir", cfg.StaticDir)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
