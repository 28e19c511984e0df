package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nguyentantai21042004/vidprompt/internal/app"
	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/internal/transcript"
)

// openApp loads the config named by the flags and wires the application.
func openApp(opts *rootOptions) (*app.App, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if opts.debug {
		level = "debug"
	}
	log := logger.NewWithWriter(level, cfg.Logging.Format, os.Stderr)

	a, err := app.New(cfg, log, opts.debug)
	if err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	return a, nil
}

// signalContext is canceled on SIGINT or SIGTERM so a running action stops
// its subprocesses.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// videoRef makes a command-line path absolute so it maps to the same cache
// key as a path picked in the window.
func videoRef(arg string) (string, error) {
	if err := transcript.ValidateRef(arg); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve video path: %w", err)
	}
	return abs, nil
}
