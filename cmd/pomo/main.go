// Package main is the entry point for the pomo CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"pomo/internal/cli"
	"pomo/internal/commands"
	"pomo/internal/config"
	"pomo/internal/service"
	"pomo/internal/store/jsonfile"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create store factory
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		if err := cfg.EnsureDir(); err != nil {
			return nil, err
		}
		var debugw io.Writer = io.Discard
		if cfg.Debug {
			debugw = os.Stderr
		}
		return jsonfile.Open(cfg.DataPath(), cfg.ReportPath(), jsonfile.Options{
			MinutesPerPomodoro: cfg.MinutesPerPomodoro(),
			DebugLog:           debugw,
		})
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
