package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flashdeck/internal/app"
	"flashdeck/internal/config"
	"flashdeck/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "flashdeck: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel, log)

	application, err := app.New(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flashdeck: %s: %v\n", cfg.CardsPath, err)
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}
}

func setupSignalHandling(cancel context.CancelFunc, log logger.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Info("main", "signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		cancel()
	}()
}
