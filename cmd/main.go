package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"userbase/internal/app"
	"userbase/internal/config"
	"userbase/internal/logging"
)

func main() {
	logging.Info.Printf("Starting userbase - Process ID: %d", os.Getpid())
	logging.Info.Printf("Runtime: %s/%s, Go version: %s", runtime.GOOS, runtime.GOARCH, runtime.Version())

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Error.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Info.Printf("Environment: %s, database: %s", cfg.Env, cfg.DatabaseType)

	// Schema sync failures are fatal
	application, err := app.New(cfg)
	if err != nil {
		logging.Error.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logging.Error.Printf("Server stopped with error: %v", err)
		stop()
		os.Exit(1)
	}
	logging.Info.Println("[SUCCESS] Services stopped")
}
