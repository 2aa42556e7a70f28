package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"gorm.io/gorm"

	"userbase/db"
	"userbase/internal/config"
	"userbase/internal/logging"
	"userbase/internal/web"
)

const shutdownTimeout = 10 * time.Second

// App owns the database handle and the HTTP server.
type App struct {
	Config  *config.Config
	DB      *gorm.DB
	Handler http.Handler
	server  *http.Server
}

// New connects the database, synchronizes the schema and wires the HTTP
// handler. With cfg.ForceSync the Users table is recreated and its rows lost.
func New(cfg *config.Config) (*App, error) {
	gdb, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.ForceSync {
		logging.Info.Println("WARNING: DB_FORCE_SYNC is enabled, existing users will be dropped")
	}
	if err := db.SyncSchema(gdb, cfg.ForceSync); err != nil {
		db.Close(gdb)
		return nil, err
	}

	repoFactory := db.NewRepositoryFactory(gdb)
	webHandler, err := web.NewWebHandler(repoFactory.NewUserRepository(), cfg)
	if err != nil {
		db.Close(gdb)
		return nil, err
	}
	handler, err := webHandler.Handler()
	if err != nil {
		db.Close(gdb)
		return nil, err
	}

	return &App{
		Config:  cfg,
		DB:      gdb,
		Handler: handler,
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}, nil
}

// Run listens on the configured port until ctx is cancelled, then shuts the
// server down and closes the database.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		db.Close(a.DB)
		return fmt.Errorf("port %s is not available: %w", a.Config.Port, err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	defer db.Close(a.DB)

	serveErr := make(chan error, 1)
	go func() {
		logging.Info.Printf("Server listening on port %s", portOf(ln))
		serveErr <- a.server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logging.Info.Println("Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logging.Info.Println("Server stopped")
	return nil
}

func portOf(ln net.Listener) string {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return fmt.Sprint(addr.Port)
	}
	return ln.Addr().String()
}
