package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/sjnakib/portfolio/internal/content"
	"golang.org/x/sync/errgroup"
)

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives, then
// shuts down gracefully and releases the application's resources.
func (app *application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer app.cleanup()

	addr := fmt.Sprintf(":%d", app.config.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return app.serve(ctx, listener)
}

// serve runs the HTTP server on listener, plus the content watcher when
// enabled. The first failure cancels the others.
func (app *application) serve(ctx context.Context, listener net.Listener) error {
	var watcher *content.Watcher
	if app.config.Content.Watch {
		var err error
		watcher, err = content.NewWatcher(app.config.Content.Dir, app.content, app.config.Content.Debounce, app.logger)
		if err != nil {
			return errors.Join(err, listener.Close())
		}
	}

	server := &http.Server{
		Handler:           app.setupRouter(),
		ReadTimeout:       app.config.Server.ReadTimeout,
		ReadHeaderTimeout: app.config.Server.ReadTimeout,
		WriteTimeout:      app.config.Server.WriteTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("starting server", slog.String("addr", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		app.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gCtx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	app.logger.Info("server shutdown completed")
	return nil
}
