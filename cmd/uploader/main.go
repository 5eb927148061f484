package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rawen554/uploader/internal/app"
	"github.com/rawen554/uploader/internal/config"
	"github.com/rawen554/uploader/internal/gitlab"
	"github.com/rawen554/uploader/internal/logger"
	"github.com/rawen554/uploader/internal/logic"
	"github.com/rawen554/uploader/internal/store/fs"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error reading config: %w", err)
	}

	l, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = l.Sync()
	}()

	sink, err := fs.NewFileSink(cfg.SuccessLogPath, cfg.ErrorLogPath)
	if err != nil {
		return fmt.Errorf("error initializing log sink: %w", err)
	}

	remote := gitlab.NewClient(cfg.GitLabURL, cfg.RequestTimeout, l.Named("gitlab"))
	coreLogic := logic.NewCoreLogic(cfg, remote, sink, l.Named("logic"))
	a := app.NewApp(cfg, coreLogic, sink, l.Named("app"))

	srv := newServer(cfg.Addr(), a.SetupRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		l.Infof("server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("error running server: %w", err)
	case <-ctx.Done():
	}

	l.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
