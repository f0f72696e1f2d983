package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wgomg/rudefinder/internal/api"
	"github.com/wgomg/rudefinder/internal/config"
	"github.com/wgomg/rudefinder/internal/utils"
	"github.com/wgomg/rudefinder/internal/utils/httputils"
	"github.com/wgomg/rudefinder/internal/vocabulary"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := utils.NewLogger(cfg.App.LogLevel, cfg.App.RawBodyLog)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", "0.0.0.0:"+cfg.App.ServerPort)
	if err != nil {
		return err
	}

	return serve(ctx, cfg, logger, ln)
}

// serve runs the API on ln until ctx is cancelled, then shuts the server down.
func serve(ctx context.Context, cfg *config.Config, logger *utils.Logger, ln net.Listener) error {
	logger.Info(nil, "Starting Rude Word Finder")
	logger.Info(nil, "Environment: %s", cfg.App.Env)
	logger.Info(nil, "Log level: %s", cfg.App.LogLevel)
	logger.Info(nil, "Workers: %d", cfg.Finder.WorkerCount)

	store, err := loadStore(cfg, logger)
	if err != nil {
		ln.Close()
		return err
	}

	handler := api.NewHandler(
		logger,
		newFinder(cfg, logger, store),
		store,
		utils.NewMatchCache(cfg.Finder.CacheSize),
		api.NewMetrics(),
		cfg,
	)

	if cfg.Vocabulary.Watch {
		watcher := vocabulary.NewWatcher(
			logger,
			store,
			cfg.Vocabulary.Path,
			cfg.Finder.Separator,
			time.Duration(cfg.Vocabulary.ReloadDebounceMs)*time.Millisecond,
			handler.VocabularyReloaded,
		)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Error(nil, "Vocabulary watcher stopped: %v", err)
			}
		}()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Rude Word Finder is running\n")
	})

	api.RegisterRoutes(mux, handler)

	timeout := time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second
	server := &http.Server{
		Handler:           httputils.WithRequestID(logger, mux),
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(nil, "Starting server on %s", ln.Addr())
		logger.Info(nil, "Endpoints:")
		logger.Info(nil, "  GET  /health")
		logger.Info(nil, "  GET  /metrics")
		logger.Info(nil, "  GET  /vocabulary")
		logger.Info(nil, "  POST /find")
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(nil, "Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
