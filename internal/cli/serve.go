package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/palintape"
	httpAdapter "github.com/aretw0/palintape/pkg/adapters/http"
	"github.com/aretw0/palintape/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/palintape/pkg/adapters/redis"
	"github.com/aretw0/palintape/pkg/ports"

	"github.com/aretw0/palintape/internal/config"
	"github.com/aretw0/palintape/internal/logging"
	"github.com/aretw0/palintape/pkg/observability"
)

// ServeOptions contains the configuration for the 'serve' command.
type ServeOptions struct {
	Cfg config.Config
	// Addr overrides Cfg.Server.Addr when non-empty.
	Addr string
}

// Serve starts the HTTP API and blocks until the process is signalled or
// the listener fails.
func Serve(opts ServeOptions) error {
	logger := logging.New(logging.ParseLevel(opts.Cfg.Log.Level))

	store, closeStore := buildStore(opts.Cfg)
	defer closeStore()

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	eng := palintape.New(
		palintape.WithLogger(logger),
		palintape.WithLifecycleHooks(metrics.Hooks()),
	)

	handler := httpAdapter.NewHandler(eng, store, httpAdapter.WithMetricsRegistry(registry))

	addr := opts.Cfg.Server.Addr
	if opts.Addr != "" {
		addr = opts.Addr
	}
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("starting palintape server", "addr", srv.Addr, "store", storeName(opts.Cfg))
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt or terminate signals.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("starting shutdown", "signal", sig.String())

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown did not complete", "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("failed to stop server: %w", err)
			}
		}
		logger.Info("palintape server stopped gracefully")
		return nil
	}
}

// buildStore selects the run store from configuration. Without a Redis
// address the runs live in process memory.
func buildStore(cfg config.Config) (ports.RunStore, func()) {
	if cfg.Redis.Addr == "" {
		return memory.NewStore(), func() {}
	}

	var opts []redisAdapter.Option
	if cfg.Redis.TTLSeconds > 0 {
		opts = append(opts, redisAdapter.WithTTL(time.Duration(cfg.Redis.TTLSeconds)*time.Second))
	}
	store := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
	return store, func() { _ = store.Close() }
}

func storeName(cfg config.Config) string {
	if cfg.Redis.Addr == "" {
		return "memory"
	}
	return "redis"
}
