// Command snrserver serves the exposure-time calculator over HTTP.
//
// Usage:
//
//	snrserver [-config etc.yaml]
//
// Endpoints: GET /health, GET /v1/catalog, POST /v1/snr, GET /metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-etc/calib/curve"
	"github.com/cwbudde/algo-etc/internal/config"
	"github.com/cwbudde/algo-etc/internal/logging"
	"github.com/cwbudde/algo-etc/internal/metrics"
	"github.com/cwbudde/algo-etc/internal/server"
	"github.com/cwbudde/algo-etc/observe/sweep"
)

const version = "0.1.0"

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 30 * time.Second
	// Added to the sweep timeout for encoding the response.
	writeMargin = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "configuration file (default $ETC_CONFIG)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("snrserver version %s\n", version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "snrserver: %v\n", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Log)
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Requests may only name model files inside the configured directory.
	loader, err := cfg.Catalog.ModelLoader()
	if err != nil {
		return err
	}
	store, err := cfg.Catalog.Open(curve.WithLoader(loader))
	if err != nil {
		return err
	}
	log.Info(ctx, "catalog loaded",
		logging.Int("filters", len(store.Filters())),
		logging.Int("grisms", len(store.Grisms())),
		logging.Int("models", len(store.Models())),
		logging.String("model_dir", cfg.Catalog.ModelDir),
	)

	m := metrics.NewManager()
	driver := sweep.NewDriver(store, cfg.Instrument.Params(), curve.DefaultGrid(),
		sweep.WithLogger(log),
		sweep.WithRecorder(m),
		sweep.WithSweepOptions(
			sweep.WithWorkers(cfg.Sweep.Workers),
			sweep.WithTimeout(cfg.Sweep.Timeout),
		),
	)

	api := server.New(driver,
		server.WithCatalog(store),
		server.WithMetrics(m),
		server.WithLogger(log),
		server.WithAllowedOrigins(cfg.CORSOrigins...),
	)

	writeTimeout := time.Duration(0)
	if cfg.Sweep.Timeout > 0 {
		writeTimeout = cfg.Sweep.Timeout + writeMargin
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "starting HTTP server", logging.String("addr", cfg.Addr), logging.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info(context.Background(), "shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error(context.Background(), "server stopped with error", logging.Error(err))
		return err
	}
	log.Info(context.Background(), "server stopped")
	return nil
}
