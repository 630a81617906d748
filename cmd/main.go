package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pitemp/internal/config"
	"pitemp/internal/handlers"
	"pitemp/internal/logger"
	"pitemp/internal/publisher"
	"pitemp/internal/sensor"
	"pitemp/internal/server"
	"pitemp/internal/service"
)

const startupTimeout = 30 * time.Second

func main() {
	// init logger
	log := logger.New(logger.InfoLevel)

	// read env config; a missing or malformed variable is fatal (exit 1)
	cfg, err := config.Load(log)
	if err != nil {
		log.Fatalw("failed to get config", "err", err)
	}

	// open the index store and ensure the target index exists
	pub, err := publisher.NewES(publisher.Address(cfg.ESHost, cfg.ESPort), cfg.ESIndex, log)
	if err != nil {
		log.Fatalw("failed to init elasticsearch client", "err", err)
	}
	if err := ensureIndex(pub); err != nil {
		log.Fatalw("failed to ensure index", "index", cfg.ESIndex, "err", err)
	}

	// open the sensor on its GPIO pin
	reader, err := sensor.NewDHTReader(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sensor", "pin", cfg.GPIOPin, "err", err)
	}

	// wire dependencies
	services := service.NewService(cfg, reader, pub, log)
	apiHandler := handlers.NewHandler(services, log)

	// context for the collector loop
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Infow("starting",
		"index", cfg.ESIndex,
		"location", cfg.DocTag,
		"interval_s", cfg.PubInterval,
	)
	go services.Collector.Run(ctx, time.Duration(cfg.PubInterval)*time.Second)

	// optional HTTP status surface
	srv := runStatusServer(cfg.HTTPPort, apiHandler, log)

	// run until killed
	waitForShutdown(cancel, srv, log)
}

func ensureIndex(pub *publisher.ES) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	return pub.EnsureIndex(ctx)
}

// runStatusServer starts the HTTP status server when a port is configured.
// Returns nil when the surface is disabled.
func runStatusServer(port string, handler *handlers.Handler, log *logger.Logger) *server.Server {
	if port == "" {
		log.Infow("status server disabled; set HTTP_PORT to enable")
		return nil
	}
	srv := &server.Server{}
	go func() {
		// Run reports ErrServerClosed after a graceful Shutdown; that is
		// not a startup failure.
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting status server", "err", err)
		}
	}()
	return srv
}

// waitForShutdown blocks on termination signals, stops the collector, and
// drains the status server if one is running.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down...")

	// stop the collector loop
	cancel()

	if srv == nil {
		return
	}
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("status server forced to shutdown", "err", err)
	}
}
