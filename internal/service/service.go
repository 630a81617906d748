package service

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"pitemp"
	"pitemp/internal/config"
	"pitemp/internal/logger"
	"pitemp/internal/publisher"
	"pitemp/internal/sensor"
)

// Collector runs the wait/read/publish loop until ctx is canceled.
type Collector interface {
	Run(ctx context.Context, interval time.Duration)
}

// Monitoring exposes a read-only snapshot of the daemon's progress.
type Monitoring interface {
	Status() pitemp.DaemonStatus
	LastReading() (pitemp.Reading, bool)
}

// Service aggregates the daemon's sub-services.
type Service struct {
	Collector
	Monitoring
}

// NewService wires the sensor reader and publisher into concrete services.
func NewService(cfg config.Config, reader sensor.Reader, pub publisher.Publisher, log *logger.Logger) *Service {
	mon := NewMonitoringService()
	return &Service{
		Collector:  NewCollectorService(reader, pub, mon, cfg.DocTag, clock.New(), log),
		Monitoring: mon,
	}
}
