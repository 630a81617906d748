package service

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"pitemp"
	"pitemp/internal/logger"
	"pitemp/internal/publisher"
	"pitemp/internal/sensor"
)

// CollectorService drives the fixed-interval read/publish cycle.
type CollectorService struct {
	reader sensor.Reader
	pub    publisher.Publisher
	mon    *MonitoringService
	docTag string
	clk    clock.Clock
	log    *logger.Logger
}

// NewCollectorService returns a collector. The clock is injected so tests
// can drive the ticker without real sleeps.
func NewCollectorService(reader sensor.Reader, pub publisher.Publisher, mon *MonitoringService, docTag string, clk clock.Clock, log *logger.Logger) *CollectorService {
	return &CollectorService{
		reader: reader,
		pub:    pub,
		mon:    mon,
		docTag: docTag,
		clk:    clk,
		log:    log,
	}
}

// Run ticks at the given interval until ctx is canceled. The first tick
// fires after one full interval, so waiting always precedes reading. Each
// tick is one read-then-publish cycle; a failed read or publish skips the
// rest of the cycle and the loop keeps going.
func (s *CollectorService) Run(ctx context.Context, interval time.Duration) {
	t := s.clk.Ticker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.tick(ctx)
		}
	}
}

func (s *CollectorService) tick(ctx context.Context) {
	s.mon.RecordTick()

	sample, err := s.reader.Read(ctx)
	if err != nil {
		s.mon.RecordSensorFailure()
		s.log.Errorw("sensor_read_failed", "err", err)
		return
	}

	r := pitemp.Reading{
		HumRH:     sample.HumRH,
		TempC:     sample.TempC,
		Timestamp: sample.ReadAt,
		Location:  s.docTag,
	}
	s.mon.RecordReading(r)

	if err := s.pub.Publish(ctx, r); err != nil {
		s.mon.RecordPublishFailure()
		s.log.Errorw("publish_failed", "err", err, "location", r.Location)
		return
	}
	s.mon.RecordPublish()
	s.log.Debugw("reading_published", "hum_rh", r.HumRH, "temp_c", r.TempC, "location", r.Location)
}
