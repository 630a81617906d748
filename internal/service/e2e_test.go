package service

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"pitemp/internal/logger"
	"pitemp/internal/publisher"
	"pitemp/internal/sensor"
)

// Drives the collector against a real Elasticsearch-backed publisher talking
// to a stub store: three simulated seconds at a one-second interval must
// index exactly three documents.
func TestCollector_EndToEnd(t *testing.T) {
	var mu sync.Mutex
	var indexed int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		mu.Lock()
		indexed++
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	}))
	defer srv.Close()

	pub, err := publisher.NewES(srv.URL, "readings", nil)
	if err != nil {
		t.Fatalf("NewES: %v", err)
	}

	reader := &sensorStub{sample: sensor.Sample{HumRH: 55.2, TempC: 21.3, ReadAt: time.Now().UTC()}}
	clk := clock.NewMock()
	col := NewCollectorService(reader, pub, NewMonitoringService(), "garage", clk, logger.New(logger.ErrorLevel))

	cancel, done := startCollector(t, col, time.Second)
	defer cancel()

	count := func() int {
		mu.Lock()
		defer mu.Unlock()
		return indexed
	}

	for i := 1; i <= 3; i++ {
		clk.Add(time.Second)
		want := i
		waitFor(t, func() bool { return count() == want })
	}
	if count() != 3 {
		t.Fatalf("indexed documents: want 3, got %d", count())
	}

	cancel()
	<-done
}
