package service

import (
	"sync"
	"time"

	"pitemp"
)

// MonitoringService keeps an in-memory snapshot of the daemon's progress.
// The collector is the only writer; HTTP handlers read concurrently.
type MonitoringService struct {
	mu      sync.Mutex
	status  pitemp.DaemonStatus
	last    pitemp.Reading
	hasLast bool
}

func NewMonitoringService() *MonitoringService {
	return &MonitoringService{
		status: pitemp.DaemonStatus{StartedAt: time.Now().UTC()},
	}
}

// RecordTick counts one loop iteration, successful or not.
func (m *MonitoringService) RecordTick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status.Ticks++
}

// RecordReading stores the most recent successful sensor reading.
func (m *MonitoringService) RecordReading(r pitemp.Reading) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = r
	m.hasLast = true
}

// RecordPublish counts one document accepted by the store.
func (m *MonitoringService) RecordPublish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status.Published++
}

// RecordSensorFailure counts one skipped cycle due to a failed read.
func (m *MonitoringService) RecordSensorFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status.SensorFailures++
}

// RecordPublishFailure counts one dropped data point.
func (m *MonitoringService) RecordPublishFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status.PublishFailures++
}

// Status returns a copy of the current snapshot.
func (m *MonitoringService) Status() pitemp.DaemonStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.status
	if m.hasLast {
		last := m.last
		st.LastReading = &last
	}
	return st
}

// LastReading returns the most recent reading, if any cycle has succeeded.
func (m *MonitoringService) LastReading() (pitemp.Reading, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.hasLast
}
