package handlers

import (
	"pitemp"
)

// ---- Service Mocks ----

type mockMonitoring struct {
	status  pitemp.DaemonStatus
	last    pitemp.Reading
	hasLast bool
}

func (m *mockMonitoring) Status() pitemp.DaemonStatus {
	st := m.status
	if m.hasLast {
		last := m.last
		st.LastReading = &last
	}
	return st
}

func (m *mockMonitoring) LastReading() (pitemp.Reading, bool) {
	return m.last, m.hasLast
}
