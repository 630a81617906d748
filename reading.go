package pitemp

import "time"

// Reading is one timestamped humidity/temperature sample tagged with a
// location. It is built only from a successful sensor read and matches the
// document shape written to the index store.
type Reading struct {
	HumRH     float64   `json:"hum_rh"` // relative humidity, %
	TempC     float64   `json:"temp_c"` // °C
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
}

// DaemonStatus is a snapshot of the daemon's progress since startup.
type DaemonStatus struct {
	StartedAt       time.Time `json:"started_at"`
	Ticks           uint64    `json:"ticks"`
	Published       uint64    `json:"published"`
	SensorFailures  uint64    `json:"sensor_failures"`
	PublishFailures uint64    `json:"publish_failures"`
	LastReading     *Reading  `json:"last_reading,omitempty"`
}
