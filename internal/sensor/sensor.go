package sensor

import (
	"context"
	"errors"
	"time"
)

// ErrReadFailed reports that the driver could not produce a valid sample.
var ErrReadFailed = errors.New("sensor read failed")

// Sample is the raw output of one successful sensor read.
type Sample struct {
	HumRH  float64 // relative humidity, %
	TempC  float64 // °C
	ReadAt time.Time
}

// Reader performs one blocking sensor read. Implementations own their retry
// behavior, so a single call may block well past the caller's tick interval.
type Reader interface {
	Read(ctx context.Context) (Sample, error)
}
