package sensor

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MichaelS11/go-dht"

	"pitemp/internal/config"
	"pitemp/internal/logger"
)

// readRetries bounds the driver's internal retry loop per read call.
const readRetries = 11

// DHTReader reads a DHT11/DHT22 sensor over GPIO.
type DHTReader struct {
	dev *dht.DHT
	log *logger.Logger
}

// NewDHTReader initializes the GPIO host and opens the sensor on the
// configured pin.
func NewDHTReader(cfg config.Config, log *logger.Logger) (*DHTReader, error) {
	if err := dht.HostInit(); err != nil {
		return nil, fmt.Errorf("init gpio host: %w", err)
	}
	pin := pinName(cfg.GPIOPin)
	dev, err := dht.NewDHT(pin, dht.Celsius, string(cfg.Sensor))
	if err != nil {
		return nil, fmt.Errorf("open %s on %s: %w", cfg.Sensor, pin, err)
	}
	return &DHTReader{dev: dev, log: log}, nil
}

// Read performs one blocking read with driver-owned retries. The driver does
// not support cancellation mid-read; ctx is only checked before the read
// starts.
func (r *DHTReader) Read(ctx context.Context) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, err
	}

	r.log.Debugw("reading sensor")
	hum, temp, err := r.dev.ReadRetry(readRetries)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	s := Sample{HumRH: hum, TempC: temp, ReadAt: time.Now().UTC()}
	r.log.Debugw("sensor data", "hum_rh", s.HumRH, "temp_c", s.TempC)
	return s, nil
}

// pinName maps a BCM pin number to the periph.io GPIO pin name.
func pinName(pin int) string {
	return "GPIO" + strconv.Itoa(pin)
}
