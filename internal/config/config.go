package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"pitemp/internal/logger"
)

// SensorType selects the DHT variant wired to the GPIO pin.
type SensorType string

const (
	DHT11 SensorType = "dht11"
	DHT22 SensorType = "dht22"
)

// Environment variable names read at startup.
const (
	EnvESHost     = "ES_HOST"
	EnvESPort     = "ES_PORT"
	EnvESIndex    = "ES_INDEX"
	EnvDocTag     = "DOC_TAG"
	EnvInterval   = "PUB_INTVL"
	EnvGPIOPin    = "GPIO_PIN"
	EnvSensorType = "SENSOR_TYPE"
	EnvHTTPPort   = "HTTP_PORT"
)

// Config is the immutable application configuration, built once at startup.
type Config struct {
	ESHost      string
	ESPort      int
	ESIndex     string
	DocTag      string
	PubInterval int // seconds between readings
	GPIOPin     int
	Sensor      SensorType
	HTTPPort    string // optional; empty disables the status server
}

// Load reads the required environment variables and assembles the config.
// Every variable must be present and non-empty; numeric variables must parse
// as integers. The first failure aborts the load, so a partial config is
// never returned.
func Load(log *logger.Logger) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	esHost, err := requireString(v, EnvESHost)
	if err != nil {
		return Config{}, err
	}
	esPort, err := requireInt(v, EnvESPort)
	if err != nil {
		return Config{}, err
	}
	esIndex, err := requireString(v, EnvESIndex)
	if err != nil {
		return Config{}, err
	}
	docTag, err := requireString(v, EnvDocTag)
	if err != nil {
		return Config{}, err
	}
	interval, err := requireInt(v, EnvInterval)
	if err != nil {
		return Config{}, err
	}
	// The interval feeds a ticker, which rejects non-positive durations.
	if interval < 1 {
		return Config{}, fmt.Errorf("invalid value for %s: %d, must be at least 1 second", EnvInterval, interval)
	}
	gpioPin, err := requireInt(v, EnvGPIOPin)
	if err != nil {
		return Config{}, err
	}
	sensor, err := sensorType(v)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ESHost:      esHost,
		ESPort:      esPort,
		ESIndex:     esIndex,
		DocTag:      docTag,
		PubInterval: interval,
		GPIOPin:     gpioPin,
		Sensor:      sensor,
		HTTPPort:    strings.TrimSpace(v.GetString(EnvHTTPPort)),
	}

	if log != nil {
		log.Infow("config loaded",
			"es_host", cfg.ESHost,
			"es_port", cfg.ESPort,
			"es_index", cfg.ESIndex,
			"doc_tag", cfg.DocTag,
			"pub_intvl_s", cfg.PubInterval,
			"gpio_pin", cfg.GPIOPin,
			"sensor", cfg.Sensor,
		)
	}
	return cfg, nil
}

// requireString returns the trimmed value of key, or an error naming the
// variable when it is unset or blank.
func requireString(v *viper.Viper, key string) (string, error) {
	s := strings.TrimSpace(v.GetString(key))
	if s == "" {
		return "", fmt.Errorf("empty env value for %s", key)
	}
	return s, nil
}

// requireInt returns the value of key parsed as an integer.
func requireInt(v *viper.Viper, key string) (int, error) {
	s, err := requireString(v, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q", key, s)
	}
	return n, nil
}

// sensorType reads the optional SENSOR_TYPE variable, defaulting to DHT22.
func sensorType(v *viper.Viper) (SensorType, error) {
	s := strings.ToLower(strings.TrimSpace(v.GetString(EnvSensorType)))
	if s == "" {
		return DHT22, nil
	}
	switch st := SensorType(s); st {
	case DHT11, DHT22:
		return st, nil
	default:
		return "", fmt.Errorf("invalid value for %s: %q", EnvSensorType, s)
	}
}
