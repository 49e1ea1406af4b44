package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Fantrax Fantrax
	Log     Log
}

type Fantrax struct {
	PayloadDir    string        `envconfig:"FANTRAX_PAYLOAD_DIR" required:"true"`
	Timezone      string        `envconfig:"FANTRAX_TIMEZONE" default:"America/Chicago"`
	WatchInterval time.Duration `envconfig:"FANTRAX_WATCH_INTERVAL" default:"0s"`
}

type Log struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Location is the zone Fantrax renders its dates in.
func (f Fantrax) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", f.Timezone, err)
	}
	return loc, nil
}

func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parsing log level: %w", err)
	}
	return level, nil
}
