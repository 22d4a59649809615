package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Threshold   float64 `env:"KEYFRAMES_THRESHOLD"    envDefault:"5.0"`
	MinInterval int     `env:"KEYFRAMES_MIN_INTERVAL" envDefault:"30"`
	MaxFrames   int     `env:"KEYFRAMES_MAX_FRAMES"   envDefault:"100"`
	LogLevel    string  `env:"KEYFRAMES_LOG_LEVEL"    envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
