package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL        = "https://url-shortener-server.onrender.com/api/"
	defaultRequestTimeout = 10 * time.Second
	defaultMockListenAddr = "localhost:8080"
)

// Config holds the client settings. The base URL of the shortening service
// is the single deployment-supplied value; everything else has fixed
// defaults and is only tunable through flags.
type Config struct {
	BaseURL        string `env:"SHORTENER_BASE_URL"`
	RequestTimeout time.Duration
	MockListenAddr string
}

// NewConfig builds the configuration from defaults, the environment and
// command line flags, in that order of precedence (flags win).
func NewConfig() *Config {
	cfg := &Config{
		BaseURL:        defaultBaseURL,
		RequestTimeout: defaultRequestTimeout,
		MockListenAddr: defaultMockListenAddr,
	}

	if err := env.Parse(cfg); err != nil {
		log.Error().Err(err).Msg("Failed to parse environment")
	}

	flag.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "Base URL of the shortening service API")
	flag.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "Request timeout for calls to the shortening service")
	flag.StringVar(&cfg.MockListenAddr, "a", cfg.MockListenAddr, "Listen address for the mock alias server")

	flag.Parse()

	return cfg
}
