package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel     LogLeveler   `mapstructure:"LOG_LEVEL"`
	HTTP         HTTP         `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Amadeus      Amadeus      `mapstructure:",squash"`
	ExchangeRate ExchangeRate `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Amadeus holds the live flight-offer provider configuration.
type Amadeus struct {
	TokenAPIURL  string        `mapstructure:"AMADEUS_TOKEN_API_URL"`
	SearchAPIURL string        `mapstructure:"AMADEUS_SEARCH_API_URL"`
	ClientID     string        `mapstructure:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `mapstructure:"AMADEUS_CLIENT_SECRET"`
	Timeout      time.Duration `mapstructure:"AMADEUS_TIMEOUT"`
	MaxResults   int           `mapstructure:"AMADEUS_MAX_RESULTS"`
	Markup       float64       `mapstructure:"AMADEUS_PRICE_MARKUP"`
	RateLimitRPS int           `mapstructure:"AMADEUS_RATE_LIMIT"`
}

// ExchangeRate holds the currency rate provider configuration.
type ExchangeRate struct {
	BaseURL  string        `mapstructure:"EXCHANGE_RATE_API_URL"`
	APIKey   string        `mapstructure:"EXCHANGE_RATE_API_KEY"`
	Timeout  time.Duration `mapstructure:"EXCHANGE_RATE_TIMEOUT"`
	CacheTTL time.Duration `mapstructure:"EXCHANGE_RATE_CACHE_TTL"`
}
