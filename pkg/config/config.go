package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/stock-data/pkg/postgresql"
)

// Config represents the application configuration.
type Config struct {
	App       AppConfig         `envPrefix:"APP_"`
	Postgres  postgresql.Config `envPrefix:"POSTGRES_"`
	Generator GeneratorConfig   `envPrefix:"GENERATOR_"`
	API       APIConfig         `envPrefix:"API_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"stock-data"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// GeneratorConfig configures the bar generator.
type GeneratorConfig struct {
	Symbols         []string      `env:"SYMBOLS" envSeparator:"," envDefault:"AAPL,MSFT,GOOGL,AMZN,NVDA" validate:"min=1,dive,required"`
	UpdateInterval  time.Duration `env:"UPDATE_INTERVAL" envDefault:"60s" validate:"gt=0"`
	HistoricalDays  int           `env:"HISTORICAL_DAYS" envDefault:"30" validate:"gte=0"`
	HistoricalStart Date          `env:"HISTORICAL_START" envDefault:"2025-04-11"`
	RealtimeStart   Date          `env:"REALTIME_START" envDefault:"2025-05-11"`
	ClampRange      bool          `env:"CLAMP_RANGE" envDefault:"false"`
}

// APIConfig configures the query service.
type APIConfig struct {
	Port               int           `env:"PORT" envDefault:"5000" validate:"gt=0,lte=65535"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// Addr returns the listen address for the HTTP server.
func (c APIConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Date is a calendar date in YYYY-MM-DD form, held at midnight UTC.
type Date struct {
	time.Time
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(time.DateOnly, string(text))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", string(text), err)
	}
	d.Time = t
	return nil
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return parse(env.Options{})
}

// LoadFromMap builds the configuration from the given variables only.
func LoadFromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
