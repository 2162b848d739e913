package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	WeatherStatic      = "static"
	WeatherAccuWeather = "accuweather"
)

// Config is populated from the environment. A .env file in the working directory is loaded first
// if present, without overriding variables that are already set.
type Config struct {
	Environment   string `envconfig:"ENVIRONMENT" default:"production"`
	Port          int    `envconfig:"PORT" default:"8080"`
	BasePath      string `envconfig:"BASE_PATH" default:"/api"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty     bool   `envconfig:"LOG_PRETTY" default:"false"`
	Timezone      string `envconfig:"TIMEZONE" default:"Local"`
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"memory"`
	SeedDemoData  bool   `envconfig:"SEED_DEMO_DATA" default:"false"`

	Postgresql Postgresql
	Redis      Redis
	SMTP       SMTP
	Search     Search
	Weather    Weather
	RateLimit  RateLimit
	Reminder   Reminder
	Tracing    Tracing
}

type Postgresql struct {
	Host         string `envconfig:"DATABASE_HOST"`
	Port         int    `envconfig:"DATABASE_PORT" default:"5432"`
	Username     string `envconfig:"DATABASE_USERNAME"`
	Password     string `envconfig:"DATABASE_PASSWORD"`
	DatabaseName string `envconfig:"DATABASE_NAME" default:"calendar"`
}

type Redis struct {
	Host string `envconfig:"REDIS_HOST"`
	Port int    `envconfig:"REDIS_PORT" default:"6379"`
}

type SMTP struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"SMTP_FROM" default:"calendar@localhost"`
}

type Search struct {
	GoogleAPIKey         string `envconfig:"GOOGLE_API_KEY"`
	GoogleSearchEngineID string `envconfig:"GOOGLE_SEARCH_ENGINE_ID"`
	GoogleBaseURL        string `envconfig:"GOOGLE_SEARCH_BASE_URL" default:"https://www.googleapis.com"`
	OpenAIAPIKey         string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL        string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	OpenAIModel          string `envconfig:"OPENAI_MODEL" default:"gpt-4o"`
}

type Weather struct {
	Provider string        `envconfig:"WEATHER_PROVIDER" default:"static"`
	APIKey   string        `envconfig:"ACCUWEATHER_API_KEY"`
	BaseURL  string        `envconfig:"ACCUWEATHER_BASE_URL" default:"https://dataservice.accuweather.com"`
	CacheTTL time.Duration `envconfig:"WEATHER_CACHE_TTL" default:"10m"`
}

type RateLimit struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"1"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"5"`
}

type Reminder struct {
	Schedule string        `envconfig:"REMINDER_SCHEDULE" default:"@every 5m"`
	Lead     time.Duration `envconfig:"REMINDER_LEAD" default:"30m"`
}

type Tracing struct {
	JaegerEndpoint string `envconfig:"JAEGER_ENDPOINT"`
	ServiceName    string `envconfig:"OTEL_SERVICE_NAME" default:"calendar"`
}

// New loads the configuration from the environment and validates it.
func New() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %v", err)
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %v", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate returns an error describing every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if !slices.Contains([]string{StorageMemory, StoragePostgres}, c.StorageDriver) {
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMemory, StoragePostgres, c.StorageDriver))
	}
	if c.StorageDriver == StoragePostgres && c.Postgresql.Host == "" {
		errs = append(errs, errors.New("DATABASE_HOST is required when STORAGE_DRIVER is postgres"))
	}

	if !slices.Contains([]string{WeatherStatic, WeatherAccuWeather}, c.Weather.Provider) {
		errs = append(errs, fmt.Errorf("WEATHER_PROVIDER must be %q or %q, got %q", WeatherStatic, WeatherAccuWeather, c.Weather.Provider))
	}
	if c.Weather.Provider == WeatherAccuWeather && c.Weather.APIKey == "" {
		errs = append(errs, errors.New("ACCUWEATHER_API_KEY is required when WEATHER_PROVIDER is accuweather"))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid TIMEZONE %q: %v", c.Timezone, err))
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}

	if c.Reminder.Lead <= 0 {
		errs = append(errs, errors.New("REMINDER_LEAD must be positive"))
	}

	return errors.Join(errs...)
}

// Location returns the time zone all calendar days are interpreted in.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// RemindersEnabled reports whether e-mail reminders can be sent.
func (c Config) RemindersEnabled() bool {
	return c.SMTP.Host != ""
}

// RedisEnabled reports whether a Redis instance is configured.
func (c Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// IsDevelopment reports whether the service runs on a developer machine.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
