package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/flight-tower/flight-tower/internal/domain"
	"github.com/flight-tower/flight-tower/internal/infrastructure/retry"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
)

const envPrefix = "FLIGHTWATCH"

// watchConfig is the merged result of flags, FLIGHTWATCH_* variables and the optional YAML file.
// Flags win over the environment, which wins over the file.
type watchConfig struct {
	Server   string        `mapstructure:"server"`
	Lat      float64       `mapstructure:"lat"`
	Lon      float64       `mapstructure:"lon"`
	RadiusKm float64       `mapstructure:"radius"`
	Limit    int           `mapstructure:"limit"`
	Interval time.Duration `mapstructure:"interval"`
	CacheTTL time.Duration `mapstructure:"cache-ttl"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Format   string        `mapstructure:"format"`
	LogLevel string        `mapstructure:"log-level"`

	Retries       int           `mapstructure:"retries"`
	RetryDelay    time.Duration `mapstructure:"retry-delay"`
	RetryMaxDelay time.Duration `mapstructure:"retry-max-delay"`

	// HasPosition is true when both lat and lon were given explicitly.
	HasPosition bool `mapstructure:"-"`
}

// Criteria returns the clamped search criteria for the configured position.
func (c *watchConfig) Criteria() domain.SearchCriteria {
	criteria := domain.SearchCriteria{Lat: c.Lat, Lon: c.Lon, RadiusKm: c.RadiusKm, Limit: c.Limit}
	criteria.Clamp()
	return criteria
}

// RetryPolicy returns the client retry policy tuned by the retry flags.
func (c *watchConfig) RetryPolicy() retry.Config {
	return retry.ClientConfig.
		WithMaxAttempts(c.Retries).
		WithInitialDelay(c.RetryDelay).
		WithMaxDelay(c.RetryMaxDelay)
}

// newFlagSet declares the flags shared by every command.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("server", "http://localhost:8080", "flight tower base URL")
	fs.Float64("lat", 0, "latitude of the search centre (defaults to the IP location)")
	fs.Float64("lon", 0, "longitude of the search centre (defaults to the IP location)")
	fs.Float64("radius", domain.DefaultRadiusKm, "search radius in km (5-100)")
	fs.Int("limit", domain.DefaultLimit, "maximum number of flights (1-50)")
	fs.Duration("interval", 0, "refresh interval; 0 prints once")
	fs.Duration("cache-ttl", 15*time.Second, "how long a search result is reused")
	fs.Duration("timeout", 15*time.Second, "per-request timeout")
	fs.StringP("format", "o", formatTable, "output format: table, json or csv")
	fs.String("log-level", "warn", "log level")
	fs.Int("retries", retry.ClientConfig.MaxAttempts, "attempts per request for 502, 503, 504 and transport failures")
	fs.Duration("retry-delay", retry.ClientConfig.InitialDelay, "delay before the first retry")
	fs.Duration("retry-max-delay", retry.ClientConfig.MaxDelay, "upper bound on the delay between retries")
	return fs
}

// loadConfig parses args into fs and merges the result with the environment and config file.
func loadConfig(fs *pflag.FlagSet, args []string, lookupEnv func(string) (string, bool)) (*watchConfig, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	// FLIGHTWATCH_* variables override the file but not explicit flags.
	for _, key := range v.AllKeys() {
		envKey := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		if val, ok := lookupEnv(envKey); ok && !fs.Changed(key) {
			v.Set(key, val)
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg watchConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.HasPosition = v.IsSet("lat") && v.IsSet("lon")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *watchConfig) validate() error {
	if strings.TrimSpace(c.Server) == "" {
		return errors.New("server is required")
	}
	switch c.Format {
	case formatTable, formatJSON, formatCSV:
	default:
		return fmt.Errorf("format must be one of table, json, csv, got %q", c.Format)
	}
	if c.Interval < 0 {
		return errors.New("interval must not be negative")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.Retries < 1 {
		return errors.New("retries must be at least 1")
	}
	if c.RetryDelay < 0 || c.RetryMaxDelay < c.RetryDelay {
		return errors.New("retry delays must satisfy 0 <= retry-delay <= retry-max-delay")
	}
	if c.HasPosition && (c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180) {
		return fmt.Errorf("position %g,%g is out of range", c.Lat, c.Lon)
	}
	return nil
}
