package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Fetch   FetchConfig   `yaml:"fetch" mapstructure:"fetch"`
	Scrape  ScrapeConfig  `yaml:"scrape" mapstructure:"scrape"`
	Names   NamesConfig   `yaml:"names" mapstructure:"names"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// StoreConfig configures the page cache backend.
type StoreConfig struct {
	Driver      string     `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string     `yaml:"database_url" mapstructure:"database_url"`
	TTLHours    float64    `yaml:"ttl_hours" mapstructure:"ttl_hours"`
	Pool        PoolConfig `yaml:"pool" mapstructure:"pool"`
}

// TTL returns the cache entry lifetime.
func (s StoreConfig) TTL() time.Duration {
	return time.Duration(s.TTLHours * float64(time.Hour))
}

// PoolConfig sizes the Postgres connection pool.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// FetchConfig configures the HTTP client.
type FetchConfig struct {
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	Burst       int     `yaml:"burst" mapstructure:"burst"`
}

// ScrapeConfig configures the scrape operations.
type ScrapeConfig struct {
	Concurrency     int  `yaml:"concurrency" mapstructure:"concurrency"`
	MaxPages        int  `yaml:"max_pages" mapstructure:"max_pages"`
	StrictGender    bool `yaml:"strict_gender" mapstructure:"strict_gender"`
	ContinueOnError bool `yaml:"continue_on_error" mapstructure:"continue_on_error"`
}

// NamesConfig points at an optional given-name dictionary extension.
type NamesConfig struct {
	DictionaryFile string `yaml:"dictionary_file" mapstructure:"dictionary_file"`
}

// MetricsConfig configures the run metrics textfile.
type MetricsConfig struct {
	Textfile string `yaml:"textfile" mapstructure:"textfile"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SENAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "")
	v.SetDefault("store.ttl_hours", 1)
	v.SetDefault("store.pool.max_conns", 4)
	v.SetDefault("store.pool.min_conns", 1)
	v.SetDefault("fetch.base_url", "http://senat.gov.pl")
	v.SetDefault("fetch.timeout_secs", 10)
	v.SetDefault("fetch.user_agent", "Mozilla/5.0 (SenatParser; Fundacja Media 3.0) Gecko/20100101 Firefox/31.0")
	v.SetDefault("fetch.rate_per_sec", 4)
	v.SetDefault("fetch.burst", 1)
	v.SetDefault("scrape.concurrency", 4)
	v.SetDefault("scrape.max_pages", 500)
	v.SetDefault("scrape.strict_gender", false)
	v.SetDefault("scrape.continue_on_error", false)
	v.SetDefault("names.dictionary_file", "")
	v.SetDefault("metrics.textfile", "")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the scraper cannot run with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite", "postgres", "memory":
	default:
		return eris.Errorf("config: unknown store.driver %q", c.Store.Driver)
	}
	if c.Store.Driver == "postgres" && c.Store.DatabaseURL == "" {
		return eris.New("config: store.database_url is required for postgres")
	}
	if c.Store.TTLHours <= 0 {
		return eris.Errorf("config: store.ttl_hours must be positive, got %v", c.Store.TTLHours)
	}
	if c.Fetch.RatePerSec <= 0 {
		return eris.Errorf("config: fetch.rate_per_sec must be positive, got %v", c.Fetch.RatePerSec)
	}
	if c.Scrape.Concurrency < 1 {
		return eris.Errorf("config: scrape.concurrency must be at least 1, got %d", c.Scrape.Concurrency)
	}
	if c.Scrape.MaxPages < 0 {
		return eris.Errorf("config: scrape.max_pages must not be negative, got %d", c.Scrape.MaxPages)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
