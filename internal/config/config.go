package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"listbase/internal/domain"
	"listbase/internal/storage"
)

// Config holds all configuration for the application.
// Values are read by viper from a config file or environment variables.
type Config struct {
	Variant        string        `mapstructure:"VARIANT"`
	DatasetPath    string        `mapstructure:"DATASET_PATH"`
	StorageBackend string        `mapstructure:"STORAGE_BACKEND"`
	BadgerDBPath   string        `mapstructure:"BADGERDB_PATH"`
	SQLitePath     string        `mapstructure:"SQLITE_PATH"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	FetchDelay     time.Duration `mapstructure:"FETCH_DELAY"`
	ScrapeInterval time.Duration `mapstructure:"SCRAPE_INTERVAL"`

	// TelegramBotToken is only needed by the bot command.
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
}

var defaults = map[string]any{
	"VARIANT":            string(domain.VariantStartup),
	"DATASET_PATH":       "",
	"STORAGE_BACKEND":    storage.BackendBadger,
	"BADGERDB_PATH":      "./badger_data",
	"SQLITE_PATH":        "./listbase.db",
	"LOG_LEVEL":          "info",
	"FETCH_DELAY":        "0s",
	"SCRAPE_INTERVAL":    "2s",
	"TELEGRAM_BOT_TOKEN": "",
}

// LoadConfig reads configuration from path/config.yaml, with environment
// variables taking precedence. A missing config file is not an error.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Defaults also register every key, so AutomaticEnv can see it on Unmarshal
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	variant, err := domain.ParseVariant(c.Variant)
	if err != nil {
		return err
	}
	c.Variant = string(variant)

	if c.DatasetPath == "" {
		c.DatasetPath = DefaultDatasetPath(variant)
	}

	switch strings.ToLower(c.StorageBackend) {
	case storage.BackendBadger, storage.BackendSQLite, storage.BackendMemory:
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownBackend, c.StorageBackend)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return nil
}

// ValidateBot checks the settings only the Telegram bot needs.
func (c Config) ValidateBot() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	return nil
}

// VariantValue returns the parsed variant. Config is already validated.
func (c Config) VariantValue() domain.Variant {
	return domain.Variant(c.Variant)
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// StorageOptions maps the config onto storage.Open options.
func (c Config) StorageOptions() storage.Options {
	return storage.Options{
		Kind:       c.StorageBackend,
		BadgerPath: c.BadgerDBPath,
		SQLitePath: c.SQLitePath,
	}
}

// DefaultDatasetPath is the bundled dataset for a variant.
func DefaultDatasetPath(v domain.Variant) string {
	if v == domain.VariantService {
		return "./data/services.json"
	}
	return "./data/listings.json"
}
