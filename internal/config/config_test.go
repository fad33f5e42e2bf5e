package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listbase/internal/domain"
	"listbase/internal/storage"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err, "a missing config file is not an error")

	assert.Equal(t, domain.VariantStartup, cfg.VariantValue())
	assert.Equal(t, "./data/listings.json", cfg.DatasetPath)
	assert.Equal(t, storage.BackendBadger, cfg.StorageBackend)
	assert.Equal(t, "./badger_data", cfg.BadgerDBPath)
	assert.Equal(t, 2*time.Second, cfg.ScrapeInterval)
	assert.Equal(t, time.Duration(0), cfg.FetchDelay)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.Error(t, cfg.ValidateBot(), "bot needs a token")
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
VARIANT: service
STORAGE_BACKEND: sqlite
SQLITE_PATH: /tmp/prefs.db
LOG_LEVEL: debug
FETCH_DELAY: 400ms
TELEGRAM_BOT_TOKEN: abc
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.VariantService, cfg.VariantValue())
	assert.Equal(t, "./data/services.json", cfg.DatasetPath)
	assert.Equal(t, storage.Options{Kind: "sqlite", BadgerPath: "./badger_data", SQLitePath: "/tmp/prefs.db"}, cfg.StorageOptions())
	assert.Equal(t, 400*time.Millisecond, cfg.FetchDelay)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.NoError(t, cfg.ValidateBot())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("STORAGE_BACKEND: sqlite\n"), 0o644))

	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("DATASET_PATH", "/srv/listings.yaml")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, "/srv/listings.yaml", cfg.DatasetPath)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "variant", env: map[string]string{"VARIANT": "marketplace"}},
		{name: "backend", env: map[string]string{"STORAGE_BACKEND": "redis"}},
		{name: "log level", env: map[string]string{"LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("VARIANT: [unclosed\n"), 0o644))

	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoadConfig_ShippedConfigFollowsVariant(t *testing.T) {
	shipped := filepath.Join("..", "..", "configs")

	cfg, err := LoadConfig(shipped)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantStartup, cfg.VariantValue())
	assert.Equal(t, "./data/listings.json", cfg.DatasetPath)

	t.Setenv("VARIANT", "service")
	cfg, err = LoadConfig(shipped)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantService, cfg.VariantValue())
	assert.Equal(t, "./data/services.json", cfg.DatasetPath)
}
