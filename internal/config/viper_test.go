package config

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Data.MappingsFile = "mappings.yaml"
	cfg.Data.CategoriesFile = "categories.yaml"
	return cfg
}

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "mappings.yaml", cfg.Data.MappingsFile)
	assert.Equal(t, "categories.yaml", cfg.Data.CategoriesFile)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	t.Setenv("PHONEPE_LOG_LEVEL", "debug")
	t.Setenv("PHONEPE_DATA_DIRECTORY", "/tmp/phonepe")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/phonepe", cfg.Data.Directory)
}

func TestInitializeConfig_InvalidLevelFromEnv(t *testing.T) {
	t.Setenv("PHONEPE_LOG_LEVEL", "verbose")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "multi-character delimiter",
			mutate:  func(c *Config) { c.CSV.Delimiter = ",," },
			wantErr: true,
		},
		{
			name:    "empty mappings file",
			mutate:  func(c *Config) { c.Data.MappingsFile = "" },
			wantErr: true,
		},
		{
			name:   "json format is valid",
			mutate: func(c *Config) { c.Log.Format = "json" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMappingsPath(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "mappings.yaml", cfg.MappingsPath())
	assert.Equal(t, "categories.yaml", cfg.CategoriesPath())

	cfg.Data.Directory = "database"
	assert.Equal(t, filepath.Join("database", "mappings.yaml"), cfg.MappingsPath())
	assert.Equal(t, filepath.Join("database", "categories.yaml"), cfg.CategoriesPath())
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Level = "debug"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	cfg.Log.Format = "json"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfig_InvalidLevelFallsBack(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Level = "verbose"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
