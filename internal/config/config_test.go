package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CAIXADRE_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("CAIXADRE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CAIXADRE_TEST_MISSING", "fallback"))
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "dados_sistema.json", cfg.Data.File)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.False(t, cfg.Statement.DirectTaxAndAdmin)
}

func TestInitializeConfigFromEnv(t *testing.T) {
	t.Setenv("CAIXADRE_LOG_LEVEL", "debug")
	t.Setenv("CAIXADRE_STATEMENT_DIRECT_TAX_AND_ADMIN", "true")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Statement.DirectTaxAndAdmin)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Data.File = "dados_sistema.json"
		cfg.CSV.Delimiter = ","
		return cfg
	}

	tests := []struct {
		name       string
		mutate     func(*Config)
		expectedOk bool
	}{
		{"Valid", func(c *Config) {}, true},
		{"Bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"Bad log format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"Multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ";;" }, false},
		{"Empty data file", func(c *Config) { c.Data.File = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := validateConfig(cfg)
			if tc.expectedOk {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
