package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 10000, cfg.MaxTextLength)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadConfig_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		port    string
		message string
	}{
		{"http", "must be a number"},
		{"0", "must be between 1 and 65535"},
		{"70000", "must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			t.Setenv("PORT", tt.port)

			_, err := Load()
			require.Error(t, err)

			var configErr *ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, "PORT", configErr.Field)
			assert.Equal(t, tt.message, configErr.Message)
			assert.Equal(t, "PORT: "+tt.message, err.Error())
		})
	}
}
