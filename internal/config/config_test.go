package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"DB_DSN":            "postgres://localhost/wrls",
		"JWT_ACCESS_SECRET": "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8013, cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, 4, cfg.Charging.FinancialYearStartMonth)
}

func TestFromViperValidation(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		message string
	}{
		{"missing dsn", map[string]any{"JWT_ACCESS_SECRET": "s"}, "DB_DSN is required"},
		{"missing secret", map[string]any{"DB_DSN": "dsn"}, "JWT_ACCESS_SECRET is required"},
		{"bad month", map[string]any{"DB_DSN": "dsn", "JWT_ACCESS_SECRET": "s", "CHARGING_FINANCIAL_YEAR_START_MONTH": 13}, "between 1 and 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newViper(tt.values))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList("  "))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, parseList(" https://a.example, ,https://b.example "))
}
