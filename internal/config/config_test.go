package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "dayflow", cfg.Database.Name)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.App.CORSAllowedOrigins)
	assert.Empty(t, cfg.Redis.Addr)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("JWT_EXPIRATION_TIME", "24h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing db password", map[string]string{"DB_PASSWORD": "", "JWT_SECRET_KEY": "x"}},
		{"missing jwt secret", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": ""}},
		{"bad port", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": "x", "APP_PORT": "eighty"}},
		{"bad expiration", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": "x", "JWT_EXPIRATION_TIME": "7days"}},
		{"bad timezone", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": "x", "APP_TIMEZONE": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", Name: "dayflow", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://u:p@db:5433/dayflow?sslmode=disable", cfg.DatabaseURL())
}
