package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "8080"
database:
  driver: sqlite
  dsn: file:innovate.db
jwt:
  secret: from-file-secret-value
  ttl: 2h
leetcode:
  timeout: 3s
`)

	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, ,https://admin.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, testSecret, cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 3*time.Second, cfg.LeetCode.Timeout)
	assert.Contains(t, cfg.Server.AllowedOrigins, "https://app.example.com")
	assert.Contains(t, cfg.Server.AllowedOrigins, "https://admin.example.com")
	assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:5173")
	assert.NotContains(t, cfg.Server.AllowedOrigins, "")
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DATABASE_URL", "user:pass@tcp(localhost:3306)/innovate")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 2525, cfg.Email.SMTPPort)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.False(t, cfg.Email.SMTPEnabled())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.JWT.Secret = testSecret
		cfg.Database.DSN = "postgres://localhost/innovate"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"missing secret", func(c *Config) { c.JWT.Secret = "" }, false},
		{"short secret", func(c *Config) { c.JWT.Secret = "short" }, false},
		{"zero ttl", func(c *Config) { c.JWT.TTL = 0 }, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, false},
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
