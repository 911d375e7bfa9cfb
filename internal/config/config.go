package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/innovate-connect/innovate/internal/types"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Email    EmailConfig    `yaml:"email"`
	LeetCode LeetCodeConfig `yaml:"leetcode"`
	Logging  LoggingConfig  `yaml:"logging"`
	Admin    AdminConfig    `yaml:"admin"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	Driver       string `yaml:"driver"` // "postgres", "mysql" or "sqlite"
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type JWTConfig struct {
	Secret   string        `yaml:"secret"`
	Issuer   string        `yaml:"issuer"`
	Audience string        `yaml:"audience"`
	TTL      time.Duration `yaml:"ttl"`
}

// EmailConfig with an empty SMTPHost runs notifications in simulation mode:
// messages are logged instead of sent.
type EmailConfig struct {
	SMTPHost string        `yaml:"smtp_host"`
	SMTPPort int           `yaml:"smtp_port"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	From     string        `yaml:"from"`
	Timeout  time.Duration `yaml:"timeout"`
}

type LeetCodeConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "text"
}

// AdminConfig seeds the single administrator account at startup.
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Load builds the configuration from defaults, an optional YAML file at path
// and the environment, in that order of precedence (environment wins).
// A .env file in the working directory is read first when it exists.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)

		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func Default() *Config {
	origins := make([]string, len(types.DefaultOrigins))
	copy(origins, types.DefaultOrigins)

	return &Config{
		Server: ServerConfig{
			Port:           "3000",
			AllowedOrigins: origins,
		},
		Database: DatabaseConfig{
			Driver:       "postgres",
			MaxOpenConns: 10,
		},
		JWT: JWTConfig{
			Issuer:   "innovate-connect",
			Audience: "innovate-connect",
			TTL:      24 * time.Hour,
		},
		Email: EmailConfig{
			SMTPPort: 587,
			Timeout:  10 * time.Second,
		},
		LeetCode: LeetCodeConfig{
			BaseURL: "https://leetcode.com",
			Timeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Admin: AdminConfig{
			Email: "admin@innovate.com",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("PORT", &cfg.Server.Port)
	setString("DB_DRIVER", &cfg.Database.Driver)
	setString("DATABASE_URL", &cfg.Database.DSN)
	setString("JWT_SECRET", &cfg.JWT.Secret)
	setString("JWT_ISSUER", &cfg.JWT.Issuer)
	setString("JWT_AUDIENCE", &cfg.JWT.Audience)
	setString("SMTP_HOST", &cfg.Email.SMTPHost)
	setString("SMTP_USER", &cfg.Email.Username)
	setString("SMTP_PASS", &cfg.Email.Password)
	setString("SMTP_FROM", &cfg.Email.From)
	setString("LEETCODE_URL", &cfg.LeetCode.BaseURL)
	setString("LOG_LEVEL", &cfg.Logging.Level)
	setString("LOG_FORMAT", &cfg.Logging.Format)
	setString("ADMIN_EMAIL", &cfg.Admin.Email)
	setString("ADMIN_PASSWORD", &cfg.Admin.Password)

	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = port
		}
	}

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		for _, origin := range strings.Split(allowedOrigins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, trimmed)
			}
		}
	}
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is required (JWT_SECRET)")
	}

	if len(c.JWT.Secret) < 16 {
		return errors.New("jwt secret must be at least 16 characters")
	}

	if c.JWT.TTL <= 0 {
		return errors.New("jwt ttl must be positive")
	}

	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Database.DSN == "" {
		return errors.New("database dsn is required (DATABASE_URL)")
	}

	if c.Server.Port == "" {
		return errors.New("server port is required")
	}

	return nil
}

// SMTPEnabled reports whether real email delivery is configured.
func (c EmailConfig) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.Username != ""
}
