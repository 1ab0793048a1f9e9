package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yukikurage/hiring-platform-api/internal/constants"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDriver      string `yaml:"db_driver"`
	DBHost        string `yaml:"db_host"`
	DBPort        string `yaml:"db_port"`
	DBUser        string `yaml:"db_user"`
	DBPassword    string `yaml:"db_password"`
	DBName        string `yaml:"db_name"`
	DBSSLMode     string `yaml:"db_ssl_mode"`
	SQLitePath    string `yaml:"sqlite_path"`
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	SessionStore  string `yaml:"session_store"`
	SessionSecret string `yaml:"session_secret"`
	JWTSecret     string `yaml:"jwt_secret"`
	JWTTTLHours   int    `yaml:"jwt_ttl_hours"`
	TokenDenylist string `yaml:"token_denylist"`
	GinMode       string `yaml:"gin_mode"`
	Port          string `yaml:"port"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	GoogleClientID string `yaml:"google_client_id"`

	SendGridAPIKey  string `yaml:"sendgrid_api_key"`
	InviteFromEmail string `yaml:"invite_from_email"`
}

// Load reads .env (if present), an optional YAML file named by CONFIG_FILE,
// and finally environment variables, which take precedence.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		DBDriver:           "mysql",
		DBHost:             "localhost",
		DBPort:             "3306",
		DBUser:             "hiring",
		DBPassword:         "hiringpassword",
		DBName:             "hiring_platform",
		DBSSLMode:          "disable",
		SQLitePath:         "hiring.db",
		RedisHost:          "localhost",
		RedisPort:          "6379",
		SessionStore:       "cookie",
		SessionSecret:      "default-secret-key-change-me",
		JWTSecret:          "default-jwt-secret-change-me",
		JWTTTLHours:        int(constants.DefaultTokenTTL / time.Hour),
		TokenDenylist:      "none",
		GinMode:            "debug",
		Port:               "8080",
		LogLevel:           "info",
		LogFormat:          "text",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		InviteFromEmail:    "no-reply@example.com",
	}
}

func (c *Config) overrideWithEnv() {
	c.DBDriver = getEnv("DB_DRIVER", c.DBDriver)
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnv("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.DBSSLMode = getEnv("DB_SSL_MODE", c.DBSSLMode)
	c.SQLitePath = getEnv("SQLITE_PATH", c.SQLitePath)
	c.RedisHost = getEnv("REDIS_HOST", c.RedisHost)
	c.RedisPort = getEnv("REDIS_PORT", c.RedisPort)
	c.SessionStore = getEnv("SESSION_STORE", c.SessionStore)
	c.SessionSecret = getEnv("SESSION_SECRET", c.SessionSecret)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.TokenDenylist = getEnv("TOKEN_DENYLIST", c.TokenDenylist)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", c.GoogleClientID)
	c.SendGridAPIKey = getEnv("SENDGRID_API_KEY", c.SendGridAPIKey)
	c.InviteFromEmail = getEnv("INVITE_FROM_EMAIL", c.InviteFromEmail)

	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			c.JWTTTLHours = hours
		} else {
			c.JWTTTLHours = 0
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORSAllowedOrigins = splitList(v)
	}
}

// Validate checks the values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.SessionStore {
	case "cookie", "redis":
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.SessionStore)
	}
	switch c.TokenDenylist {
	case "none", "redis":
	default:
		return fmt.Errorf("unsupported TOKEN_DENYLIST %q", c.TokenDenylist)
	}
	if c.JWTTTLHours <= 0 {
		return errors.New("JWT_TTL_HOURS must be positive")
	}
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == defaults().JWTSecret) {
		return errors.New("JWT_SECRET must be set in release mode")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
