package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	JWT     JWTConfig
	Access  AccessConfig
	Session SessionConfig
	Log     LogConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// AccessConfig holds the shared access password gate. PasswordHash takes a
// bcrypt hash; when it is empty, Password is compared directly, which keeps
// local development simple.
type AccessConfig struct {
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"`
}

// SessionConfig holds wizard session store settings.
type SessionConfig struct {
	TTL            time.Duration `mapstructure:"ttl"`
	SweepInterval  time.Duration `mapstructure:"sweep_interval"`
	MaxPerInstance int           `mapstructure:"max_per_instance"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the ANEXOS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ANEXOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "12h")
	v.SetDefault("jwt.issuer", "anexos")

	// Access gate defaults
	v.SetDefault("access.password", "demo2024")
	v.SetDefault("access.password_hash", "")

	// Session defaults
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.sweep_interval", "10m")
	v.SetDefault("session.max_per_instance", 10000)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "ANEXOS_SERVER_PORT",
		"server.read_timeout":      "ANEXOS_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "ANEXOS_SERVER_WRITE_TIMEOUT",
		"server.environment":       "ANEXOS_SERVER_ENVIRONMENT",
		"jwt.secret":               "ANEXOS_JWT_SECRET",
		"jwt.access_expiry":        "ANEXOS_JWT_ACCESS_EXPIRY",
		"jwt.issuer":               "ANEXOS_JWT_ISSUER",
		"access.password":          "ANEXOS_ACCESS_PASSWORD",
		"access.password_hash":     "ANEXOS_ACCESS_PASSWORD_HASH",
		"session.ttl":              "ANEXOS_SESSION_TTL",
		"session.sweep_interval":   "ANEXOS_SESSION_SWEEP_INTERVAL",
		"session.max_per_instance": "ANEXOS_SESSION_MAX_PER_INSTANCE",
		"log.level":                "ANEXOS_LOG_LEVEL",
		"log.format":               "ANEXOS_LOG_FORMAT",
		"cors.allowed_origins":     "ANEXOS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ANEXOS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ANEXOS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Access = AccessConfig{
		Password:     v.GetString("access.password"),
		PasswordHash: v.GetString("access.password_hash"),
	}
	cfg.Session = SessionConfig{
		TTL:            v.GetDuration("session.ttl"),
		SweepInterval:  v.GetDuration("session.sweep_interval"),
		MaxPerInstance: v.GetInt("session.max_per_instance"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
