package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"phone-extractor/internal/domain"
)

const (
	defaultServerPort   = "8080"
	defaultMaxFileSize  = 10 * 1024 * 1024
	defaultLogLevel     = "info"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string        `yaml:"port"`
	MaxFileSize    int64         `yaml:"maxFileSize"`
	LogLevel       string        `yaml:"logLevel"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
}

// NewConfig creates a configuration from defaults, the optional YAML file
// named by CONFIG_FILE and the environment, in increasing precedence.
func NewConfig() (domain.Config, error) {
	cfg := &AppConfig{
		ServerPort:     defaultServerPort,
		MaxFileSize:    defaultMaxFileSize,
		LogLevel:       defaultLogLevel,
		AllowedOrigins: []string{"*"},
		ReadTimeout:    defaultReadTimeout,
		WriteTimeout:   defaultWriteTimeout,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	cfg.ServerPort = getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", cfg.ServerPort))
	cfg.MaxFileSize = getEnvInt64OrDefault("MAX_FILE_SIZE", cfg.MaxFileSize)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.AllowedOrigins = getEnvListOrDefault("CORS_ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.ReadTimeout = getEnvDurationOrDefault("READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvDurationOrDefault("WRITE_TIMEOUT", cfg.WriteTimeout)

	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = defaultMaxFileSize
	}
	return cfg, nil
}

// loadFile overlays non-zero values from a YAML file
func (c *AppConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fileCfg.ServerPort != "" {
		c.ServerPort = fileCfg.ServerPort
	}
	if fileCfg.MaxFileSize > 0 {
		c.MaxFileSize = fileCfg.MaxFileSize
	}
	if fileCfg.LogLevel != "" {
		c.LogLevel = fileCfg.LogLevel
	}
	if len(fileCfg.AllowedOrigins) > 0 {
		c.AllowedOrigins = fileCfg.AllowedOrigins
	}
	if fileCfg.ReadTimeout > 0 {
		c.ReadTimeout = fileCfg.ReadTimeout
	}
	if fileCfg.WriteTimeout > 0 {
		c.WriteTimeout = fileCfg.WriteTimeout
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetReadTimeout returns the HTTP server read timeout
func (c *AppConfig) GetReadTimeout() time.Duration {
	return c.ReadTimeout
}

// GetWriteTimeout returns the HTTP server write timeout
func (c *AppConfig) GetWriteTimeout() time.Duration {
	return c.WriteTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
