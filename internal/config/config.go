package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"dbname"`
	SSLMode         string `yaml:"sslmode" split_words:"true"`
	MaxIdleConns    int    `yaml:"max_idle_conns" split_words:"true"`
	MaxOpenConns    int    `yaml:"max_open_conns" split_words:"true"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" split_words:"true"`
	AutoMigrate     bool   `yaml:"auto_migrate" split_words:"true"`
}

// JWTConfig holds session token settings
type JWTConfig struct {
	Secret                string `yaml:"secret"`
	AccessTokenExpiration string `yaml:"access_token_expiration" split_words:"true"`
	Issuer                string `yaml:"issuer"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CacheConfig selects and tunes the listing view cache
type CacheConfig struct {
	Driver        string `yaml:"driver"`
	TTL           string `yaml:"ttl"`
	Size          int    `yaml:"size"`
	RedisAddr     string `yaml:"redis_addr" split_words:"true"`
	RedisPassword string `yaml:"redis_password" split_words:"true"`
	RedisDB       int    `yaml:"redis_db" split_words:"true"`
}

// AuthConfig holds session cookie and login throttling settings
type AuthConfig struct {
	CookieName   string  `yaml:"cookie_name" split_words:"true"`
	CookieSecure bool    `yaml:"cookie_secure" split_words:"true"`
	LoginRate    float64 `yaml:"login_rate" split_words:"true"`
	LoginBurst   int     `yaml:"login_burst" split_words:"true"`
}

// SeedConfig controls the seed endpoint
type SeedConfig struct {
	Enabled    bool `yaml:"enabled"`
	BcryptCost int  `yaml:"bcrypt_cost" split_words:"true"`
}

// CORSConfig holds allowed cross-origin settings
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" split_words:"true"`
}

// Config structure represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Logging  LoggingConfig  `yaml:"logging"`
	Cache    CacheConfig    `yaml:"cache"`
	Auth     AuthConfig     `yaml:"auth"`
	Seed     SeedConfig     `yaml:"seed"`
	CORS     CORSConfig     `yaml:"cors"`
}

// LoadConfig loads configuration from a yaml file, an optional .env file and environment variables
func LoadConfig(configPath, envPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config, envPath); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.Name = "courseadmin"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.AutoMigrate = true

	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "courseadmin"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Cache.Driver = "memory"
	config.Cache.TTL = "5m"
	config.Cache.Size = 256

	config.Auth.CookieName = "session"
	config.Auth.LoginRate = 0.2
	config.Auth.LoginBurst = 5

	config.Seed.Enabled = false
	config.Seed.BcryptCost = 10
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime format: %w", err)
	}

	switch config.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown cache driver %q", config.Cache.Driver)
	}

	if _, err := time.ParseDuration(config.Cache.TTL); err != nil {
		return fmt.Errorf("invalid cache ttl format: %w", err)
	}

	if config.Cache.Driver == "redis" && config.Cache.RedisAddr == "" {
		return fmt.Errorf("redis address is required for the redis cache driver")
	}

	if config.Auth.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		sslMode,
	)
}

// GetMigrateConnectionString returns the connection string in the form the pgx5 migrate driver expects
func (c *Config) GetMigrateConnectionString() string {
	return "pgx5" + c.GetPostgresConnectionString()[len("postgres"):]
}
