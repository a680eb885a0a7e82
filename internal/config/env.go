package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envSections maps each config section to its environment variable prefix
func envSections(config *Config) map[string]interface{} {
	return map[string]interface{}{
		"SERVER": &config.Server,
		"DB":     &config.Database,
		"JWT":    &config.JWT,
		"LOG":    &config.Logging,
		"CACHE":  &config.Cache,
		"AUTH":   &config.Auth,
		"SEED":   &config.Seed,
		"CORS":   &config.CORS,
	}
}

// loadFromEnv overrides configuration with environment variables.
// Variables from envPath are loaded first and never replace variables already set.
func loadFromEnv(config *Config, envPath string) error {
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("failed to load env file %s: %w", envPath, err)
			}
		}
	}

	for prefix, section := range envSections(config) {
		if err := envconfig.Process(prefix, section); err != nil {
			return fmt.Errorf("failed to process %s_* variables: %w", prefix, err)
		}
	}

	return nil
}
