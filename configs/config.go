package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from YAML file
func LoadConfig(configPath string) (*Config, error) {
	logrus.Infof("Loading configuration from: %s", configPath)

	// Pick up NIMBUS_API_TOKEN and friends from a local .env file when present.
	_ = godotenv.Load()

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file does not exist: %s", configPath)
	}

	// Read YAML file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %v", err)
	}

	var config Config

	// Parse YAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file: %v", err)
	}

	// Validate and set defaults
	setDefaults(&config)
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	logrus.Info("Configuration loaded successfully")
	return &config, nil
}

// setDefaults sets default values for configuration fields if they are not provided
func setDefaults(config *Config) {
	// Agent defaults
	if config.Agent.LogLevel == "" {
		config.Agent.LogLevel = "INFO"
	}
	if config.Agent.PlanGlob == "" {
		config.Agent.PlanGlob = "plans/*.yaml"
	}
	if config.Agent.ReportDir == "" {
		config.Agent.ReportDir = "reports"
	}

	// Nimbus defaults
	if config.Nimbus.Token == "" {
		config.Nimbus.Token = os.Getenv("NIMBUS_API_TOKEN")
	}
}

// validateConfig validates the configuration and returns an error if invalid
func validateConfig(config *Config) error {
	if config.Nimbus.BaseURL == "" {
		return fmt.Errorf("nimbus.base_url is required")
	}
	if config.Nimbus.Token == "" {
		return fmt.Errorf("nimbus.token is required (or set NIMBUS_API_TOKEN)")
	}
	if config.Nimbus.RequestTimeout < 0 {
		return fmt.Errorf("nimbus.request_timeout must not be negative")
	}
	return nil
}
