// Package config loads the module's runtime configuration from environment
// variables. Consumers load once at process start and pass the pieces down.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"personal-crm/reconcile/matching"
)

// Config holds all reconciliation configuration
type Config struct {
	Logger   LoggerConfig
	Matching MatchingConfig
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // Default: "info" (trace, debug, info, warn, error, fatal, panic)
	Environment string // production|development|staging|test (affects format)
}

// MatchingConfig holds fuzzy matching thresholds and weights
type MatchingConfig struct {
	MinSimilarityThreshold float64 // Default: 0.3 (corpus query floor)
	ConfidenceThreshold    float64 // Default: 0.5 (minimum score to suggest a match)
	NameWeight             float64 // Default: 0.6
	MethodWeight           float64 // Default: 0.4
	NameMismatchThreshold  float64 // Default: 0.5 (below this, flag name_mismatch)
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed for %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Constants for default values
const (
	DefaultLogLevel              = "info"
	DefaultEnvironment           = "development"
	DefaultNameMismatchThreshold = 0.5
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", DefaultLogLevel),
			Environment: getEnv("NODE_ENV", DefaultEnvironment),
		},
		Matching: MatchingConfig{
			MinSimilarityThreshold: getEnvAsFloat("MATCH_MIN_SIMILARITY", matching.ImportConfig.MinSimilarityThreshold),
			ConfidenceThreshold:    getEnvAsFloat("MATCH_CONFIDENCE_THRESHOLD", matching.ImportConfig.ConfidenceThreshold),
			NameWeight:             getEnvAsFloat("MATCH_NAME_WEIGHT", matching.ImportConfig.NameWeight),
			MethodWeight:           getEnvAsFloat("MATCH_METHOD_WEIGHT", matching.ImportConfig.MethodWeight),
			NameMismatchThreshold:  getEnvAsFloat("NAME_MISMATCH_THRESHOLD", DefaultNameMismatchThreshold),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration for errors
func (c *Config) Validate() error {
	var errors ValidationErrors

	validLogLevels := []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
	if !contains(validLogLevels, strings.ToLower(c.Logger.Level)) {
		errors = append(errors, ValidationError{
			Field:   "LOG_LEVEL",
			Message: fmt.Sprintf("invalid log level %q, must be one of: %v", c.Logger.Level, validLogLevels),
		})
	}

	validEnvs := []string{"production", "development", "staging", "test"}
	if !contains(validEnvs, c.Logger.Environment) {
		errors = append(errors, ValidationError{
			Field:   "NODE_ENV",
			Message: fmt.Sprintf("invalid environment %q, must be one of: %v", c.Logger.Environment, validEnvs),
		})
	}

	if err := c.Matching.FuzzyConfig().Validate(); err != nil {
		errors = append(errors, ValidationError{
			Field:   "MATCH_*",
			Message: err.Error(),
		})
	}

	if c.Matching.NameMismatchThreshold < 0 || c.Matching.NameMismatchThreshold > 1 {
		errors = append(errors, ValidationError{
			Field:   "NAME_MISMATCH_THRESHOLD",
			Message: fmt.Sprintf("threshold must be between 0 and 1, got %v", c.Matching.NameMismatchThreshold),
		})
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Logger.Environment == "production"
}

// FuzzyConfig converts the matching section into the weights the matching
// layer consumes.
func (m MatchingConfig) FuzzyConfig() matching.FuzzyConfig {
	return matching.FuzzyConfig{
		MinSimilarityThreshold: m.MinSimilarityThreshold,
		ConfidenceThreshold:    m.ConfidenceThreshold,
		NameWeight:             m.NameWeight,
		MethodWeight:           m.MethodWeight,
	}
}

// Helper functions for parsing environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// TestConfig creates a test configuration with sensible defaults for testing
func TestConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:       "debug",
			Environment: "test",
		},
		Matching: MatchingConfig{
			MinSimilarityThreshold: matching.ImportConfig.MinSimilarityThreshold,
			ConfidenceThreshold:    matching.ImportConfig.ConfidenceThreshold,
			NameWeight:             matching.ImportConfig.NameWeight,
			MethodWeight:           matching.ImportConfig.MethodWeight,
			NameMismatchThreshold:  DefaultNameMismatchThreshold,
		},
	}
}
