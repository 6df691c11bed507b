package config

import (
	"os"
	"strings"
	"testing"
)

// WithEnv is a test helper that sets environment variables for the duration of a test
func WithEnv(t *testing.T, key, value string) {
	t.Helper()
	original := os.Getenv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if original == "" {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, original)
		}
	})
}

func TestConfig_Load_Defaults(t *testing.T) {
	WithEnv(t, "NODE_ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Logger.Level != DefaultLogLevel {
		t.Errorf("Expected default log level %q, got %q", DefaultLogLevel, cfg.Logger.Level)
	}

	if cfg.Matching.MinSimilarityThreshold != 0.3 {
		t.Errorf("Expected default min similarity 0.3, got %v", cfg.Matching.MinSimilarityThreshold)
	}

	if cfg.Matching.ConfidenceThreshold != 0.5 {
		t.Errorf("Expected default confidence threshold 0.5, got %v", cfg.Matching.ConfidenceThreshold)
	}

	if cfg.Matching.NameMismatchThreshold != DefaultNameMismatchThreshold {
		t.Errorf("Expected default name mismatch threshold %v, got %v", DefaultNameMismatchThreshold, cfg.Matching.NameMismatchThreshold)
	}
}

func TestConfig_Load_Overrides(t *testing.T) {
	WithEnv(t, "NODE_ENV", "production")
	WithEnv(t, "LOG_LEVEL", "warn")
	WithEnv(t, "MATCH_CONFIDENCE_THRESHOLD", "0.7")
	WithEnv(t, "NAME_MISMATCH_THRESHOLD", "0.6")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Logger.Level != "warn" {
		t.Errorf("Expected log level warn, got %s", cfg.Logger.Level)
	}

	if !cfg.IsProduction() {
		t.Error("Expected IsProduction() to be true")
	}

	if cfg.Matching.ConfidenceThreshold != 0.7 {
		t.Errorf("Expected confidence threshold 0.7, got %v", cfg.Matching.ConfidenceThreshold)
	}

	if cfg.Matching.NameMismatchThreshold != 0.6 {
		t.Errorf("Expected name mismatch threshold 0.6, got %v", cfg.Matching.NameMismatchThreshold)
	}
}

func TestConfig_Load_UnparseableFloatFallsBack(t *testing.T) {
	WithEnv(t, "NODE_ENV", "development")
	WithEnv(t, "MATCH_CONFIDENCE_THRESHOLD", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Matching.ConfidenceThreshold != 0.5 {
		t.Errorf("Expected fallback confidence threshold 0.5, got %v", cfg.Matching.ConfidenceThreshold)
	}
}

func TestConfig_Validate_InvalidLogLevel(t *testing.T) {
	WithEnv(t, "NODE_ENV", "development")
	WithEnv(t, "LOG_LEVEL", "loud")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("Expected LOG_LEVEL in error, got: %v", err)
	}
}

func TestConfig_Validate_InvalidEnvironment(t *testing.T) {
	WithEnv(t, "NODE_ENV", "space")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid environment")
	}
	if !strings.Contains(err.Error(), "NODE_ENV") {
		t.Errorf("Expected NODE_ENV in error, got: %v", err)
	}
}

func TestConfig_Validate_ThresholdOutOfRange(t *testing.T) {
	WithEnv(t, "NODE_ENV", "development")
	WithEnv(t, "NAME_MISMATCH_THRESHOLD", "1.5")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for out-of-range threshold")
	}
	if !strings.Contains(err.Error(), "NAME_MISMATCH_THRESHOLD") {
		t.Errorf("Expected NAME_MISMATCH_THRESHOLD in error, got: %v", err)
	}
}

func TestConfig_Validate_InvalidWeights(t *testing.T) {
	WithEnv(t, "NODE_ENV", "development")
	WithEnv(t, "MATCH_NAME_WEIGHT", "-0.5")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for negative weight")
	}
	if !strings.Contains(err.Error(), "MATCH_") {
		t.Errorf("Expected MATCH_* in error, got: %v", err)
	}
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("TestConfig() should validate cleanly: %v", err)
	}
	if cfg.Logger.Environment != "test" {
		t.Errorf("Expected test environment, got %s", cfg.Logger.Environment)
	}
}
