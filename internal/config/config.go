// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/qalgebra/cmatrix"
)

// Config holds the CLI configuration
type Config struct {
	RelTol    float64 // relative tolerance for approximate comparisons
	AbsTol    float64 // absolute tolerance for approximate comparisons
	Exact     bool    // compare A·A† with the identity exactly in unitarity checks
	LogLevel  string
	LogPretty bool
}

// Load reads configuration from environment variables. With no arguments an
// optional .env in the working directory is loaded first; explicit files
// must exist. Variables already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		// Load .env file if it exists
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}

	cfg := &Config{
		RelTol:    getEnvAsFloat("QALGEBRA_TOLERANCE_RTOL", cmatrix.DefaultRelTol),
		AbsTol:    getEnvAsFloat("QALGEBRA_TOLERANCE_ATOL", cmatrix.DefaultAbsTol),
		Exact:     getEnvAsBool("QALGEBRA_EXACT", false),
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that both tolerances are finite and non-negative.
func (c *Config) Validate() error {
	for name, v := range map[string]float64{"relative": c.RelTol, "absolute": c.AbsTol} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("invalid %s tolerance %v: must be finite and non-negative", name, v)
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
