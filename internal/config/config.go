package config

import (
	"os"
	"strings"

	"sheetgen/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FailurePolicy decides what happens to the remaining jobs once one fails
type FailurePolicy string

const (
	PolicyContinue FailurePolicy = "continue"
	PolicyAbort    FailurePolicy = "abort"
)

// Config represents the complete application configuration
type Config struct {
	Paths PathConfig
	Run   RunConfig
	Log   LogConfig
}

// PathConfig holds file system paths, relative to the invocation directory
type PathConfig struct {
	JobsFile     string `validate:"required"`
	TemplateFile string `validate:"required"`
}

// RunConfig holds job execution settings
type RunConfig struct {
	FailurePolicy FailurePolicy `validate:"required,oneof=continue abort"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Default file locations
const (
	DefaultJobsFile     = "inputs.json"
	DefaultTemplateFile = "templates/code.txt"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths: PathConfig{
			JobsFile:     getEnvOrDefault("SHEETGEN_JOBS_FILE", DefaultJobsFile),
			TemplateFile: getEnvOrDefault("SHEETGEN_TEMPLATE_FILE", DefaultTemplateFile),
		},
		Run: RunConfig{
			FailurePolicy: FailurePolicy(strings.ToLower(getEnvOrDefault("SHEETGEN_FAILURE_POLICY", string(PolicyContinue)))),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return errors.ConfigInvalidf(err, "invalid configuration")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
