package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	BaseDir string `yaml:"base_dir" envconfig:"BASE_DIR"`
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	LogsDir string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// ReportConfig describes the report being generated. The period and version
// are stamped into the insights document metadata.
type ReportConfig struct {
	Period          string `yaml:"period" envconfig:"PERIOD" default:"Q3 2024"`
	AnalysisVersion string `yaml:"analysis_version" envconfig:"ANALYSIS_VERSION" default:"1.0"`
	BaseFilename    string `yaml:"base_filename" envconfig:"BASE_FILENAME" default:"export_insights"`
	ValueColumn     string `yaml:"value_column" envconfig:"VALUE_COLUMN" default:"2024Q3"`
}

// Load loads configuration from environment variables and an optional
// config file. Environment variables take precedence over file values.
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("RWEX", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Overlay config file if present
	configFile := os.Getenv("RWEX_CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		// Re-apply environment variables so they win over file values
		if err := envconfig.Process("RWEX", &cfg); err != nil {
			return nil, fmt.Errorf("failed to apply env overrides: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Logging.Output {
	case "console", "file", "both", "":
	default:
		return fmt.Errorf("invalid logging output %q (expected console, file, or both)", c.Logging.Output)
	}

	if c.Report.Period == "" {
		return fmt.Errorf("report period must not be empty")
	}
	if c.Report.BaseFilename == "" {
		return fmt.Errorf("report base filename must not be empty")
	}

	return nil
}
