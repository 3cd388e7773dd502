// internal/common/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default locations, relative to the working directory.
const (
	DefaultDivisionsPath = "client/public/divisions.json"
	DefaultDistrictsPath = "client/public/districts.json"
	DefaultUpazilasPath  = "client/public/upzillas.json"
	DefaultThanasPath    = "client/public/thanas.json"

	DefaultJSONOutputPath   = "client/public/bangladeshAdministrativeData.json"
	DefaultModuleOutputPath = "client/public/bangladeshAdministrativeData.js"

	DefaultDivisionRange  = 8
	DefaultDistrictSample = 3
)

// Load reads configuration from config.yaml (./configs or .), merges
// config.<APP_ENVIRONMENT>.yaml when present, and applies environment
// overrides. A missing config file is not an error: every key has a default.
// An explicit configFile must exist.
func Load(configFile string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	// Enable ENV override like LOGGING_LEVEL or INPUTS_DIVISIONS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading base config: %w", err)
			}
		}

		env := os.Getenv("APP_ENVIRONMENT")
		if env == "" {
			env = "development"
		}
		v.SetConfigName(fmt.Sprintf("config.%s", env))
		_ = v.MergeInConfig() // ignore error if not found
	}

	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	cfg := Config{
		Report: ReportConfig{
			DivisionRange:  DefaultDivisionRange,
			DistrictSample: DefaultDistrictSample,
		},
	}
	applyDefaults(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "hierarchy-consolidator")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("inputs.divisions", DefaultDivisionsPath)
	v.SetDefault("inputs.districts", DefaultDistrictsPath)
	v.SetDefault("inputs.upazilas", DefaultUpazilasPath)
	v.SetDefault("inputs.thanas", DefaultThanasPath)

	v.SetDefault("outputs.json", DefaultJSONOutputPath)
	v.SetDefault("outputs.module", DefaultModuleOutputPath)

	v.SetDefault("report.division_range", DefaultDivisionRange)
	v.SetDefault("report.district_sample", DefaultDistrictSample)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("metrics.textfile", "")
}

// loadEnvFile loads the first .env found in the usual locations.
func loadEnvFile() string {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal && expanded != "" {
				v.Set(key, expanded)
			}
		}
	}
}

// applyDefaults fills strings left empty by an explicit blank in a config
// file. The report ranges come from viper defaults only, so an explicit 0
// is kept.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "hierarchy-consolidator"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	if cfg.Inputs.Divisions == "" {
		cfg.Inputs.Divisions = DefaultDivisionsPath
	}
	if cfg.Inputs.Districts == "" {
		cfg.Inputs.Districts = DefaultDistrictsPath
	}
	if cfg.Inputs.Upazilas == "" {
		cfg.Inputs.Upazilas = DefaultUpazilasPath
	}
	if cfg.Inputs.Thanas == "" {
		cfg.Inputs.Thanas = DefaultThanasPath
	}

	if cfg.Outputs.JSON == "" {
		cfg.Outputs.JSON = DefaultJSONOutputPath
	}
	if cfg.Outputs.Module == "" {
		cfg.Outputs.Module = DefaultModuleOutputPath
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Report.DivisionRange < 0 {
		return fmt.Errorf("report.division_range must not be negative")
	}
	if cfg.Report.DistrictSample < 0 {
		return fmt.Errorf("report.district_sample must not be negative")
	}
	if filepath.Clean(cfg.Outputs.JSON) == filepath.Clean(cfg.Outputs.Module) {
		return fmt.Errorf("outputs.json and outputs.module must differ")
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format)
	}
	return nil
}
