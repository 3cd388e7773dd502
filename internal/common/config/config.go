// internal/common/config/config.go
package config

import "bd-admin-hierarchy/internal/models"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Inputs  InputsConfig  `mapstructure:"inputs"`
	Outputs OutputsConfig `mapstructure:"outputs"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// InputsConfig holds the four reference files, one flat JSON array each.
type InputsConfig struct {
	Divisions string `mapstructure:"divisions"`
	Districts string `mapstructure:"districts"`
	Upazilas  string `mapstructure:"upazilas"`
	Thanas    string `mapstructure:"thanas"`
}

// Path returns the configured input file for a collection.
func (i InputsConfig) Path(c models.Collection) string {
	switch c {
	case models.CollectionDivisions:
		return i.Divisions
	case models.CollectionDistricts:
		return i.Districts
	case models.CollectionUpazilas:
		return i.Upazilas
	case models.CollectionThanas:
		return i.Thanas
	}
	return ""
}

type OutputsConfig struct {
	JSON   string `mapstructure:"json"`
	Module string `mapstructure:"module"`
}

// ReportConfig holds the fixed id ranges walked by the hierarchy report.
type ReportConfig struct {
	DivisionRange  int `mapstructure:"division_range"`
	DistrictSample int `mapstructure:"district_sample"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig enables the node_exporter textfile dump when Textfile is set.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}
