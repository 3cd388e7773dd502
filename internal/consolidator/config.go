// internal/consolidator/config.go
package consolidator

import (
	"bd-admin-hierarchy/internal/common/config"
)

type Config struct {
	Inputs           config.InputsConfig
	JSONOutputPath   string
	ModuleOutputPath string
	Report           ReportOptions
	MetricsTextfile  string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Inputs:           cfg.Inputs,
		JSONOutputPath:   cfg.Outputs.JSON,
		ModuleOutputPath: cfg.Outputs.Module,
		Report: ReportOptions{
			DivisionRange:  cfg.Report.DivisionRange,
			DistrictSample: cfg.Report.DistrictSample,
		},
		MetricsTextfile: cfg.Metrics.Textfile,
	}
}
