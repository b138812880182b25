package preflight

import (
	"stagehand/internal/config"
	"stagehand/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Report aggregates every readiness check for the status command.
type Report struct {
	Results  []Result
	Commands []deps.Status
}

// Passed reports whether every check and every non-optional command
// succeeded.
func (r Report) Passed() bool {
	for _, result := range r.Results {
		if !result.Passed {
			return false
		}
	}
	for _, status := range r.Commands {
		if !status.Available && !status.Optional {
			return false
		}
	}
	return true
}

// Run executes all preflight checks for the given config. Launcher
// commands are resolved for goos and only checked when the schema loads.
func Run(cfg *config.Config, goos string) Report {
	var report Report
	if cfg == nil {
		return report
	}

	report.Results = append(report.Results, CheckEnvironment())
	report.Results = append(report.Results, CheckDirectoryAccess("studio root", cfg.Root))
	report.Results = append(report.Results, CheckDirectoryAccess("show root", cfg.ShowRoot))
	if cfg.LogDir != "" {
		report.Results = append(report.Results, CheckDirectoryAccess("log directory", cfg.LogDir))
	}

	schemaResult, sch := CheckSchema(cfg.SchemaPath)
	report.Results = append(report.Results, schemaResult)
	if sch != nil {
		report.Commands = deps.CheckBinaries(deps.FromSchema(sch, goos))
	}
	return report
}
