package preflight

import (
	"fmt"
	"os"
	"strings"

	"stagehand/internal/config"
	"stagehand/internal/schema"
)

// CheckEnvironment reports where the mandatory root locations come from.
// By the time preflight runs the config has already validated, so this
// check records provenance rather than failure.
func CheckEnvironment() Result {
	const name = "environment"
	sources := make([]string, 0, 2)
	if strings.TrimSpace(os.Getenv(config.EnvRoot)) != "" {
		sources = append(sources, config.EnvRoot)
	}
	if strings.TrimSpace(os.Getenv(config.EnvShowRoot)) != "" {
		sources = append(sources, config.EnvShowRoot)
	}
	if len(sources) == 0 {
		return Result{Name: name, Passed: true, Detail: "roots from config file"}
	}
	return Result{Name: name, Passed: true, Detail: strings.Join(sources, ", ") + " set"}
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable for the current user.
func CheckDirectoryAccess(name, path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := accessReadWrite(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSchema loads and validates the taxonomy document. The parsed
// schema is returned so launcher checks can reuse it.
func CheckSchema(path string) (Result, *schema.Schema) {
	const name = "schema"
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "schema_path not set"}, nil
	}
	sch, err := schema.LoadFile(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}, nil
	}
	detail := fmt.Sprintf("%s (%d categories, %d programs)", path, len(sch.Categories), len(sch.Programs))
	return Result{Name: name, Passed: true, Detail: detail}, sch
}
