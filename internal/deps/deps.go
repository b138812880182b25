// Package deps reports availability of the external launcher commands the
// schema registers per program.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"stagehand/internal/platform"
	"stagehand/internal/schema"
)

// Requirement defines one external command stagehand relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// FromSchema derives one requirement per program action resolved for goos.
// A program without a command for goos yields an empty Command, which
// CheckBinaries reports as unavailable.
func FromSchema(s *schema.Schema, goos string) []Requirement {
	requirements := make([]Requirement, 0, 2*len(s.Programs))
	for _, name := range s.ProgramNames() {
		program, ok := s.Program(name)
		if !ok {
			continue
		}
		create, _ := platform.CommandFor(goos, program.Create)
		open, _ := platform.CommandFor(goos, program.Open)
		requirements = append(requirements,
			Requirement{Name: name + " create", Command: create, Description: program.Name + " scene creation"},
			Requirement{Name: name + " open", Command: open, Description: program.Name + " scene opening"},
		)
	}
	return requirements
}

// CheckBinaries evaluates the provided requirements and reports
// availability. Commands containing a path separator are checked directly
// for existence and the executable bit; bare names resolve through PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		command := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     command,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if command == "" {
			status.Detail = "no command registered for this platform"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(command); err != nil {
			status.Detail = fmt.Sprintf("command %q not available", command)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
