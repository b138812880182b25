package schema

import (
	"fmt"
	"path/filepath"
	"strings"

	"stagehand/internal/paths"
)

// Validate checks the whole document recursively. The first failure aborts
// the load; there is no partial acceptance. Every error wraps ErrConfig.
func (s *Schema) Validate() error {
	if err := validateBranch("show", s.Show); err != nil {
		return err
	}
	if err := validateBranch("category", s.Category); err != nil {
		return err
	}
	if len(s.Categories) == 0 {
		return configErrorf("categories must declare at least one category")
	}
	for _, name := range s.CategoryNames() {
		if err := s.validateCategory(name, s.Categories[name]); err != nil {
			return err
		}
	}
	if len(s.Programs) == 0 {
		return configErrorf("programs must declare at least one program")
	}
	for _, name := range s.ProgramNames() {
		if err := validateProgram(name, s.Programs[name]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) validateCategory(name string, cat CategorySpec) error {
	prefix := "categories." + name
	if err := validateBranch(prefix+".group", cat.Group); err != nil {
		return err
	}
	if err := validateBranch(prefix+".unit", cat.Unit); err != nil {
		return err
	}
	if len(cat.Parts) == 0 {
		return configErrorf("%s.parts must declare at least one part", prefix)
	}
	for _, partName := range cat.PartNames() {
		if err := s.validatePart(prefix+".parts."+partName, cat.Parts[partName]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) validatePart(prefix string, part PartSpec) error {
	if part.Label == "" {
		return configErrorf("%s.label must be set", prefix)
	}
	if err := validateDirs(prefix, part.Dirs); err != nil {
		return err
	}
	if len(part.Programs) == 0 {
		return configErrorf("%s.programs must map at least one program", prefix)
	}
	for program, dir := range part.Programs {
		if _, ok := s.Programs[program]; !ok {
			return configErrorf("%s.programs references undeclared program %q", prefix, program)
		}
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return configErrorf("%s.programs.%s directory must be set", prefix, program)
		}
		if filepath.IsAbs(dir) || strings.HasPrefix(filepath.ToSlash(dir), "../") || dir == ".." {
			return configErrorf("%s.programs.%s directory must stay inside the part", prefix, program)
		}
	}
	return nil
}

func validateBranch(prefix string, b BranchSpec) error {
	if b.Label == "" {
		return configErrorf("%s.label must be set", prefix)
	}
	if err := validateDirs(prefix, b.Dirs); err != nil {
		return err
	}
	if b.Child == "" {
		return configErrorf("%s.child must be set", prefix)
	}
	if !b.HasDir(b.Child) {
		return configErrorf("%s.child %q is not among its dirs", prefix, b.Child)
	}
	return nil
}

func validateDirs(prefix string, dirs []DirSpec) error {
	for i, dir := range dirs {
		if dir.Name == "" {
			return configErrorf("%s.dirs[%d].name must be set", prefix, i)
		}
		if err := paths.ValidateSegment(dir.Name); err != nil {
			return configErrorf("%s.dirs[%d].name %q must be a plain directory name", prefix, i, dir.Name)
		}
		if len(dir.Mode) != 4 {
			return configErrorf("%s.dirs[%d].mode %q must be exactly 4 characters", prefix, i, dir.Mode)
		}
	}
	return nil
}

func validateProgram(name string, p Program) error {
	prefix := "programs." + name
	if p.Name == "" {
		return configErrorf("%s.name must be set", prefix)
	}
	if p.Extension == "" {
		return configErrorf("%s.extension must be set", prefix)
	}
	if err := validateCommands(prefix+".create", p.Create); err != nil {
		return err
	}
	return validateCommands(prefix+".open", p.Open)
}

func validateCommands(prefix string, commands map[string]string) error {
	if len(commands) == 0 {
		return configErrorf("%s must map at least one operating system to a command", prefix)
	}
	for goos, command := range commands {
		if strings.TrimSpace(command) == "" {
			return configErrorf("%s.%s must be set", prefix, goos)
		}
	}
	return nil
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}
