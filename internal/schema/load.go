package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Parse decodes a schema document without validating it. The format is
// chosen by the file extension of name (".toml", ".yaml", ".yml", ".json").
func Parse(name string, data []byte) (*Schema, error) {
	var s Schema
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrConfig, filepath.Base(name), err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrConfig, filepath.Base(name), err)
		}
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrConfig, filepath.Base(name), err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported schema format %q", ErrConfig, filepath.Ext(name))
	}
	return &s, nil
}

// LoadFile reads, decodes, normalizes, and validates a schema document.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	s, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// normalize canonicalizes values without inventing defaults: extensions gain
// a leading dot and surrounding whitespace is dropped from user-entered
// strings.
func (s *Schema) normalize() {
	for name, program := range s.Programs {
		program.Name = strings.TrimSpace(program.Name)
		program.Extension = strings.TrimSpace(program.Extension)
		if program.Extension != "" && !strings.HasPrefix(program.Extension, ".") {
			program.Extension = "." + program.Extension
		}
		s.Programs[name] = program
	}
	s.Show.Label = strings.TrimSpace(s.Show.Label)
	s.Category.Label = strings.TrimSpace(s.Category.Label)
	for name, cat := range s.Categories {
		cat.Group.Label = strings.TrimSpace(cat.Group.Label)
		cat.Unit.Label = strings.TrimSpace(cat.Unit.Label)
		for partName, part := range cat.Parts {
			part.Label = strings.TrimSpace(part.Label)
			cat.Parts[partName] = part
		}
		s.Categories[name] = cat
	}
}
