package schema

import (
	"errors"
	"sort"
)

// ErrConfig marks a malformed or incomplete schema document. Load failures
// wrap it so callers can classify them with errors.Is.
var ErrConfig = errors.New("schema config")

// DirSpec declares one subdirectory created alongside a branch node. Mode is
// a 4-character permission string: one special digit (setuid/setgid/sticky)
// followed by three permission digits, e.g. "2775".
type DirSpec struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	Mode string `toml:"mode" yaml:"mode" json:"mode"`
}

// BranchSpec describes one hierarchy level: its display label, the
// subdirectories created with every node at that level, and the name of the
// subdirectory that holds the node's children.
type BranchSpec struct {
	Label string    `toml:"label" yaml:"label" json:"label"`
	Dirs  []DirSpec `toml:"dirs" yaml:"dirs" json:"dirs"`
	Child string    `toml:"child" yaml:"child" json:"child"`
}

// PartSpec describes a work part (lighting, compositing, ...) within a
// category: its subdirectories plus the relative directory each registered
// program keeps its task scenes in.
type PartSpec struct {
	Label    string            `toml:"label" yaml:"label" json:"label"`
	Dirs     []DirSpec         `toml:"dirs" yaml:"dirs" json:"dirs"`
	Programs map[string]string `toml:"programs" yaml:"programs" json:"programs"`
}

// CategorySpec carries the per-category branch shapes below the category
// level: how groups and units look and which parts a unit offers.
type CategorySpec struct {
	Group BranchSpec          `toml:"group" yaml:"group" json:"group"`
	Unit  BranchSpec          `toml:"unit" yaml:"unit" json:"unit"`
	Parts map[string]PartSpec `toml:"parts" yaml:"parts" json:"parts"`
}

// Program describes one external creative application: its display name,
// scene file extension, and the create/open launcher command path per
// operating system ("linux", "darwin", "windows").
type Program struct {
	Name      string            `toml:"name" yaml:"name" json:"name"`
	Extension string            `toml:"extension" yaml:"extension" json:"extension"`
	Create    map[string]string `toml:"create" yaml:"create" json:"create"`
	Open      map[string]string `toml:"open" yaml:"open" json:"open"`
}

// Schema is the root taxonomy document. It is loaded once at process start
// and read-only afterwards; every component receives it explicitly.
type Schema struct {
	Show       BranchSpec              `toml:"show" yaml:"show" json:"show"`
	Category   BranchSpec              `toml:"category" yaml:"category" json:"category"`
	Categories map[string]CategorySpec `toml:"categories" yaml:"categories" json:"categories"`
	Programs   map[string]Program      `toml:"programs" yaml:"programs" json:"programs"`
}

// CategoryNames returns the declared category names sorted ascending.
func (s *Schema) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProgramNames returns the declared program names sorted ascending.
func (s *Schema) ProgramNames() []string {
	names := make([]string, 0, len(s.Programs))
	for name := range s.Programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Program looks up a program spec by name.
func (s *Schema) Program(name string) (Program, bool) {
	p, ok := s.Programs[name]
	return p, ok
}

// HasDir reports whether the branch spec declares a subdirectory with the
// given name.
func (b BranchSpec) HasDir(name string) bool {
	for _, dir := range b.Dirs {
		if dir.Name == name {
			return true
		}
	}
	return false
}

// PartNames returns the part names declared for the category, sorted
// ascending.
func (c CategorySpec) PartNames() []string {
	names := make([]string, 0, len(c.Parts))
	for name := range c.Parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProgramNames returns the programs registered for the part, sorted
// ascending.
func (p PartSpec) ProgramNames() []string {
	names := make([]string, 0, len(p.Programs))
	for name := range p.Programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
