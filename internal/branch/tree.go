package branch

import (
	"fmt"
	"path/filepath"

	"stagehand/internal/paths"
	"stagehand/internal/scene"
	"stagehand/internal/schema"
)

// Tree binds a validated schema to a show root directory. It is the
// entry point for every hierarchy operation and carries no mutable
// state.
type Tree struct {
	schema   *schema.Schema
	showRoot string
}

// NewTree wraps a validated schema and the absolute show root.
func NewTree(s *schema.Schema, showRoot string) *Tree {
	return &Tree{schema: s, showRoot: showRoot}
}

func (t *Tree) Schema() *schema.Schema { return t.schema }
func (t *Tree) ShowRoot() string       { return t.showRoot }

// Shows lists the show directories under the show root, name-sorted.
func (t *Tree) Shows() ([]string, error) {
	names, err := listDirs(t.showRoot)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return names, nil
}

// Show is the hierarchy root node for one production.
type Show struct {
	*Branch
	tree *Tree
}

func (t *Tree) newShow(name string) (*Show, error) {
	b, err := newBranch(nil, KindShow, name, t.showRoot, t.schema.Show)
	if err != nil {
		return nil, err
	}
	return &Show{Branch: b, tree: t}, nil
}

// CreateShow creates the show directory and its declared subdirectories.
func (t *Tree) CreateShow(name string) (*Show, error) {
	show, err := t.newShow(name)
	if err != nil {
		return nil, err
	}
	if err := show.create(); err != nil {
		return nil, err
	}
	return show, nil
}

// Show returns the named show after verifying it exists on disk.
func (t *Tree) Show(name string) (*Show, error) {
	show, err := t.newShow(name)
	if err != nil {
		return nil, err
	}
	if err := show.stat(); err != nil {
		return nil, err
	}
	return show, nil
}

// Category groups work of one kind (shots, assets, ...) inside a show.
// Only names declared by the schema are constructible.
type Category struct {
	*Branch
	tree *Tree
	spec schema.CategorySpec
}

func (s *Show) newCategory(name string) (*Category, error) {
	spec, ok := s.tree.schema.Categories[name]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", name, ErrInvalidCategory)
	}
	b, err := newBranch(s.Branch, KindCategory, name, s.childRoot, s.tree.schema.Category)
	if err != nil {
		return nil, err
	}
	return &Category{Branch: b, tree: s.tree, spec: spec}, nil
}

func (s *Show) CreateCategory(name string) (*Category, error) {
	cat, err := s.newCategory(name)
	if err != nil {
		return nil, err
	}
	if err := cat.create(); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Show) Category(name string) (*Category, error) {
	cat, err := s.newCategory(name)
	if err != nil {
		return nil, err
	}
	if err := cat.stat(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Categories lists the category directories present on disk, name-sorted.
func (s *Show) Categories() ([]string, error) {
	return s.children()
}

// Spec returns the schema slice backing this category.
func (c *Category) Spec() schema.CategorySpec { return c.spec }

// Group is the second-level container inside a category, a sequence for
// shots or an asset type for assets.
type Group struct {
	*Branch
	category *Category
}

func (c *Category) newGroup(name string) (*Group, error) {
	b, err := newBranch(c.Branch, KindGroup, name, c.childRoot, c.spec.Group)
	if err != nil {
		return nil, err
	}
	return &Group{Branch: b, category: c}, nil
}

func (c *Category) CreateGroup(name string) (*Group, error) {
	group, err := c.newGroup(name)
	if err != nil {
		return nil, err
	}
	if err := group.create(); err != nil {
		return nil, err
	}
	return group, nil
}

func (c *Category) Group(name string) (*Group, error) {
	group, err := c.newGroup(name)
	if err != nil {
		return nil, err
	}
	if err := group.stat(); err != nil {
		return nil, err
	}
	return group, nil
}

func (c *Category) Groups() ([]string, error) {
	return c.children()
}

// Unit is a single shot or asset within a group.
type Unit struct {
	*Branch
	category *Category
}

func (g *Group) newUnit(name string) (*Unit, error) {
	b, err := newBranch(g.Branch, KindUnit, name, g.childRoot, g.category.spec.Unit)
	if err != nil {
		return nil, err
	}
	return &Unit{Branch: b, category: g.category}, nil
}

func (g *Group) CreateUnit(name string) (*Unit, error) {
	unit, err := g.newUnit(name)
	if err != nil {
		return nil, err
	}
	if err := unit.create(); err != nil {
		return nil, err
	}
	return unit, nil
}

func (g *Group) Unit(name string) (*Unit, error) {
	unit, err := g.newUnit(name)
	if err != nil {
		return nil, err
	}
	if err := unit.stat(); err != nil {
		return nil, err
	}
	return unit, nil
}

func (g *Group) Units() ([]string, error) {
	return g.children()
}

// Part is a work discipline (compositing, lighting, ...) inside a unit.
// Parts are leaves of the directory-backed hierarchy: their children are
// tasks, which live as scene files rather than directories.
type Part struct {
	*Branch
	category *Category
	spec     schema.PartSpec
}

func (u *Unit) newPart(name string) (*Part, error) {
	spec, ok := u.category.spec.Parts[name]
	if !ok {
		return nil, fmt.Errorf("part %q is not declared by category %q: %w", name, u.category.name, ErrNotFound)
	}
	path, err := paths.Child(u.childRoot, name)
	if err != nil {
		return nil, fmt.Errorf("part %q: %w", name, err)
	}
	b := &Branch{parent: u.Branch, kind: KindPart, name: name, path: path, dirs: spec.Dirs}
	return &Part{Branch: b, category: u.category, spec: spec}, nil
}

func (u *Unit) CreatePart(name string) (*Part, error) {
	part, err := u.newPart(name)
	if err != nil {
		return nil, err
	}
	if err := part.create(); err != nil {
		return nil, err
	}
	return part, nil
}

func (u *Unit) Part(name string) (*Part, error) {
	part, err := u.newPart(name)
	if err != nil {
		return nil, err
	}
	if err := part.stat(); err != nil {
		return nil, err
	}
	return part, nil
}

// Parts lists the unit's part directories, keeping only names the schema
// declares. Unknown directories are skipped, not errors, so legacy trees
// keep listing.
func (u *Unit) Parts() ([]string, error) {
	names, err := u.children()
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := u.category.spec.Parts[name]; ok {
			parts = append(parts, name)
		}
	}
	return parts, nil
}

// Spec returns the schema slice backing this part.
func (p *Part) Spec() schema.PartSpec { return p.spec }

// Programs lists the programs registered for this part, sorted.
func (p *Part) Programs() []string { return p.spec.ProgramNames() }

// ProgramDir resolves the scene directory one of the part's registered
// programs keeps its task files in.
func (p *Part) ProgramDir(program string) (string, error) {
	rel, ok := p.spec.Programs[program]
	if !ok {
		return "", fmt.Errorf("program %q is not registered for part %q: %w", program, p.name, ErrNotFound)
	}
	return filepath.Join(p.path, filepath.FromSlash(rel)), nil
}

// Tasks scans one program's scene directory and returns the task index
// discovered from scene file names.
func (p *Part) Tasks(program string) (scene.Index, error) {
	dir, err := p.ProgramDir(program)
	if err != nil {
		return nil, err
	}
	spec, ok := p.category.tree.schema.Program(program)
	if !ok {
		return nil, fmt.Errorf("program %q is not declared: %w", program, ErrNotFound)
	}
	id := p.Identity()
	return scene.Scan(dir, scene.Prefix(id.Show, id.Group, id.Unit, id.Part), spec.Extension)
}

// Task is a named strand of work inside a part, bound to one program.
// Tasks have no directory of their own: they exist as name tokens inside
// scene files under the program's scene directory.
type Task struct {
	*Branch
	part    *Part
	program string
	spec    schema.Program
}

// Task binds a task name to one of the part's registered programs. The
// task need not have scenes yet.
func (p *Part) Task(program, name string) (*Task, error) {
	if err := paths.ValidateSegment(name); err != nil {
		return nil, fmt.Errorf("task %q: %w", name, err)
	}
	dir, err := p.ProgramDir(program)
	if err != nil {
		return nil, err
	}
	spec, ok := p.category.tree.schema.Program(program)
	if !ok {
		return nil, fmt.Errorf("program %q is not declared: %w", program, ErrNotFound)
	}
	b := &Branch{parent: p.Branch, kind: KindTask, name: name, path: dir}
	return &Task{Branch: b, part: p, program: program, spec: spec}, nil
}

func (t *Task) Part() *Part                 { return t.part }
func (t *Task) Program() string             { return t.program }
func (t *Task) ProgramSpec() schema.Program { return t.spec }

// SceneName encodes this task and a version into a scene file name.
func (t *Task) SceneName(version string) string {
	id := t.Identity()
	return scene.FileName(id.Show, id.Group, id.Unit, id.Part, id.Task, version, t.spec.Extension)
}

// ScenePath is the absolute path of the versioned scene file.
func (t *Task) ScenePath(version string) string {
	return filepath.Join(t.path, t.SceneName(version))
}

// Versions lists the versions discovered for this task, ascending.
func (t *Task) Versions() ([]string, error) {
	index, err := t.part.Tasks(t.program)
	if err != nil {
		return nil, err
	}
	return index[t.name], nil
}
