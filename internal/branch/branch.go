package branch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"stagehand/internal/paths"
	"stagehand/internal/platform"
	"stagehand/internal/schema"
)

// Kind identifies a level of the hierarchy.
type Kind string

const (
	KindShow     Kind = "show"
	KindCategory Kind = "category"
	KindGroup    Kind = "group"
	KindUnit     Kind = "unit"
	KindPart     Kind = "part"
	KindTask     Kind = "task"
)

// Branch is the shared core of every hierarchy node. The typed wrappers
// (Show, Category, ...) differ only in which schema slice and parent they
// bind.
type Branch struct {
	parent    *Branch
	kind      Kind
	name      string
	path      string
	dirs      []schema.DirSpec
	childRoot string
}

func newBranch(parent *Branch, kind Kind, name, parentChildRoot string, spec schema.BranchSpec) (*Branch, error) {
	path, err := paths.Child(parentChildRoot, name)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, name, err)
	}
	return &Branch{
		parent:    parent,
		kind:      kind,
		name:      name,
		path:      path,
		dirs:      spec.Dirs,
		childRoot: filepath.Join(path, spec.Child),
	}, nil
}

func (b *Branch) Kind() Kind      { return b.kind }
func (b *Branch) Name() string    { return b.name }
func (b *Branch) Path() string    { return b.path }
func (b *Branch) Parent() *Branch { return b.parent }

// ChildRootPath is the directory that holds this branch's children. Leaf
// kinds return an empty string.
func (b *Branch) ChildRootPath() string { return b.childRoot }

// Ancestor walks the parent chain, starting at the branch itself, and
// returns the nearest node of the given kind.
func (b *Branch) Ancestor(kind Kind) (*Branch, bool) {
	for cur := b; cur != nil; cur = cur.parent {
		if cur.kind == kind {
			return cur, true
		}
	}
	return nil, false
}

// Identity names the branch and each of its ancestors, one field per
// kind present on the parent chain.
type Identity struct {
	Show     string
	Category string
	Group    string
	Unit     string
	Part     string
	Task     string
}

// Identity collects the names along the parent chain in one walk.
func (b *Branch) Identity() Identity {
	var id Identity
	for cur := b; cur != nil; cur = cur.parent {
		switch cur.kind {
		case KindShow:
			id.Show = cur.name
		case KindCategory:
			id.Category = cur.name
		case KindGroup:
			id.Group = cur.name
		case KindUnit:
			id.Unit = cur.name
		case KindPart:
			id.Part = cur.name
		case KindTask:
			id.Task = cur.name
		}
	}
	return id
}

// create makes the branch directory plus every schema-declared
// subdirectory with its declared permission bits. Directories created
// before a failure remain; there is no rollback.
func (b *Branch) create() error {
	if err := os.Mkdir(b.path, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s %q: %w", b.kind, b.name, ErrExists)
		}
		return fmt.Errorf("create %s %q: %w", b.kind, b.name, err)
	}
	for _, dir := range b.dirs {
		mode, err := platform.ParseMode(dir.Mode)
		if err != nil {
			return fmt.Errorf("create %s %q: %w", b.kind, b.name, err)
		}
		sub := filepath.Join(b.path, dir.Name)
		if err := os.Mkdir(sub, mode.Perm()); err != nil {
			return fmt.Errorf("create %s %q: %w", b.kind, b.name, err)
		}
		// Chmod after mkdir so the declared bits land regardless of umask.
		if err := platform.Apply(sub, mode); err != nil {
			return fmt.Errorf("apply permissions on %s: %w", sub, err)
		}
	}
	return nil
}

// stat verifies the branch directory exists without creating anything.
func (b *Branch) stat() error {
	info, err := os.Stat(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s %q: %w", b.kind, b.name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("stat %s %q: %w", b.kind, b.name, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %q is not a directory: %w", b.kind, b.name, ErrNotFound)
	}
	return nil
}

// children lists the immediate subdirectories of the child root,
// name-sorted. Ordering is part of the contract.
func (b *Branch) children() ([]string, error) {
	names, err := listDirs(b.childRoot)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s %q: %w", b.kind, b.name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("list %s %q: %w", b.kind, b.name, err)
	}
	return names, nil
}

// listDirs returns the names of the directories directly under path.
// os.ReadDir guarantees name order.
func listDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
