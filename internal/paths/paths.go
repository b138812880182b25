package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateSegment checks that name is usable as a single directory-tree
// segment: non-empty, no path separators, not "." or "..".
func ValidateSegment(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty name")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name %q must not contain path separators", name)
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("name %q must be relative", name)
	}
	return nil
}

// Child resolves the directory of a named child under childRoot. It is pure
// string computation; the same inputs always yield the same path.
func Child(childRoot, name string) (string, error) {
	if err := ValidateSegment(name); err != nil {
		return "", err
	}
	return filepath.Join(childRoot, name), nil
}

// Join appends segments to root, validating each segment and ensuring the
// result stays inside root.
func Join(root string, segments ...string) (string, error) {
	for _, segment := range segments {
		if err := ValidateSegment(segment); err != nil {
			return "", err
		}
	}
	joined := filepath.Join(append([]string{root}, segments...)...)
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(joined))
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(filepath.ToSlash(rel), "../") {
		return "", fmt.Errorf("path %q escapes root", joined)
	}
	return filepath.Clean(joined), nil
}
