package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// Index maps a task name to its discovered versions in ascending
// lexicographic order. "v100" sorts before "v20"; consumers that need
// numeric order must widen their version numbers instead.
type Index map[string][]string

// Tasks returns the task names in ascending order.
func (ix Index) Tasks() []string {
	names := make([]string, 0, len(ix))
	for name := range ix {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Latest returns the highest recorded version for the task.
func (ix Index) Latest(task string) (string, bool) {
	versions := ix[task]
	if len(versions) == 0 {
		return "", false
	}
	return versions[len(versions)-1], true
}

// Scan decodes every matching scene file directly under dir into an
// Index. Subdirectories, irregular files and names that fail ParseName
// are skipped. A directory that does not exist yields an empty Index,
// not an error: a part with no scenes yet is a normal state.
func Scan(dir, prefix, ext string) (Index, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return Index{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan scenes in %s: %w", dir, err)
	}

	index := Index{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		task, version, ok := ParseName(entry.Name(), prefix, ext)
		if !ok {
			continue
		}
		index[task] = append(index[task], version)
	}
	for task := range index {
		sort.Strings(index[task])
	}
	return index, nil
}
