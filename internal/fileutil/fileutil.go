// Package fileutil provides small filesystem write helpers for stores
// that persist state next to artist-visible files.
package fileutil

import (
	"fmt"
	"os"
)

// AtomicWrite writes data to path through a sibling tmp file and rename,
// so concurrent readers never observe a partially written file. The tmp
// file is removed when the rename fails.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
