//go:build unix

package platform

import (
	"io/fs"
	"os"
)

// Apply sets the directory's permission bits. os.Chmod honors setuid,
// setgid and sticky on unix hosts, so the declared mode lands verbatim.
func Apply(path string, mode fs.FileMode) error {
	return os.Chmod(path, mode)
}
