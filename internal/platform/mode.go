package platform

import (
	"fmt"
	"io/fs"
	"strconv"
)

// ParseMode converts a four-digit octal permission string ("2775") into
// an fs.FileMode. The leading digit carries the special bits: setuid,
// setgid, sticky.
func ParseMode(mode string) (fs.FileMode, error) {
	if len(mode) != 4 {
		return 0, fmt.Errorf("permission %q must be exactly four octal digits", mode)
	}
	value, err := strconv.ParseUint(mode, 8, 16)
	if err != nil {
		return 0, fmt.Errorf("permission %q must be exactly four octal digits", mode)
	}

	parsed := fs.FileMode(value & 0o777)
	if value&0o4000 != 0 {
		parsed |= fs.ModeSetuid
	}
	if value&0o2000 != 0 {
		parsed |= fs.ModeSetgid
	}
	if value&0o1000 != 0 {
		parsed |= fs.ModeSticky
	}
	return parsed, nil
}
