//go:build windows

package platform

import (
	"io/fs"
	"os"

	"golang.org/x/sys/windows"
)

// Apply approximates POSIX permissions on Windows. Modes that are group
// or world writable grant full access to all local users; setgid and
// sticky mark the grant inheritable so subdirectories created later
// receive the same access. Compatibility shim for mixed-platform
// studios, not a security boundary.
func Apply(path string, mode fs.FileMode) error {
	if err := os.Chmod(path, mode.Perm()); err != nil {
		return err
	}
	if mode.Perm()&0o022 == 0 {
		return nil
	}

	everyone, err := windows.CreateWellKnownSid(windows.WinWorldSid)
	if err != nil {
		return err
	}

	var inheritance uint32 = windows.NO_INHERITANCE
	if mode&(fs.ModeSetgid|fs.ModeSticky) != 0 {
		inheritance = windows.CONTAINER_INHERIT_ACE | windows.OBJECT_INHERIT_ACE
	}

	entries := []windows.EXPLICIT_ACCESS{{
		AccessPermissions: windows.GENERIC_ALL,
		AccessMode:        windows.GRANT_ACCESS,
		Inheritance:       inheritance,
		Trustee: windows.TRUSTEE{
			TrusteeForm:  windows.TRUSTEE_IS_SID,
			TrusteeType:  windows.TRUSTEE_IS_WELL_KNOWN_GROUP,
			TrusteeValue: windows.TrusteeValueFromSID(everyone),
		},
	}}

	acl, err := windows.ACLFromEntries(entries, nil)
	if err != nil {
		return err
	}
	return windows.SetNamedSecurityInfo(
		path,
		windows.SE_FILE_OBJECT,
		windows.DACL_SECURITY_INFORMATION,
		nil,
		nil,
		acl,
		nil,
	)
}
