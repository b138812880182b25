package platform

import "strings"

// CommandFor looks up the launcher command registered for the given
// operating system. The second return reports whether a usable command
// was found; blank entries count as absent.
func CommandFor(goos string, commands map[string]string) (string, bool) {
	command := strings.TrimSpace(commands[goos])
	if command == "" {
		return "", false
	}
	return command, true
}
