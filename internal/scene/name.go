package scene

import (
	"strconv"
	"strings"
)

// FileName encodes the identifying chain, task and version into a scene
// file name.
func FileName(show, group, unit, part, task, version, ext string) string {
	return strings.Join([]string{show, group, unit, part, task, version}, "_") + ext
}

// Prefix is the literal leading portion shared by every scene file of a
// part, trailing underscore included.
func Prefix(show, group, unit, part string) string {
	return strings.Join([]string{show, group, unit, part}, "_") + "_"
}

// ParseName decodes a scene file name against a part prefix and a
// program extension. Names with a foreign extension, a foreign prefix,
// an empty task or an unacceptable version token are reported as not
// matching rather than as errors, so legacy files can share the
// directory.
func ParseName(name, prefix, ext string) (task, version string, ok bool) {
	if ext == "" || !strings.HasSuffix(name, ext) {
		return "", "", false
	}
	stem := strings.TrimSuffix(name, ext)
	if !strings.HasPrefix(stem, prefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(stem, prefix)
	cut := strings.LastIndex(rest, "_")
	if cut <= 0 {
		return "", "", false
	}
	task, version = rest[:cut], rest[cut+1:]
	if !acceptVersion(version) {
		return "", "", false
	}
	return task, version, true
}

// acceptVersion admits "v" followed by a parseable non-zero integer.
// Zero is treated as absent, so v000 never surfaces as a version; the
// quirk is load-bearing for existing fixture trees and is kept on
// purpose.
func acceptVersion(token string) bool {
	if len(token) < 2 || token[0] != 'v' {
		return false
	}
	n, err := strconv.Atoi(token[1:])
	if err != nil {
		return false
	}
	return n != 0
}
