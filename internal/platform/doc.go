// Package platform isolates the host-specific corners of the pipeline:
// octal permission strings, per-OS launcher command resolution, and
// detaching editor processes from the caller. Everything above this
// package stays platform-agnostic.
package platform
