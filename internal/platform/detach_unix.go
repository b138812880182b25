//go:build unix

package platform

import (
	"os/exec"
	"syscall"
)

// Detach configures cmd to start in its own session so the launched
// editor survives the caller exiting.
func Detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
