//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// detach starts the child in a new session so it survives termdrop exiting
// and is not hit by signals sent to termdrop's process group.
func detach(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setsid = true
}
