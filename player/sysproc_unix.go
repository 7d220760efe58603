//go:build !windows

package player

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// The player runs in its own process group so a kill also reaches the
// decoder helpers it forks.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	groupErr := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return errors.Join(groupErr, err)
	}
	return nil
}
