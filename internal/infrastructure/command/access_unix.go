//go:build !windows

package command

import "golang.org/x/sys/unix"

// readable reports whether the current user may list and enter dir.
func readable(dir string) error {
	return unix.Access(dir, unix.R_OK|unix.X_OK)
}
