//go:build windows

package command

import "os"

// readable opens dir once; Windows has no access(2) equivalent for ACLs.
func readable(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	return f.Close()
}
