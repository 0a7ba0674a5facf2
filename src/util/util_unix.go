//go:build !windows

package util

import (
	"os"

	"golang.org/x/sys/unix"
)

// SetNonblock puts the file descriptor into non-blocking mode
func SetNonblock(file *os.File, nonblock bool) {
	unix.SetNonblock(int(file.Fd()), nonblock)
}

// Read executes read(2) on the file descriptor
func Read(fd int, b []byte) (int, error) {
	return unix.Read(fd, b)
}
