//go:build linux

package syscalls

import (
	"golang.org/x/sys/unix"
)

// HostArch returns the machine name of the running kernel.
func HostArch() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Machine[:]), nil
}
