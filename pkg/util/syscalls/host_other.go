//go:build !linux

package syscalls

import "runtime"

// HostArch returns the architecture the binary was built for.
func HostArch() (string, error) {
	return CanonicalArch(runtime.GOARCH), nil
}
