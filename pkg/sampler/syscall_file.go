package sampler

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

// SyscallState is the parsed content of /proc/<pid>/task/<tid>/syscall.
type SyscallState struct {
	// Running is set when the thread was on CPU and the kernel could not
	// sample its registers.
	Running bool
	// InSyscall is set when the thread is blocked inside a system call.
	InSyscall bool
	// Raw is the syscall register as reported, x32 bit included.
	Raw int64
}

// ParseSyscallFile parses the three shapes the kernel produces:
//
//	running
//	-1 <sp> <pc>
//	<nr> <arg1> ... <arg6> <sp> <pc>
//
// Arguments are not decoded.
func ParseSyscallFile(data []byte) (SyscallState, error) {
	fields := bytes.Fields(data)
	if len(fields) == 0 {
		return SyscallState{}, errors.New("empty syscall file")
	}
	if string(fields[0]) == "running" {
		return SyscallState{Running: true, Raw: -1}, nil
	}

	nr, err := strconv.ParseInt(string(fields[0]), 10, 64)
	if err != nil {
		return SyscallState{}, errors.Wrapf(err, "syscall number %q", fields[0])
	}
	if nr < 0 {
		return SyscallState{Raw: nr}, nil
	}
	return SyscallState{InSyscall: true, Raw: nr}, nil
}
