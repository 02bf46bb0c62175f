package syscalls

import (
	"strings"

	"github.com/elastic/go-seccomp-bpf/arch"
	"github.com/pkg/errors"
)

// goArch maps uname machine names to the names go-seccomp-bpf knows.
func goArch(machine string) string {
	switch {
	case machine == "x86_64":
		return "amd64"
	case machine == "aarch64":
		return "arm64"
	case machine == "i386":
		return "386"
	case strings.HasPrefix(machine, "armv"):
		return "arm"
	}
	return machine
}

// FromSeccompArch builds a table for another architecture from the syscall
// lists bundled with go-seccomp-bpf. Those lists carry no ABI tags, so all
// entries land in the native space.
func FromSeccompArch(machine string) (*Table, error) {
	name := CanonicalArch(machine)
	info, err := arch.GetInfo(goArch(name))
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedArch, "%s: %v", machine, err)
	}
	// Some architectures are known to the library without a syscall list.
	if len(info.SyscallNumbers) == 0 {
		return nil, errors.Wrapf(ErrUnsupportedArch, "%s: no syscall table", machine)
	}

	entries := make([]Entry, 0, len(info.SyscallNumbers))
	for nr, sc := range info.SyscallNumbers {
		entries = append(entries, Entry{Number: nr, ABI: ABICommon, Name: sc})
	}
	t, err := Build(name, 0, entries)
	if err != nil {
		return nil, errors.Wrapf(err, "seccomp table for %s", name)
	}
	return t, nil
}
