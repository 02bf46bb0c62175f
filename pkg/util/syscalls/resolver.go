package syscalls

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidNumber is returned for negative syscall numbers. A negative
	// number is a caller bug, not an unknown syscall.
	ErrInvalidNumber = errors.New("invalid syscall number")

	// ErrInvalidABI is returned for ABI values outside the known tags.
	ErrInvalidABI = errors.New("invalid syscall abi")
)

// Resolver turns raw syscall numbers into names.
type Resolver interface {
	Lookup(nr int64, abi ABI) (Result, error)
	MaxIndex() int
}

// Result is the outcome of a lookup. Known is false for gaps and for
// numbers outside the table; both render as Unknown.
type Result struct {
	Number int64
	ABI    ABI
	Name   string
	Known  bool
}

// Unknown is the label rendered for numbers without a name.
const Unknown = "unknown"

func (r Result) String() string {
	if !r.Known {
		return Unknown
	}
	return r.Name
}

// Label is the name, or syscall_<n> when the number has no entry.
func (r Result) Label() string {
	if !r.Known {
		return "syscall_" + strconv.FormatInt(r.Number, 10)
	}
	return r.Name
}

// Lookup resolves nr in the numbering space selected by abi. It does not
// allocate. For x32, the __X32_SYSCALL_BIT is stripped before indexing so
// raw register values can be passed through.
func (t *Table) Lookup(nr int64, abi ABI) (Result, error) {
	res := Result{Number: nr, ABI: abi}
	if nr < 0 {
		return res, ErrInvalidNumber
	}

	var name string
	switch {
	case abi.native():
		if nr < int64(len(t.native)) {
			name = t.native[nr]
		}
	case abi == ABIX32:
		idx := nr&^X32SyscallBit - int64(t.x32Base)
		if idx >= 0 && idx < int64(len(t.x32)) {
			name = t.x32[idx]
		}
	default:
		return res, ErrInvalidABI
	}

	if name != absent {
		res.Name = name
		res.Known = true
	}
	return res, nil
}

// Name is a convenience for rendering: the syscall name or syscall_<n>.
// Negative numbers render as syscall_<n> as well.
func Name(r Resolver, nr int64, abi ABI) string {
	res, err := r.Lookup(nr, abi)
	if err != nil {
		return Result{Number: nr}.Label()
	}
	return res.Label()
}
