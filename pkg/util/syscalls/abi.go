package syscalls

import (
	"github.com/pkg/errors"
)

// ABI identifies the numbering space a syscall entry belongs to.
type ABI uint8

const (
	ABICommon ABI = iota
	ABI64
	ABIX32
)

var abiNames = [...]string{
	ABICommon: "common",
	ABI64:     "64",
	ABIX32:    "x32",
}

func (a ABI) String() string {
	if !a.valid() {
		return "invalid"
	}
	return abiNames[a]
}

func (a ABI) valid() bool {
	return int(a) < len(abiNames)
}

// native reports whether the ABI resolves through the native 64-bit space.
// The common and 64 tags only document where the kernel table came from.
func (a ABI) native() bool {
	return a == ABICommon || a == ABI64
}

// MarshalText renders the ABI tag in reports.
func (a ABI) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, errors.Wrapf(ErrInvalidABI, "abi %d", uint8(a))
	}
	return []byte(abiNames[a]), nil
}

// UnmarshalText parses the ABI tag from configs and reports.
func (a *ABI) UnmarshalText(text []byte) error {
	v, err := ParseABI(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseABI accepts the tags used in the kernel syscall tables. An empty
// string selects the native space.
func ParseABI(s string) (ABI, error) {
	switch s {
	case "", "common", "native":
		return ABICommon, nil
	case "64":
		return ABI64, nil
	case "x32":
		return ABIX32, nil
	}
	return ABICommon, errors.Wrapf(ErrInvalidABI, "%q", s)
}
