package syscalls

import (
	"github.com/pkg/errors"
)

// absent marks a slot with no syscall. Build rejects empty names, so it
// can never collide with a real entry.
const absent = ""

// Entry is one line of a syscall definition list.
type Entry struct {
	Number int
	ABI    ABI
	Name   string
}

// Table is an immutable number -> name mapping for one architecture.
// Native and x32 numbers live in separate dense arrays so that a lookup in
// one space can never land on an entry of the other.
type Table struct {
	arch  string
	slots int

	native    []string
	nativeABI []ABI

	x32Base int
	x32     []string
}

// Build assembles a table from a definition list. slots is the size of the
// addressable index space; zero means one past the highest defined number.
func Build(arch string, slots int, entries []Entry) (*Table, error) {
	if slots < 0 {
		return nil, errors.Errorf("%s: negative slot count %d", arch, slots)
	}

	var (
		nativeMax = -1
		x32Min    = -1
		x32Max    = -1
	)
	for _, e := range entries {
		switch {
		case e.Number < 0:
			return nil, errors.Wrapf(ErrInvalidNumber, "%s: entry %q has number %d", arch, e.Name, e.Number)
		case e.Name == absent:
			return nil, errors.Errorf("%s: entry %d has no name", arch, e.Number)
		case !e.ABI.valid():
			return nil, errors.Wrapf(ErrInvalidABI, "%s: entry %d (%s)", arch, e.Number, e.Name)
		case slots > 0 && e.Number >= slots:
			return nil, errors.Errorf("%s: entry %d (%s) exceeds %d slots", arch, e.Number, e.Name, slots)
		}

		if e.ABI == ABIX32 {
			if x32Min < 0 || e.Number < x32Min {
				x32Min = e.Number
			}
			if e.Number > x32Max {
				x32Max = e.Number
			}
		} else if e.Number > nativeMax {
			nativeMax = e.Number
		}
	}

	if x32Min >= 0 && x32Min <= nativeMax {
		return nil, errors.Errorf("%s: x32 range starting at %d overlaps native numbers up to %d", arch, x32Min, nativeMax)
	}

	t := &Table{
		arch:      arch,
		slots:     slots,
		native:    make([]string, nativeMax+1),
		nativeABI: make([]ABI, nativeMax+1),
	}
	if x32Min >= 0 {
		t.x32Base = x32Min
		t.x32 = make([]string, x32Max-x32Min+1)
	}
	if t.slots == 0 {
		t.slots = max(nativeMax, x32Max) + 1
	}

	for _, e := range entries {
		var slot *string
		if e.ABI == ABIX32 {
			slot = &t.x32[e.Number-t.x32Base]
		} else {
			slot = &t.native[e.Number]
		}
		if *slot != absent {
			return nil, errors.Errorf("%s: number %d defined twice (%s, %s)", arch, e.Number, *slot, e.Name)
		}
		*slot = e.Name
		if e.ABI != ABIX32 {
			t.nativeABI[e.Number] = e.ABI
		}
	}

	return t, nil
}

// MustBuild is like Build but panics on a malformed definition list. Use it
// only for compiled-in tables.
func MustBuild(arch string, slots int, entries []Entry) *Table {
	t, err := Build(arch, slots, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Arch returns the architecture name the table was built for.
func (t *Table) Arch() string {
	return t.arch
}

// MaxIndex is the size of the addressable index space. Every number at or
// above it resolves to Unknown. For x32 lookups the bound applies after
// X32SyscallBit is stripped.
func (t *Table) MaxIndex() int {
	return t.slots
}

// Entries lists the defined entries of one numbering space in number order.
// Native entries keep the tag they were defined with.
func (t *Table) Entries(abi ABI) []Entry {
	var out []Entry
	if abi.native() {
		for nr, name := range t.native {
			if name != absent {
				out = append(out, Entry{Number: nr, ABI: t.nativeABI[nr], Name: name})
			}
		}
	} else if abi == ABIX32 {
		for i, name := range t.x32 {
			if name != absent {
				out = append(out, Entry{Number: t.x32Base + i, ABI: ABIX32, Name: name})
			}
		}
	}
	return out
}
