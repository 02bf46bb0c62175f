package syscalls

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// ErrUnsupportedArch is returned when no table exists for an architecture.
var ErrUnsupportedArch = errors.New("unsupported architecture")

type tableSet map[string]*Table

// Registry maps architecture names to tables. Readers never lock: every
// Register publishes a new immutable set.
type Registry struct {
	tables atomic.Pointer[tableSet]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.tables.Store(&tableSet{})
	return r
}

// DefaultRegistry returns a registry holding the compiled-in x86-64 table.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewX86_64())
	return r
}

// Register adds t under its architecture name, replacing any previous table
// for that name.
func (r *Registry) Register(t *Table) {
	key := CanonicalArch(t.Arch())
	for {
		old := r.tables.Load()
		next := make(tableSet, len(*old)+1)
		for k, v := range *old {
			next[k] = v
		}
		next[key] = t
		if r.tables.CompareAndSwap(old, &next) {
			return
		}
	}
}

// Table returns the table registered for arch.
func (r *Registry) Table(arch string) (*Table, error) {
	if t, ok := (*r.tables.Load())[CanonicalArch(arch)]; ok {
		return t, nil
	}
	return nil, errors.Wrap(ErrUnsupportedArch, arch)
}

// Resolver returns the table for arch, building and registering one from
// the seccomp architecture tables if none is registered yet.
func (r *Registry) Resolver(arch string) (*Table, error) {
	if t, err := r.Table(arch); err == nil {
		return t, nil
	}
	t, err := FromSeccompArch(arch)
	if err != nil {
		return nil, err
	}
	r.Register(t)
	return t, nil
}

// Architectures lists the registered architecture names.
func (r *Registry) Architectures() []string {
	set := *r.tables.Load()
	names := make([]string, 0, len(set))
	for k := range set {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// CanonicalArch maps Go and kernel spellings to the uname machine name.
func CanonicalArch(arch string) string {
	switch arch {
	case "amd64", "x86-64", "x64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "386", "i686", "i586", "x86":
		return "i386"
	}
	return arch
}
