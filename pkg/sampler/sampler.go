package sampler

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/procfs"
	"github.com/sirupsen/logrus"

	"github.com/vamsikrishna6572/threadsampler/pkg/util/syscalls"
)

// Sample is one thread observed during a sampling pass.
type Sample struct {
	Time        time.Time    `json:"timestamp"`
	PID         int          `json:"pid"`
	TID         int          `json:"tid"`
	Comm        string       `json:"comm"`
	State       string       `json:"state"`
	InSyscall   bool         `json:"in_syscall"`
	Syscall     int64        `json:"syscall"`
	ABI         syscalls.ABI `json:"abi"`
	SyscallName string       `json:"syscall_name,omitempty"`
	// SyscallKnown is false when SyscallName is only a syscall_<n> fallback.
	SyscallKnown bool `json:"syscall_known"`
}

// Observer receives every kept sample and every skipped thread.
type Observer interface {
	ObserveSample(Sample)
	ObserveError()
}

// Sampler takes snapshots of thread activity from procfs.
type Sampler struct {
	fs       procfs.FS
	mount    string
	resolver syscalls.Resolver
	all      bool
	observer Observer
	now      func() time.Time
	readFile func(string) ([]byte, error)
	log      *logrus.Entry
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithAllThreads keeps sleeping threads too.
func WithAllThreads(all bool) Option {
	return func(s *Sampler) { s.all = all }
}

// WithObserver reports samples to o.
func WithObserver(o Observer) Option {
	return func(s *Sampler) { s.observer = o }
}

// WithClock overrides the sample timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Sampler) { s.now = now }
}

// WithReadFile replaces the reader used for per-thread syscall files.
func WithReadFile(read func(string) ([]byte, error)) Option {
	return func(s *Sampler) { s.readFile = read }
}

// WithLogger sets the logger used for skipped threads.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Sampler) { s.log = log }
}

// New returns a sampler reading the procfs mounted at mount.
func New(mount string, resolver syscalls.Resolver, opts ...Option) (*Sampler, error) {
	pfs, err := procfs.NewFS(mount)
	if err != nil {
		return nil, errors.Wrapf(err, "open procfs at %s", mount)
	}
	s := &Sampler{
		fs:       pfs,
		mount:    mount,
		resolver: resolver,
		now:      time.Now,
		readFile: os.ReadFile,
		log:      logrus.WithField("component", "sampler"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sample walks every thread once. Threads that vanish mid-walk are skipped.
func (s *Sampler) Sample(ctx context.Context) ([]Sample, error) {
	procs, err := s.fs.AllProcs()
	if err != nil {
		return nil, errors.Wrap(err, "list processes")
	}

	now := s.now()
	var out []Sample
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		threads, err := s.fs.AllThreads(p.PID)
		if err != nil {
			s.skip(p.PID, 0, err)
			continue
		}
		for _, t := range threads {
			sample, err := s.thread(p.PID, t)
			if err != nil {
				s.skip(p.PID, t.PID, err)
				continue
			}
			if !s.all && !active(sample.State) {
				continue
			}
			sample.Time = now
			if s.observer != nil {
				s.observer.ObserveSample(sample)
			}
			out = append(out, sample)
		}
	}
	return out, nil
}

func (s *Sampler) thread(pid int, t procfs.Proc) (Sample, error) {
	stat, err := t.Stat()
	if err != nil {
		return Sample{}, errors.Wrap(err, "stat")
	}
	sample := Sample{
		PID:     pid,
		TID:     t.PID,
		Comm:    stat.Comm,
		State:   stat.State,
		Syscall: -1,
	}

	data, err := s.readFile(filepath.Join(s.mount, strconv.Itoa(pid), "task", strconv.Itoa(t.PID), "syscall"))
	if err != nil {
		// Other users' threads are unreadable without CAP_SYS_PTRACE.
		if errors.Is(err, fs.ErrPermission) {
			return sample, nil
		}
		return Sample{}, errors.Wrap(err, "read syscall")
	}
	state, err := ParseSyscallFile(data)
	if err != nil {
		return Sample{}, err
	}
	if !state.InSyscall {
		return sample, nil
	}

	nr, abi := syscalls.SplitRaw(state.Raw)
	res, err := s.resolver.Lookup(nr, abi)
	if err != nil {
		return Sample{}, err
	}
	sample.InSyscall = true
	sample.Syscall = nr
	sample.ABI = abi
	sample.SyscallName = res.Label()
	sample.SyscallKnown = res.Known
	return sample, nil
}

func (s *Sampler) skip(pid, tid int, err error) {
	if s.observer != nil {
		s.observer.ObserveError()
	}
	s.log.WithFields(logrus.Fields{"pid": pid, "tid": tid}).WithError(err).Debug("skipping thread")
}

// active reports whether a thread state is worth sampling by default:
// running or in uninterruptible sleep.
func active(state string) bool {
	return state == "R" || state == "D"
}

// Run samples every interval until ctx is done and hands each pass to sink.
// A sink error stops the loop and is returned.
func (s *Sampler) Run(ctx context.Context, interval time.Duration, sink func([]Sample) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		samples, err := s.Sample(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil:
			s.log.WithError(err).Warn("sampling pass failed")
		default:
			if err := sink(samples); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
