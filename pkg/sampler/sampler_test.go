package sampler

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsikrishna6572/threadsampler/pkg/util/syscalls"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeThread struct {
	tid     int
	comm    string
	state   string
	syscall string
}

func statLine(pid int, comm, state string) string {
	return fmt.Sprintf("%d (%s) %s 1 %d %d 0 -1 4194304 1000 0 0 0 10 5 0 0 20 0 1 0 100 10000000 500 "+
		"18446744073709551615 1 1 0 0 0 0 0 0 0 0 0 0 17 3 0 0 0 0 0 0 0 0 0 0 0 0 0\n", pid, comm, state, pid, pid)
}

// writeProc lays out <root>/<pid>/{stat,task/<tid>/{stat,syscall}}.
func writeProc(t *testing.T, root string, pid int, threads ...fakeThread) {
	t.Helper()
	pidDir := filepath.Join(root, strconv.Itoa(pid))
	require.NoError(t, os.MkdirAll(pidDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pidDir, "stat"), []byte(statLine(pid, threads[0].comm, threads[0].state)), 0644))

	for _, th := range threads {
		dir := filepath.Join(pidDir, "task", strconv.Itoa(th.tid))
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "stat"), []byte(statLine(th.tid, th.comm, th.state)), 0644))
		if th.syscall != "" {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "syscall"), []byte(th.syscall), 0644))
		}
	}
}

func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeProc(t, root, 100,
		fakeThread{tid: 100, comm: "postgres", state: "S", syscall: "232 0x4 0x7ffd 0x40 0xffffffff 0x0 0x0 0x7ffc 0x7f12\n"},
		fakeThread{tid: 101, comm: "postgres", state: "D", syscall: "17 0x9 0x55d0 0x2000 0x1000 0x0 0x0 0x7ffc 0x7f12\n"},
		fakeThread{tid: 102, comm: "postgres", state: "R", syscall: "running\n"},
	)
	writeProc(t, root, 200,
		fakeThread{tid: 200, comm: "x32app", state: "D", syscall: "1073742371 0x3 0x0 0x0 0x0 0x0 0x0 0x7ffc 0x7f12\n"},
		fakeThread{tid: 201, comm: "x32app", state: "D", syscall: "335 0x0 0x0 0x0 0x0 0x0 0x0 0x7ffc 0x7f12\n"},
		fakeThread{tid: 202, comm: "x32app", state: "D", syscall: "-1 0x7ffc 0x7f12\n"},
	)
	// Non-numeric entries are ignored by procfs.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "self"), 0755))
	return root
}

type countingObserver struct {
	samples int
	errors  int
}

func (c *countingObserver) ObserveSample(Sample) { c.samples++ }
func (c *countingObserver) ObserveError()        { c.errors++ }

func newTestSampler(t *testing.T, root string, opts ...Option) *Sampler {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedTime })}, opts...)
	s, err := New(root, syscalls.NewX86_64(), opts...)
	require.NoError(t, err)
	return s
}

func byTID(samples []Sample) map[int]Sample {
	m := make(map[int]Sample, len(samples))
	for _, s := range samples {
		m[s.TID] = s
	}
	return m
}

func TestSampleActiveThreads(t *testing.T) {
	obs := &countingObserver{}
	s := newTestSampler(t, fixture(t), WithObserver(obs))

	samples, err := s.Sample(context.Background())
	require.NoError(t, err)
	got := byTID(samples)
	require.Len(t, got, 5)
	assert.NotContains(t, got, 100)
	assert.Equal(t, 5, obs.samples)
	assert.Zero(t, obs.errors)

	assert.Equal(t, Sample{
		Time: fixedTime, PID: 100, TID: 101, Comm: "postgres", State: "D",
		InSyscall: true, Syscall: 17, ABI: syscalls.ABICommon, SyscallName: "pread64", SyscallKnown: true,
	}, got[101])

	assert.False(t, got[102].InSyscall)
	assert.Equal(t, int64(-1), got[102].Syscall)
	assert.Empty(t, got[102].SyscallName)

	assert.Equal(t, int64(547), got[200].Syscall)
	assert.Equal(t, syscalls.ABIX32, got[200].ABI)
	assert.Equal(t, "pwritev2", got[200].SyscallName)

	assert.True(t, got[201].InSyscall)
	assert.Equal(t, "syscall_335", got[201].SyscallName)
	assert.False(t, got[201].SyscallKnown)

	assert.False(t, got[202].InSyscall)
}

func TestSampleAllThreads(t *testing.T) {
	s := newTestSampler(t, fixture(t), WithAllThreads(true))

	samples, err := s.Sample(context.Background())
	require.NoError(t, err)
	got := byTID(samples)
	require.Len(t, got, 6)
	assert.Equal(t, "epoll_wait", got[100].SyscallName)
	assert.Equal(t, "S", got[100].State)
}

func TestSampleSkipsBrokenThreads(t *testing.T) {
	root := fixture(t)
	require.NoError(t, os.Remove(filepath.Join(root, "100", "task", "101", "syscall")))
	require.NoError(t, os.WriteFile(filepath.Join(root, "200", "task", "201", "syscall"), []byte("garbage\n"), 0644))

	obs := &countingObserver{}
	s := newTestSampler(t, root, WithObserver(obs))
	samples, err := s.Sample(context.Background())
	require.NoError(t, err)

	got := byTID(samples)
	assert.NotContains(t, got, 101)
	assert.NotContains(t, got, 201)
	assert.Equal(t, 2, obs.errors)
}

func TestSamplePermissionDenied(t *testing.T) {
	root := fixture(t)
	denied := filepath.Join(root, "100", "task", "101", "syscall")
	read := func(path string) ([]byte, error) {
		if path == denied {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
		}
		return os.ReadFile(path)
	}

	obs := &countingObserver{}
	s := newTestSampler(t, root, WithObserver(obs), WithReadFile(read))
	samples, err := s.Sample(context.Background())
	require.NoError(t, err)

	got := byTID(samples)
	require.Contains(t, got, 101)
	assert.Equal(t, "D", got[101].State)
	assert.False(t, got[101].InSyscall)
	assert.Equal(t, int64(-1), got[101].Syscall)
	assert.Empty(t, got[101].SyscallName)
	assert.Zero(t, obs.errors)
}

func TestSampleCancelled(t *testing.T) {
	s := newTestSampler(t, fixture(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Sample(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewMissingMount(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), syscalls.NewX86_64())
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	s := newTestSampler(t, fixture(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	passes := 0
	err := s.Run(ctx, time.Millisecond, func(samples []Sample) error {
		passes++
		assert.Len(t, samples, 5)
		if passes == 3 {
			cancel()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, passes)
}

func TestRunSinkError(t *testing.T) {
	s := newTestSampler(t, fixture(t))
	boom := fmt.Errorf("sink full")
	err := s.Run(context.Background(), time.Millisecond, func([]Sample) error { return boom })
	assert.Equal(t, boom, err)
}
