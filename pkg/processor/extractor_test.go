package processor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsikrishna6572/threadsampler/pkg/util/syscalls"
)

func fill(buf *FlightBuffer, writes int, pid uint32) {
	for i := 0; i < writes; i++ {
		buf.Events[i%MaxEvents] = Event{PID: pid, Syscall: uint32(i), TS: uint64(i)}
	}
	buf.Index = uint32(writes)
}

func TestReorderPartial(t *testing.T) {
	var buf FlightBuffer
	fill(&buf, 3, 7)

	got := Reorder(buf)
	require.Len(t, got, 3)
	assert.Equal(t, []uint64{0, 1, 2}, []uint64{got[0].TS, got[1].TS, got[2].TS})
}

func TestReorderWrapped(t *testing.T) {
	var buf FlightBuffer
	fill(&buf, MaxEvents+10, 7)

	got := Reorder(buf)
	require.Len(t, got, MaxEvents)
	assert.Equal(t, uint64(10), got[0].TS)
	assert.Equal(t, uint64(MaxEvents+9), got[MaxEvents-1].TS)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].TS, got[i].TS)
	}
}

func TestReorderSkipsEmptySlots(t *testing.T) {
	var buf FlightBuffer
	fill(&buf, 4, 7)
	buf.Events[1].PID = 0

	assert.Len(t, Reorder(buf), 3)
	assert.Empty(t, Reorder(FlightBuffer{}))
}

func TestBuildReport(t *testing.T) {
	proc := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(proc, "42"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(proc, "42", "cmdline"), []byte("nginx\x00-g\x00daemon off;\x00"), 0644))

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	x := &Extractor{
		Resolver:  syscalls.NewX86_64(),
		ProcMount: proc,
		Now:       func() time.Time { return at },
	}

	var buf FlightBuffer
	buf.Events[0] = Event{PID: 42, Syscall: 0, TS: 1}
	buf.Events[1] = Event{PID: 42, Syscall: 335, TS: 2}
	buf.Events[2] = Event{PID: 42, Syscall: syscalls.X32SyscallBit | 547, TS: 3}
	buf.Index = 3
	buf.Frozen = 1

	rep, ok := x.BuildReport(42, buf)
	require.True(t, ok)
	assert.Equal(t, uint32(42), rep.PID)
	assert.Equal(t, "unknown", rep.Process)
	assert.Equal(t, "nginx -g daemon off;", rep.Cmdline)
	assert.Equal(t, "2024-03-01T12:00:00Z", rep.CreatedAt)

	require.Len(t, rep.Events, 3)
	assert.Equal(t, "read", rep.Events[0].SyscallName)
	assert.Equal(t, "syscall_335", rep.Events[1].SyscallName)
	assert.Equal(t, "pwritev2", rep.Events[2].SyscallName)
	assert.Equal(t, syscalls.ABIX32, rep.Events[2].ABI)
	assert.Equal(t, int64(547), rep.Events[2].Syscall)

	_, ok = x.BuildReport(42, FlightBuffer{})
	assert.False(t, ok)
}
