package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsikrishna6572/threadsampler/pkg/sampler"
	"github.com/vamsikrishna6572/threadsampler/pkg/util/syscalls"
)

var at = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func samples() []sampler.Sample {
	return []sampler.Sample{
		{Time: at, PID: 100, TID: 101, Comm: "postgres", State: "D", InSyscall: true, Syscall: 17, SyscallName: "pread64", SyscallKnown: true},
		{Time: at, PID: 100, TID: 102, Comm: "postgres", State: "R", Syscall: -1},
		{Time: at, PID: 200, TID: 200, Comm: "x32app", State: "D", InSyscall: true, Syscall: 547, ABI: syscalls.ABIX32, SyscallName: "pwritev2", SyscallKnown: true},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "text")
	require.NoError(t, err)
	require.NoError(t, w.Write(samples()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "TIMESTAMP"))
	assert.Contains(t, lines[1], "pread64")
	assert.True(t, strings.HasSuffix(lines[2], " -"))
	assert.Contains(t, lines[3], "pwritev2 [x32]")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, "json")
	require.NoError(t, err)
	require.NoError(t, w.Write(samples()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &got))
	assert.Equal(t, "x32", got["abi"])
	assert.Equal(t, "pwritev2", got["syscall_name"])
	assert.Equal(t, 547.0, got["syscall"])
}

func TestNewWriterUnknownFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, "xml")
	assert.Error(t, err)
}

func TestSaveJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := SaveJSON(dir, Filename(42, at), map[string]int{"pid": 42})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "42_1709294400000000000.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pid": 42}`, string(data))
}
