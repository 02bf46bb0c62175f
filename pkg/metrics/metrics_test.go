package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsikrishna6572/threadsampler/pkg/sampler"
	"github.com/vamsikrishna6572/threadsampler/pkg/util/syscalls"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	c.ObserveSample(sampler.Sample{State: "D", InSyscall: true, Syscall: 17, SyscallName: "pread64", SyscallKnown: true})
	c.ObserveSample(sampler.Sample{State: "D", InSyscall: true, Syscall: 17, SyscallName: "pread64", SyscallKnown: true})
	c.ObserveSample(sampler.Sample{State: "R", Syscall: -1})
	c.ObserveSample(sampler.Sample{State: "D", InSyscall: true, Syscall: 335, ABI: syscalls.ABICommon, SyscallName: "syscall_335"})
	c.ObserveSample(sampler.Sample{State: "D", InSyscall: true, Syscall: 600, ABI: syscalls.ABIX32, SyscallName: "syscall_600"})
	c.ObserveError()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.samples.WithLabelValues("D", "pread64")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.samples.WithLabelValues("R", "-")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.unknown.WithLabelValues("common")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.unknown.WithLabelValues("x32")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errors))

	expected := `
# HELP threadsampler_sample_errors_total Threads skipped because their procfs entries could not be read.
# TYPE threadsampler_sample_errors_total counter
threadsampler_sample_errors_total 1
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "threadsampler_sample_errors_total"))
}
