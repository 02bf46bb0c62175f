package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cilium/ebpf"
	"github.com/sirupsen/logrus"

	"github.com/vamsikrishna6572/threadsampler/pkg/report"
	"github.com/vamsikrishna6572/threadsampler/pkg/util/syscalls"
)

const (
	MaxEvents = 256
)

// MUST MATCH BPF STRUCT EXACTLY
type Event struct {
	PID     uint32 `json:"pid"`
	Syscall uint32 `json:"syscall"`
	TS      uint64 `json:"timestamp_ns"`
}

// MUST MATCH BPF STRUCT EXACTLY
type FlightBuffer struct {
	Events [MaxEvents]Event
	Index  uint32
	Frozen uint32
}

// OutputEvent is one resolved entry of a flight report.
type OutputEvent struct {
	PID          uint32       `json:"pid"`
	Syscall      int64        `json:"syscall"`
	ABI          syscalls.ABI `json:"abi"`
	SyscallName  string       `json:"syscall_name"`
	TimestampNS  uint64       `json:"timestamp_ns"`
	TimestampISO string       `json:"timestamp_human"`
}

// Report is the document written for one frozen PID.
type Report struct {
	PID       uint32        `json:"pid"`
	Process   string        `json:"process"`
	Cmdline   string        `json:"cmdline"`
	Hostname  string        `json:"hostname"`
	CreatedAt string        `json:"created_at"`
	Events    []OutputEvent `json:"events"`
}

// Extractor turns frozen flight buffers into reports.
type Extractor struct {
	Resolver  syscalls.Resolver
	ReportDir string
	ProcMount string
	Now       func() time.Time
}

// ExtractFrozen writes a report for every frozen buffer in the flight map
// and removes the entry.
func (x *Extractor) ExtractFrozen(flight *ebpf.Map) error {
	iter := flight.Iterate()

	var pid uint32
	var buf FlightBuffer

	var done []uint32
	for iter.Next(&pid, &buf) {
		if buf.Frozen == 0 {
			continue
		}

		logrus.Infof("[EXTRACT] Found frozen buffer for PID %d", pid)

		rep, ok := x.BuildReport(pid, buf)
		if !ok {
			continue
		}

		path, err := report.SaveJSON(x.ReportDir, report.Filename(pid, x.now()), rep)
		if err != nil {
			logrus.Errorf("[ERROR] saving report pid %d: %v", pid, err)
			continue
		}
		logrus.Infof("[SAVED] crash report stored for pid %d at %s", pid, path)
		done = append(done, pid)
	}
	if err := iter.Err(); err != nil {
		return err
	}

	for _, pid := range done {
		if err := flight.Delete(&pid); err != nil {
			logrus.Warnf("[EXTRACT] deleting pid %d: %v", pid, err)
		}
	}
	return nil
}

// BuildReport resolves the buffer of pid. It reports false for an empty
// buffer.
func (x *Extractor) BuildReport(pid uint32, buf FlightBuffer) (Report, bool) {
	raw := Reorder(buf)
	if len(raw) == 0 {
		return Report{}, false
	}

	out := make([]OutputEvent, 0, len(raw))
	for _, e := range raw {
		nr, abi := syscalls.SplitRaw(int64(e.Syscall))
		out = append(out, OutputEvent{
			PID:          e.PID,
			Syscall:      nr,
			ABI:          abi,
			SyscallName:  syscalls.Name(x.Resolver, nr, abi),
			TimestampNS:  e.TS,
			TimestampISO: time.Unix(0, int64(e.TS)).UTC().Format(time.RFC3339Nano),
		})
	}

	host, _ := os.Hostname()
	return Report{
		PID:       pid,
		Process:   readLink(x.procPath(pid, "exe")),
		Cmdline:   readCmdline(x.procPath(pid, "cmdline")),
		Hostname:  host,
		CreatedAt: x.now().UTC().Format(time.RFC3339),
		Events:    out,
	}, true
}

func (x *Extractor) now() time.Time {
	if x.Now != nil {
		return x.Now()
	}
	return time.Now()
}

func (x *Extractor) procPath(pid uint32, name string) string {
	mount := x.ProcMount
	if mount == "" {
		mount = "/proc"
	}
	return filepath.Join(mount, fmt.Sprint(pid), name)
}

// Reorder unrolls the cyclic buffer oldest first. Index counts every write,
// so once it passes MaxEvents the oldest event sits at Index % MaxEvents.
func Reorder(buf FlightBuffer) []Event {
	result := []Event{}

	n := buf.Index
	start := uint32(0)
	if n > MaxEvents {
		start = n % MaxEvents
		n = MaxEvents
	}

	for i := uint32(0); i < n; i++ {
		ev := buf.Events[(start+i)%MaxEvents]
		if ev.PID == 0 {
			continue
		}
		result = append(result, ev)
	}

	return result
}

func readLink(path string) string {
	target, err := os.Readlink(path)
	if err != nil {
		return "unknown"
	}
	return target
}

func readCmdline(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(strings.ReplaceAll(string(data), "\x00", " "))
}
