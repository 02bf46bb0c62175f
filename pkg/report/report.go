package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"

	"github.com/vamsikrishna6572/threadsampler/pkg/config"
	"github.com/vamsikrishna6572/threadsampler/pkg/sampler"
	"github.com/vamsikrishna6572/threadsampler/pkg/util/syscalls"
)

// Writer renders sampling passes.
type Writer struct {
	out    io.Writer
	format string
}

// NewWriter returns a writer for one of the config formats.
func NewWriter(out io.Writer, format string) (*Writer, error) {
	switch format {
	case config.FormatText, config.FormatJSON:
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}
	return &Writer{out: out, format: format}, nil
}

// Write renders one pass. JSON output is one object per line.
func (w *Writer) Write(samples []sampler.Sample) error {
	if w.format == config.FormatJSON {
		enc := json.NewEncoder(w.out)
		for _, s := range samples {
			if err := enc.Encode(s); err != nil {
				return errors.Wrap(err, "encode sample")
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w.out, 0, 8, 1, ' ', 0)
	fmt.Fprintln(tw, "TIMESTAMP\tPID\tTID\tSTATE\tCOMM\tSYSCALL")
	for _, s := range samples {
		name := "-"
		if s.InSyscall {
			name = s.SyscallName
			if s.ABI == syscalls.ABIX32 {
				name += " [x32]"
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n",
			s.Time.Format("2006-01-02 15:04:05.000"), s.PID, s.TID, s.State, s.Comm, name)
	}
	return errors.Wrap(tw.Flush(), "flush")
}

// SaveJSON writes v as indented JSON to dir/name, creating dir as needed.
func SaveJSON(dir, name string, v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "json")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}

// Filename builds a unique report name for pid.
func Filename(pid uint32, at time.Time) string {
	return fmt.Sprintf("%d_%d.json", pid, at.UnixNano())
}
