package recorder

import (
	"context"
	"time"

	"github.com/cilium/ebpf"
	"github.com/cilium/ebpf/link"
	"github.com/cilium/ebpf/rlimit"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vamsikrishna6572/threadsampler/pkg/processor"
)

// Objects are the programs and maps expected in the BPF object file.
type Objects struct {
	HandleSysEnter *ebpf.Program `ebpf:"handle_sys_enter"`
	HandleSignal   *ebpf.Program `ebpf:"handle_signal"`
	HandleExit     *ebpf.Program `ebpf:"handle_exit"`
	Flight         *ebpf.Map     `ebpf:"flight"`
}

// Close releases every loaded program and map. Unassigned fields are nil
// and closing them is a no-op.
func (o *Objects) Close() {
	_ = o.HandleSysEnter.Close()
	_ = o.HandleSignal.Close()
	_ = o.HandleExit.Close()
	_ = o.Flight.Close()
}

// tracepoints lists the attach points, in attach order.
var tracepoints = []struct {
	group, name string
	prog        func(*Objects) *ebpf.Program
}{
	// sys_enter records a rolling buffer per PID
	{"raw_syscalls", "sys_enter", func(o *Objects) *ebpf.Program { return o.HandleSysEnter }},
	// signal_deliver freezes the buffer on SIGKILL / SIGSEGV
	{"signal", "signal_deliver", func(o *Objects) *ebpf.Program { return o.HandleSignal }},
	// sched_process_exit freezes the buffer on abnormal exit
	{"sched", "sched_process_exit", func(o *Objects) *ebpf.Program { return o.HandleExit }},
}

// Load reads objectPath and loads its programs into the kernel.
func Load(objectPath string) (*Objects, error) {
	// Allow unlimited locked memory for eBPF on older kernels
	if err := rlimit.RemoveMemlock(); err != nil {
		return nil, errors.Wrap(err, "rlimit")
	}

	spec, err := ebpf.LoadCollectionSpec(objectPath)
	if err != nil {
		return nil, errors.Wrap(err, "spec load")
	}

	objs := &Objects{}
	if err := spec.LoadAndAssign(objs, nil); err != nil {
		return nil, errors.Wrap(err, "assign")
	}
	return objs, nil
}

// Run loads the flight recorder, attaches its hooks and extracts frozen
// buffers every interval until ctx is done.
func Run(ctx context.Context, objectPath string, interval time.Duration, x *processor.Extractor) error {
	objs, err := Load(objectPath)
	if err != nil {
		return err
	}
	defer objs.Close()

	for _, tp := range tracepoints {
		l, err := link.Tracepoint(tp.group, tp.name, tp.prog(objs), nil)
		if err != nil {
			return errors.Wrapf(err, "attach %s/%s", tp.group, tp.name)
		}
		defer l.Close()
	}

	logrus.Info("[RECORDER] Flight recorder attached. Kernel now records last syscalls per PID.")
	logrus.Info("[RECORDER] Crash-freeze monitoring enabled (SIGKILL / SIGSEGV / abnormal exit).")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := x.ExtractFrozen(objs.Flight); err != nil {
			logrus.Warnf("[RECORDER] extract error: %v", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
