package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vamsikrishna6572/threadsampler/pkg/config"
	"github.com/vamsikrishna6572/threadsampler/pkg/util/syscalls"
)

// agent carries state shared by the subcommands.
type agent struct {
	configPath string
	cfg        config.Config
	overrides  config.Config
	registry   *syscalls.Registry
}

func newRootCommand() *cobra.Command {
	a := &agent{registry: syscalls.DefaultRegistry()}
	def := config.Default()

	root := &cobra.Command{
		Use:           "threadsampler",
		Short:         "Sample Linux thread activity and name the syscalls threads are blocked in",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&a.overrides.ProcMount, "proc", def.ProcMount, "procfs mount point")
	pf.DurationVarP(&a.overrides.Interval, "interval", "i", def.Interval, "sampling interval")
	pf.StringVarP(&a.overrides.Format, "format", "o", def.Format, "output format: text or json")
	pf.BoolVarP(&a.overrides.AllThreads, "all", "a", def.AllThreads, "include sleeping threads")
	pf.StringVar(&a.overrides.ReportDir, "report-dir", def.ReportDir, "directory for flight recorder reports")
	pf.StringVar(&a.overrides.BPFObject, "bpf-object", def.BPFObject, "compiled flight recorder BPF object")
	pf.StringVar(&a.overrides.MetricsAddr, "metrics-addr", def.MetricsAddr, "serve Prometheus metrics on this address")
	pf.StringVar(&a.overrides.Arch, "arch", def.Arch, "syscall table architecture (default: host)")
	pf.StringVar(&a.overrides.LogLevel, "log-level", def.LogLevel, "log level")

	root.AddCommand(
		newSampleCommand(a),
		newRecordCommand(a),
		newLookupCommand(a),
		newTableCommand(a),
	)
	return root
}

// loadConfig reads the config file and applies explicitly set flags on top.
func (a *agent) loadConfig(flags *pflag.FlagSet) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("proc", func() { cfg.ProcMount = a.overrides.ProcMount })
	set("interval", func() { cfg.Interval = a.overrides.Interval })
	set("format", func() { cfg.Format = a.overrides.Format })
	set("all", func() { cfg.AllThreads = a.overrides.AllThreads })
	set("report-dir", func() { cfg.ReportDir = a.overrides.ReportDir })
	set("bpf-object", func() { cfg.BPFObject = a.overrides.BPFObject })
	set("metrics-addr", func() { cfg.MetricsAddr = a.overrides.MetricsAddr })
	set("arch", func() { cfg.Arch = a.overrides.Arch })
	set("log-level", func() { cfg.LogLevel = a.overrides.LogLevel })

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logrus.SetLevel(level)

	a.cfg = cfg
	return nil
}

// resolver returns the syscall table for the configured or host architecture.
func (a *agent) resolver() (*syscalls.Table, error) {
	arch := a.cfg.Arch
	if arch == "" {
		host, err := syscalls.HostArch()
		if err != nil {
			return nil, errors.Wrap(err, "detect host architecture")
		}
		arch = host
	}
	t, err := a.registry.Resolver(arch)
	if err != nil {
		return nil, err
	}
	logrus.WithField("arch", t.Arch()).Debug("using syscall table")
	return t, nil
}
