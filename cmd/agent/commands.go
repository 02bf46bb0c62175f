package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vamsikrishna6572/threadsampler/pkg/ebpf/recorder"
	"github.com/vamsikrishna6572/threadsampler/pkg/metrics"
	"github.com/vamsikrishna6572/threadsampler/pkg/processor"
	"github.com/vamsikrishna6572/threadsampler/pkg/report"
	"github.com/vamsikrishna6572/threadsampler/pkg/sampler"
	"github.com/vamsikrishna6572/threadsampler/pkg/util/syscalls"
)

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func newSampleCommand(a *agent) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Poll procfs and print active threads with their current syscall",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := a.resolver()
			if err != nil {
				return err
			}
			w, err := report.NewWriter(cmd.OutOrStdout(), a.cfg.Format)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			opts := []sampler.Option{sampler.WithAllThreads(a.cfg.AllThreads)}
			if a.cfg.MetricsAddr != "" {
				collector := metrics.NewCollector()
				opts = append(opts, sampler.WithObserver(collector))
				go func() {
					if err := collector.Serve(ctx, a.cfg.MetricsAddr); err != nil {
						logrus.WithError(err).Error("metrics server stopped")
					}
				}()
			}

			s, err := sampler.New(a.cfg.ProcMount, resolver, opts...)
			if err != nil {
				return err
			}

			passes := 0
			return s.Run(ctx, a.cfg.Interval, func(samples []sampler.Sample) error {
				if err := w.Write(samples); err != nil {
					return err
				}
				passes++
				if count > 0 && passes >= count {
					cancel()
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many passes (0 runs until interrupted)")
	return cmd
}

func newRecordCommand(a *agent) *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Attach the eBPF flight recorder and write crash reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := a.resolver()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			x := &processor.Extractor{
				Resolver:  resolver,
				ReportDir: a.cfg.ReportDir,
				ProcMount: a.cfg.ProcMount,
			}
			return recorder.Run(ctx, a.cfg.BPFObject, a.cfg.Interval, x)
		},
	}
}

func newLookupCommand(a *agent) *cobra.Command {
	var abiFlag string
	cmd := &cobra.Command{
		Use:   "lookup NR [NR...]",
		Short: "Resolve syscall numbers; raw x32 register values are detected automatically",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := a.resolver()
			if err != nil {
				return err
			}
			forced, err := syscalls.ParseABI(abiFlag)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, ' ', 0)
			for _, arg := range args {
				raw, err := strconv.ParseInt(arg, 0, 64)
				if err != nil {
					return errors.Wrapf(err, "parse %q", arg)
				}
				nr, abi := syscalls.SplitRaw(raw)
				if cmd.Flags().Changed("abi") {
					nr, abi = raw, forced
				}
				res, err := resolver.Lookup(nr, abi)
				if err != nil {
					return errors.Wrapf(err, "lookup %d", raw)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", res.Number, res.ABI, res)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&abiFlag, "abi", "", "numbering space: common, 64 or x32")
	return cmd
}

func newTableCommand(a *agent) *cobra.Command {
	var abiFlag string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the syscall table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := a.resolver()
			if err != nil {
				return err
			}
			abi, err := syscalls.ParseABI(abiFlag)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, ' ', 0)
			for _, e := range resolver.Entries(abi) {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Number, e.ABI, e.Name)
			}
			fmt.Fprintf(tw, "# %s: %d slots\n", resolver.Arch(), resolver.MaxIndex())
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&abiFlag, "abi", "", "numbering space: common or x32")
	return cmd
}
