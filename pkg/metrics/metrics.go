package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/vamsikrishna6572/threadsampler/pkg/sampler"
)

// Collector counts sampler output. It satisfies sampler.Observer.
type Collector struct {
	registry *prometheus.Registry
	samples  *prometheus.CounterVec
	unknown  *prometheus.CounterVec
	errors   prometheus.Counter
}

// NewCollector registers the sampler counters on a private registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "threadsampler",
			Name:      "samples_total",
			Help:      "Threads observed, by state and syscall.",
		}, []string{"state", "syscall"}),
		unknown: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "threadsampler",
			Name:      "unknown_syscalls_total",
			Help:      "Syscall numbers without a name in the table, by ABI.",
		}, []string{"abi"}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "threadsampler",
			Name:      "sample_errors_total",
			Help:      "Threads skipped because their procfs entries could not be read.",
		}),
	}
	c.registry.MustRegister(c.samples, c.unknown, c.errors)
	return c
}

// ObserveSample counts one sample.
func (c *Collector) ObserveSample(s sampler.Sample) {
	name := "-"
	if s.InSyscall {
		name = s.SyscallName
		if !s.SyscallKnown {
			c.unknown.WithLabelValues(s.ABI.String()).Inc()
		}
	}
	c.samples.WithLabelValues(s.State, name).Inc()
}

// ObserveError counts one skipped thread.
func (c *Collector) ObserveError() {
	c.errors.Inc()
}

// Registry exposes the underlying registry, mostly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Serve exposes /metrics on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("metrics server shutdown")
		}
	}()

	logrus.WithField("addr", addr).Info("[METRICS] serving /metrics")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "metrics server")
	}
	return nil
}
