package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds agent settings. Zero fields in a file keep their defaults.
type Config struct {
	ProcMount   string        `yaml:"proc_mount"`
	Interval    time.Duration `yaml:"interval"`
	Format      string        `yaml:"format"`
	AllThreads  bool          `yaml:"all_threads"`
	ReportDir   string        `yaml:"report_dir"`
	BPFObject   string        `yaml:"bpf_object"`
	MetricsAddr string        `yaml:"metrics_addr"`
	Arch        string        `yaml:"arch"`
	LogLevel    string        `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ProcMount: "/proc",
		Interval:  time.Second,
		Format:    FormatText,
		ReportDir: "/var/lib/threadsampler/reports",
		BPFObject: "sysenter_bpf.o",
		LogLevel:  "info",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged. The result is not validated so that callers can apply
// overrides first.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return errors.Errorf("interval must be positive, got %s", c.Interval)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	if c.ProcMount == "" {
		return errors.New("proc_mount must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}
