// fixedsim drives randomized workloads against the fixed containers and
// cross-checks every result against a slice model.
package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"

	"github.com/pavanmanishd/fixed"
	"github.com/pavanmanishd/fixed/fixedprom"
)

var containerKinds = []string{"ring", "stack", "queue", "list"}

type config struct {
	Capacity   int
	Ops        int
	Seed       uint64
	Containers []string
	Metrics    bool
	LogLevel   string
}

func (c *config) RegisterFlags(f *pflag.FlagSet) {
	f.IntVar(&c.Capacity, "capacity", 64, "Capacity of every simulated container.")
	f.IntVar(&c.Ops, "ops", 100000, "Number of operations per container.")
	f.Uint64Var(&c.Seed, "seed", 1, "Seed for the operation generator.")
	f.StringSliceVar(&c.Containers, "containers", containerKinds, "Container kinds to simulate.")
	f.BoolVar(&c.Metrics, "metrics", false, "Print container metrics in Prometheus text format after the run.")
	f.StringVar(&c.LogLevel, "log.level", "info", "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error]")
}

func (c *config) validate() error {
	if c.Capacity < 1 {
		return errors.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if c.Ops < 0 {
		return errors.Errorf("ops must not be negative, got %d", c.Ops)
	}
	for _, kind := range c.Containers {
		if !slices.Contains(containerKinds, kind) {
			return errors.Errorf("unknown container %q, valid: %v", kind, containerKinds)
		}
	}
	return nil
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, errors.Errorf("unrecognized log level %q", lvl)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}

func main() {
	cfg := config{}
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	cfg.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, os.Args[0], "runs randomized workloads against fixed containers.")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.validate(); err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(2)
	}

	reg := prometheus.NewRegistry()
	collector := fixedprom.NewCollector("fixedsim")
	reg.MustRegister(collector)

	if err := run(cfg, logger, collector); err != nil {
		level.Error(logger).Log("msg", "simulation failed", "err", err)
		os.Exit(1)
	}

	if cfg.Metrics {
		if err := writeMetrics(os.Stdout, reg); err != nil {
			level.Error(logger).Log("msg", "failed to write metrics", "err", err)
			os.Exit(1)
		}
	}
}

// run simulates every configured container kind and registers each one
// with collector once its run has finished.
func run(cfg config, logger log.Logger, collector *fixedprom.Collector) error {
	for i, kind := range cfg.Containers {
		sim := newSimulator(cfg.Seed+uint64(i), cfg.Ops)
		start := time.Now()

		var (
			src fixedprom.Source
			err error
		)
		switch kind {
		case "ring":
			r := fixed.NewRing[int](cfg.Capacity)
			src, err = r, sim.runRing(r)
		case "stack":
			s := fixed.NewStack[int](cfg.Capacity)
			src, err = s, sim.runStack(s)
		case "queue":
			q := fixed.NewQueue[int](cfg.Capacity)
			src, err = q, sim.runQueue(q)
		case "list":
			l := fixed.NewList[int](cfg.Capacity)
			src, err = l, sim.runList(l)
		}
		if err != nil {
			return errors.Wrap(err, kind)
		}

		m := src.Metrics()
		level.Info(logger).Log(
			"msg", "simulation passed",
			"container", kind,
			"ops", cfg.Ops,
			"size", m.Size,
			"capacity", m.Capacity,
			"storage_bytes", m.StorageBytes,
			"duration", time.Since(start),
		)
		collector.Add(kind, src)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather")
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrap(err, "encode")
		}
	}
	return nil
}
