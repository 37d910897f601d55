// Package fixedprom exports occupancy of fixed containers as Prometheus
// metrics.
package fixedprom

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/fixed"
)

// Source is anything that can report a fixed.Metrics snapshot. Every
// container in package fixed implements it.
type Source interface {
	Metrics() fixed.Metrics
}

// SourceFunc adapts a function to Source. Use it to take a lock around the
// snapshot when the container is shared with other goroutines.
type SourceFunc func() fixed.Metrics

// Metrics calls f.
func (f SourceFunc) Metrics() fixed.Metrics { return f() }

var _ prometheus.Collector = &Collector{}

// Collector reports size, capacity, free slots and utilization of a set of
// named containers. The collector guards only its own set of sources:
// Collect runs on the scraping goroutine, so sources that are mutated
// elsewhere must synchronize inside Metrics.
type Collector struct {
	mtx     sync.Mutex
	sources map[string]Source

	size        *prometheus.Desc
	capacity    *prometheus.Desc
	free        *prometheus.Desc
	utilization *prometheus.Desc
}

// NewCollector creates a Collector whose metric names are prefixed with
// namespace.
func NewCollector(namespace string) *Collector {
	labels := []string{"container"}
	return &Collector{
		sources: map[string]Source{},
		size: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "container", "size"),
			"Number of live elements in the container.",
			labels, nil,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "container", "capacity"),
			"Maximum number of elements the container can hold.",
			labels, nil,
		),
		free: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "container", "free_slots"),
			"Number of unused slots in the container.",
			labels, nil,
		),
		utilization: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "container", "utilization"),
			"Ratio of live elements to capacity.",
			labels, nil,
		),
	}
}

// Add registers src under name, replacing any source with the same name.
func (c *Collector) Add(name string, src Source) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.sources[name] = src
}

// Remove drops the source registered under name.
func (c *Collector) Remove(name string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	delete(c.sources, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.size
	descs <- c.capacity
	descs <- c.free
	descs <- c.utilization
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m := c.sources[name].Metrics()
		metrics <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(m.Size), name)
		metrics <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity), name)
		metrics <- prometheus.MustNewConstMetric(c.free, prometheus.GaugeValue, float64(m.Free), name)
		metrics <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization, name)
	}
}
