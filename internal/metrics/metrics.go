// Package metrics exports optimizer statistics in the Prometheus text format,
// for example for the node exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/dendrascience/baum/tree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the metrics of planning runs in its own registry.
type Collector struct {
	reg *prometheus.Registry

	entries      *prometheus.GaugeVec
	tableSize    *prometheus.GaugeVec
	cost         *prometheus.GaugeVec
	nodes        *prometheus.GaugeVec
	compositions *prometheus.GaugeVec
	cacheHits    *prometheus.GaugeVec
	buildSeconds *prometheus.HistogramVec
}

// New returns a Collector with all metrics registered.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Collector{
		reg: reg,
		entries: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "baum_entries",
			Help: "Number of entries in the planned sequence",
		}, []string{"access"}),
		tableSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "baum_table_signatures",
			Help: "Number of distinct weight signatures in the split table",
		}, []string{"access"}),
		cost: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "baum_tree_cost",
			Help: "Total access cost of the planned tree",
		}, []string{"access"}),
		nodes: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "baum_nodes",
			Help: "Signatures solved, by method",
		}, []string{"access", "method"}),
		compositions: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "baum_exact_compositions",
			Help: "Compositions evaluated by the exact search",
		}, []string{"access"}),
		cacheHits: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "baum_table_hits",
			Help: "Signatures answered from the split table",
		}, []string{"access"}),
		buildSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "baum_build_seconds",
			Help:    "Time spent building the split table",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"access"}),
	}
}

// Record stores the statistics of plan, built in elapsed.
func (c *Collector) Record(plan *tree.Plan, elapsed time.Duration) {
	access := plan.Options.Policy.String()
	s := plan.Table.Stats

	c.entries.WithLabelValues(access).Set(float64(plan.Length))
	c.tableSize.WithLabelValues(access).Set(float64(plan.Table.Len()))
	c.cost.WithLabelValues(access).Set(plan.Cost())
	c.nodes.WithLabelValues(access, "exact").Set(float64(s.ExactNodes))
	c.nodes.WithLabelValues(access, "ratio").Set(float64(s.RatioNodes))
	c.nodes.WithLabelValues(access, "flat").Set(float64(s.LeafNodes))
	c.compositions.WithLabelValues(access).Set(float64(s.Compositions))
	c.cacheHits.WithLabelValues(access).Set(float64(s.CacheHits))
	c.buildSeconds.WithLabelValues(access).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.reg
}

// WriteTextfile writes all metrics to path atomically.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}
