// Package trace - Prometheus instrumentation.
package trace

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/knapbnb/bnb"
	"github.com/katalvlaran/knapbnb/knapsack"
)

// MetricsObserver exports search progress as Prometheus metrics. One
// observer can outlive many searches against the same registry; counters
// accumulate across runs, gauges track the latest run.
type MetricsObserver struct {
	iterations   prometheus.Counter
	nodesCreated prometheus.Counter
	nodesClosed  *prometheus.CounterVec
	improvements prometheus.Counter
	frontierSize prometheus.Gauge
	incumbent    prometheus.Gauge
	globalBound  prometheus.Gauge
	branchDepth  prometheus.Histogram
}

var _ bnb.Observer = (*MetricsObserver)(nil)

// NewMetricsObserver registers the knapbnb metric family with reg and
// returns the observer. Registering twice on one registry panics, as usual
// with promauto.
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	factory := promauto.With(reg)
	return &MetricsObserver{
		iterations: factory.NewCounter(prometheus.CounterOpts{
			Name: "knapbnb_iterations_total",
			Help: "Total number of branch-and-bound iterations processed",
		}),
		nodesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "knapbnb_nodes_created_total",
			Help: "Total number of search tree nodes created",
		}),
		nodesClosed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "knapbnb_nodes_processed_total",
			Help: "Total number of nodes closed, by terminal status",
		}, []string{"status"}),
		improvements: factory.NewCounter(prometheus.CounterOpts{
			Name: "knapbnb_incumbent_improvements_total",
			Help: "Total number of strict incumbent improvements",
		}),
		frontierSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "knapbnb_frontier_size",
			Help: "Open nodes in the frontier",
		}),
		incumbent: factory.NewGauge(prometheus.GaugeOpts{
			Name: "knapbnb_incumbent_value",
			Help: "Best feasible objective found so far",
		}),
		globalBound: factory.NewGauge(prometheus.GaugeOpts{
			Name: "knapbnb_global_bound",
			Help: "Certified ceiling on the optimum",
		}),
		branchDepth: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "knapbnb_branch_depth",
			Help:    "Depth distribution of branched nodes",
			Buckets: prometheus.LinearBuckets(0, 4, 16),
		}),
	}
}

// SearchStarted implements bnb.Observer.
func (m *MetricsObserver) SearchStarted(*knapsack.Instance) {
	m.frontierSize.Set(0)
}

// NodeCreated implements bnb.Observer.
func (m *MetricsObserver) NodeCreated(*bnb.Node) {
	m.nodesCreated.Inc()
}

// IterationEnded implements bnb.Observer.
func (m *MetricsObserver) IterationEnded(sum bnb.IterationSummary, _ *bnb.Node) {
	m.iterations.Inc()
	m.nodesClosed.WithLabelValues(sum.Status.String()).Inc()
	m.frontierSize.Set(float64(sum.FrontierLen))
	if !math.IsInf(sum.Incumbent, -1) {
		m.incumbent.Set(sum.Incumbent)
	}
	if !math.IsInf(sum.GlobalBound, 0) {
		m.globalBound.Set(sum.GlobalBound)
	}
	if sum.Status == bnb.StatusBranched {
		m.branchDepth.Observe(float64(sum.Depth))
	}
}

// IncumbentImproved implements bnb.Observer.
func (m *MetricsObserver) IncumbentImproved(int, *bnb.Node, bnb.Solution) {
	m.improvements.Inc()
}

// NodePruned implements bnb.Observer.
func (m *MetricsObserver) NodePruned(*bnb.Node) {
	m.nodesClosed.WithLabelValues(bnb.StatusPruned.String()).Inc()
	m.frontierSize.Dec()
}

// SearchFinished implements bnb.Observer. Gauges keep their final values,
// so a scrape after the run still reflects the outcome.
func (m *MetricsObserver) SearchFinished(bnb.Result) {}
