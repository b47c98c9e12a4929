// Package metrics exposes solver progress as Prometheus collectors.
//
// A Recorder owns its registry, so several recorders can coexist in tests.
// The CLI dumps the registry to a node-exporter textfile after a run.
package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/domset/domset"
)

const (
	namespace = "domset"

	// OutcomeLabel partitions solves_total.
	OutcomeLabel = "outcome"

	Optimal   = "optimal"
	TimeLimit = "time_limit"
	Cancelled = "cancelled"
	Failed    = "failed"
)

// Recorder collects metrics for one or more Solve calls.
type Recorder struct {
	reg *prometheus.Registry

	nodes        prometheus.Counter
	improvements prometheus.Counter
	solves       *prometheus.CounterVec
	bestSize     prometheus.Gauge
	duration     prometheus.Histogram
}

// NewRecorder registers the solver collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_nodes_total",
			Help:      "Branch-and-bound nodes visited",
		}),
		improvements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "improvements_total",
			Help:      "Times a smaller dominating set was found",
		}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Finished solves by outcome",
		}, []string{OutcomeLabel}),
		bestSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_size",
			Help:      "Size of the best dominating set of the last solve",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of Solve",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	r.reg.MustRegister(r.nodes, r.improvements, r.solves, r.bestSize, r.duration)

	return r
}

// Registry returns the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// OnImprove matches domset.Options.OnImprove.
func (r *Recorder) OnImprove(size int, _ uint64) error {
	r.improvements.Inc()
	r.bestSize.Set(float64(size))
	return nil
}

// Option wires the recorder into a Solve call, chaining an existing
// OnImprove hook if one is given.
func (r *Recorder) Option(next func(size int, nodes uint64) error) domset.Option {
	return domset.WithOnImprove(func(size int, nodes uint64) error {
		_ = r.OnImprove(size, nodes)
		if next != nil {
			return next(size, nodes)
		}
		return nil
	})
}

// Observe records the outcome of a finished Solve.
func (r *Recorder) Observe(res domset.Result, err error) {
	r.nodes.Add(float64(res.Nodes))
	r.duration.Observe(res.Elapsed.Seconds())
	r.bestSize.Set(float64(res.Size))
	r.solves.WithLabelValues(Outcome(err)).Inc()
}

// Outcome classifies a Solve error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return Optimal
	case errors.Is(err, domset.ErrTimeLimit):
		return TimeLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Cancelled
	}
	return Failed
}

// WriteTextfile writes the registry in the text exposition format to path,
// atomically, for the node-exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
