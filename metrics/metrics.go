// Package metrics holds the Prometheus collectors for searches and
// collaborator calls.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/estrela/astar"
)

// Search outcomes, the values of the "outcome" label.
const (
	OutcomeFound    = "found"
	OutcomeNoPath   = "no_path"
	OutcomeBudget   = "budget"
	OutcomeCanceled = "canceled"
	OutcomeError    = "error"
)

// Recorder groups every collector. A nil *Recorder records nothing.
type Recorder struct {
	searches   *prometheus.CounterVec
	calls      *prometheus.CounterVec
	callErrors *prometheus.CounterVec
	expansions prometheus.Histogram
	duration   prometheus.Histogram
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "estrela_searches_total",
			Help: "Completed path searches by outcome",
		}, []string{"outcome"}),
		calls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "estrela_collaborator_calls_total",
			Help: "Collaborator invocations by operation",
		}, []string{"op"}),
		callErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "estrela_collaborator_errors_total",
			Help: "Failed collaborator invocations by operation",
		}, []string{"op"}),
		expansions: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "estrela_search_expansions",
			Help:    "States closed per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name: "estrela_search_duration_seconds",
			Help: "Wall time per search, collaborator latency included",
			// Sub-millisecond in memory, seconds against a remote store.
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}),
	}
}

// Outcome classifies the return values of astar.FindPath.
func Outcome(found bool, err error) string {
	switch {
	case err == nil && found:
		return OutcomeFound
	case err == nil:
		return OutcomeNoPath
	case errors.Is(err, astar.ErrBudgetExhausted):
		return OutcomeBudget
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}

// ObserveSearch records one finished search.
func (r *Recorder) ObserveSearch(outcome string, expanded int, took time.Duration) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(outcome).Inc()
	r.expansions.Observe(float64(expanded))
	r.duration.Observe(took.Seconds())
}

// ObserveCall records one collaborator invocation.
func (r *Recorder) ObserveCall(op string, err error) {
	if r == nil {
		return
	}
	r.calls.WithLabelValues(op).Inc()
	if err != nil {
		r.callErrors.WithLabelValues(op).Inc()
	}
}
