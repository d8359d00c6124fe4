package audit

import (
	"errors"
	"math"
)

var (
	// ErrNilGraph is returned when Check is given a nil graph.
	ErrNilGraph = errors.New("audit: graph is nil")

	// ErrGoalNotFound indicates a goal absent from the graph.
	ErrGoalNotFound = errors.New("audit: goal vertex not found")

	// ErrBadHorizon is the panic value of WithHorizon on a negative or NaN cap.
	ErrBadHorizon = errors.New("audit: horizon must be non-negative")
)

// Option configures Check.
type Option func(*options)

type options struct {
	horizon float64
}

// WithHorizon limits the exact-cost search to states at most h away from
// the goal. Large maps can be audited around the goal without a full sweep.
func WithHorizon(h float64) Option {
	if h < 0 || math.IsNaN(h) {
		panic(ErrBadHorizon.Error())
	}
	return func(o *options) { o.horizon = h }
}

// Kind classifies a Violation.
type Kind string

const (
	// Overestimate: h(s) exceeds the true remaining cost, so A* may return
	// a suboptimal path.
	Overestimate Kind = "overestimate"

	// Inconsistent: h(u) > w(u,v) + h(v) for some edge. A* stays optimal under
	// an admissible heuristic, but f may decrease along a path.
	Inconsistent Kind = "inconsistent"
)

// Violation is one offending state (Overestimate) or edge (Inconsistent).
//
// For Overestimate, Bound is the exact cost-to-go and Next is empty.
// For Inconsistent, Bound is w(State,Next) + h(Next).
type Violation struct {
	Kind  Kind
	State string
	Next  string
	H     float64
	Bound float64
}

// Report is the outcome of Check.
type Report struct {
	Goal        string
	Horizon     float64 // +Inf unless WithHorizon was given
	States      int     // states whose estimate was compared with the exact cost
	Edges       int     // edges checked for consistency
	Unreachable int     // states with no path to Goal within Horizon
	Violations  []Violation
}

// Admissible reports whether no estimate overestimates.
func (r Report) Admissible() bool { return !r.has(Overestimate) }

// Consistent reports whether every edge satisfies h(u) <= w(u,v) + h(v).
func (r Report) Consistent() bool { return !r.has(Inconsistent) }

func (r Report) has(k Kind) bool {
	for _, v := range r.Violations {
		if v.Kind == k {
			return true
		}
	}
	return false
}
