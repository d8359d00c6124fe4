package astar

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by FindPath.
var (
	// ErrCollaborator marks any failure reported by one of the three injected
	// functions. The concrete error is a *CollaboratorError.
	ErrCollaborator = errors.New("astar: collaborator failed")

	// ErrBudgetExhausted indicates that the search closed MaxExpansions states
	// without reaching the goal and without exhausting the frontier.
	ErrBudgetExhausted = errors.New("astar: expansion budget exhausted")

	// ErrNilCollaborator indicates that successors, heuristic or cost is nil.
	ErrNilCollaborator = errors.New("astar: nil collaborator function")

	// ErrBadMaxExpansions is the panic message of WithMaxExpansions(n <= 0).
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be positive")
)

// Collaborator operation names carried by CollaboratorError.Op.
const (
	OpSuccessors = "successors"
	OpCost       = "cost"
	OpHeuristic  = "heuristic"
)

// SuccessorFunc enumerates the outgoing neighbor states of s.
// It must be total: unknown or terminal states yield an empty slice.
type SuccessorFunc[S comparable] func(ctx context.Context, s S) ([]S, error)

// CostFunc returns the non-negative weight of the edge from→to, or +Inf
// when no such edge exists.
type CostFunc[S comparable] func(ctx context.Context, from, to S) (float64, error)

// HeuristicFunc returns an admissible, non-negative estimate of the remaining
// cost from s to the goal. 0 is an acceptable fallback for unknown states.
type HeuristicFunc[S comparable] func(ctx context.Context, s S) (float64, error)

// Successors lifts an infallible successor enumerator.
func Successors[S comparable](fn func(S) []S) SuccessorFunc[S] {
	return func(_ context.Context, s S) ([]S, error) { return fn(s), nil }
}

// Costs lifts an infallible edge-cost function.
func Costs[S comparable](fn func(from, to S) float64) CostFunc[S] {
	return func(_ context.Context, from, to S) (float64, error) { return fn(from, to), nil }
}

// Estimates lifts an infallible heuristic.
func Estimates[S comparable](fn func(S) float64) HeuristicFunc[S] {
	return func(_ context.Context, s S) (float64, error) { return fn(s), nil }
}

// Zero is the uninformed heuristic. With it A* degrades to uniform-cost search.
func Zero[S comparable]() HeuristicFunc[S] {
	return func(context.Context, S) (float64, error) { return 0, nil }
}

// CollaboratorError wraps an error returned by an injected function.
type CollaboratorError struct {
	Op    string // OpSuccessors, OpCost or OpHeuristic
	State string // fmt %v of the state being looked up
	Err   error
}

func newCollaboratorError[S comparable](op string, s S, err error) *CollaboratorError {
	return &CollaboratorError{Op: op, State: fmt.Sprint(s), Err: err}
}

// Error implements error.
func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("astar: %s(%s): %v", e.Op, e.State, e.Err)
}

// Unwrap returns the collaborator's own error.
func (e *CollaboratorError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrCollaborator) hold for every CollaboratorError.
func (e *CollaboratorError) Is(target error) bool { return target == ErrCollaborator }

// Options configures a single FindPath call.
//
// MaxExpansions – cap on closed states; 0 means unlimited.
// OnExpand      – called when a state is closed, before its successors are
//
//	enumerated. A non-nil error aborts the search with that error.
//
// OnRelax       – called when a frontier node gets a cheaper path.
type Options[S comparable] struct {
	MaxExpansions int
	OnExpand      func(s S, g float64) error
	OnRelax       func(s S, g float64)
}

// Option represents a functional option for FindPath.
type Option[S comparable] func(*Options[S])

// WithMaxExpansions bounds the number of expanded states. It panics on n <= 0.
func WithMaxExpansions[S comparable](n int) Option[S] {
	if n <= 0 {
		panic(ErrBadMaxExpansions.Error())
	}
	return func(o *Options[S]) { o.MaxExpansions = n }
}

// WithOnExpand installs a hook invoked for every closed state.
func WithOnExpand[S comparable](fn func(s S, g float64) error) Option[S] {
	return func(o *Options[S]) { o.OnExpand = fn }
}

// WithOnRelax installs a hook invoked on every in-place relaxation.
func WithOnRelax[S comparable](fn func(s S, g float64)) Option[S] {
	return func(o *Options[S]) { o.OnRelax = fn }
}

// Result is the outcome of one search.
//
// Found is false, with a nil error, when the frontier was exhausted: that is
// the "no path found" answer, not a failure.
type Result[S comparable] struct {
	Path      []S     // start → goal inclusive; nil when !Found
	Cost      float64 // g of the goal node
	Found     bool
	Expanded  int // states moved to the closed set
	Generated int // search nodes created, start included
	Relaxed   int // in-place improvements of frontier nodes
}
