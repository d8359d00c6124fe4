// Package remote adapts collaborator sources for the search engine: it
// bundles the three functions, throttles them against a shared token bucket
// and counts them in a metrics.Recorder.
package remote

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/estrela/astar"
	"github.com/katalvlaran/estrela/metrics"
)

// Source is a string-keyed graph that answers collaborator lookups.
// core.Graph and dynamo.Store both implement it.
type Source interface {
	Successors(ctx context.Context, id string) ([]string, error)
	Cost(ctx context.Context, from, to string) (float64, error)
	Heuristic(ctx context.Context, id string) (float64, error)
}

// Collaborators bundles the three functions FindPath needs.
type Collaborators[S comparable] struct {
	Successors astar.SuccessorFunc[S]
	Cost       astar.CostFunc[S]
	Heuristic  astar.HeuristicFunc[S]
}

// FromSource binds the methods of src.
func FromSource(src Source) Collaborators[string] {
	return Collaborators[string]{
		Successors: src.Successors,
		Cost:       src.Cost,
		Heuristic:  src.Heuristic,
	}
}

// FindPath runs astar.FindPath with c.
func (c Collaborators[S]) FindPath(ctx context.Context, start, goal S, opts ...astar.Option[S]) (astar.Result[S], error) {
	return astar.FindPath(ctx, start, goal, c.Successors, c.Heuristic, c.Cost, opts...)
}

// NewLimiter returns a token bucket of rps lookups per second, or nil
// (unlimited) when rps <= 0. burst below 1 is raised to 1.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(rps), burst)
}

// Throttle makes every call wait for a token from lim first. One limiter may
// be shared by any number of concurrent searches. A nil lim returns c as is.
func Throttle[S comparable](c Collaborators[S], lim *rate.Limiter) Collaborators[S] {
	if lim == nil {
		return c
	}
	wait := func(ctx context.Context) error {
		if err := lim.Wait(ctx); err != nil {
			return fmt.Errorf("remote: throttle: %w", err)
		}
		return nil
	}

	return Collaborators[S]{
		Successors: func(ctx context.Context, s S) ([]S, error) {
			if err := wait(ctx); err != nil {
				return nil, err
			}
			return c.Successors(ctx, s)
		},
		Cost: func(ctx context.Context, from, to S) (float64, error) {
			if err := wait(ctx); err != nil {
				return 0, err
			}
			return c.Cost(ctx, from, to)
		},
		Heuristic: func(ctx context.Context, s S) (float64, error) {
			if err := wait(ctx); err != nil {
				return 0, err
			}
			return c.Heuristic(ctx, s)
		},
	}
}

// Instrument counts every call and failure in rec. A nil rec returns c as is.
func Instrument[S comparable](c Collaborators[S], rec *metrics.Recorder) Collaborators[S] {
	if rec == nil {
		return c
	}

	return Collaborators[S]{
		Successors: func(ctx context.Context, s S) ([]S, error) {
			next, err := c.Successors(ctx, s)
			rec.ObserveCall(astar.OpSuccessors, err)
			return next, err
		},
		Cost: func(ctx context.Context, from, to S) (float64, error) {
			w, err := c.Cost(ctx, from, to)
			rec.ObserveCall(astar.OpCost, err)
			return w, err
		},
		Heuristic: func(ctx context.Context, s S) (float64, error) {
			h, err := c.Heuristic(ctx, s)
			rec.ObserveCall(astar.OpHeuristic, err)
			return h, err
		},
	}
}
