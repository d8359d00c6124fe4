// Package core defines the state Graph, its Edge type, options and sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight is negative, NaN or infinite.
//	ErrBadHeuristic        - heuristic value is negative, NaN or infinite.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge between the same ordered pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that is negative or not a finite number.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")

	// ErrBadHeuristic indicates a heuristic value that is negative or not finite.
	ErrBadHeuristic = errors.New("core: heuristic must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a weighted connection From→To.
// In an undirected graph the same Edge is also traversable To→From.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative traversal cost.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way (default true).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// arc is one traversable direction of an Edge, as seen from its tail.
type arc struct {
	to   string
	edge *Edge
}

// Graph is an in-memory weighted state graph with a heuristic table.
//
// muVert protects vertices and heuristic; muEdgeAdj protects edges, out and
// index. Lock order is muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, heuristic
	muEdgeAdj sync.RWMutex // guards edges, out, index

	// Configuration flags
	directed   bool
	allowLoops bool

	// Storage
	nextEdgeID uint64              // atomic edge ID generator
	vertices   map[string]struct{} // vertex ID set
	heuristic  map[string]float64  // vertex ID → estimate to the goal
	edges      map[string]*Edge    // edge ID → Edge

	// out[from] lists arcs in insertion order; index[from][to] is the O(1) lookup.
	out   map[string][]arc
	index map[string]map[string]*Edge
}

// NewGraph creates an empty Graph. By default it is directed, without loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:  true,
		vertices:  make(map[string]struct{}),
		heuristic: make(map[string]float64),
		edges:     make(map[string]*Edge),
		out:       make(map[string][]arc),
		index:     make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
