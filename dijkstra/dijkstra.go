package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/estrela/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable vertices prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// core.Graph rejects negative weights on insertion, so no pre-scan is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	r.init(vertices)
	r.process()

	return r.dist, r.prev, nil
}

// PathTo rebuilds the source→target path from a predecessor map returned with
// WithReturnPath. It returns nil when target is unreachable.
func PathTo(dist map[string]float64, prev map[string]string, source, target string) []string {
	if d, ok := dist[target]; !ok || math.IsInf(d, 1) {
		return nil
	}
	path := []string{target}
	for cur := target; cur != source; {
		p := prev[cur]
		if p == "" {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (Source, thresholds, etc.).
	dist    map[string]float64 // Maps vertex ID → current best distance from Source.
	prev    map[string]string  // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool    // Tracks if a vertex's distance is finalized.
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +Inf for all v, dist[Source] = 0, and pushes Source.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its
// outgoing edges, until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve every out-neighbor of the finalized vertex u.
func (r *runner) relax(u string) {
	for _, v := range r.g.Neighbors(u) {
		w, ok := r.g.Weight(u, v)
		if !ok {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" avoids pushing duplicates on ties.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		// Lazy decrease-key: older entries for v are skipped when popped.
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
