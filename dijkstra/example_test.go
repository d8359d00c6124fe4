package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/estrela/core"
	"github.com/katalvlaran/estrela/dijkstra"
)

// ExampleDijkstra demonstrates path reconstruction on a small directed graph.
func ExampleDijkstra() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[D]=%g path=%v\n", dist["D"], dijkstra.PathTo(dist, prev, "A", "D"))
	// Output: dist[D]=5 path=[A B D]
}
