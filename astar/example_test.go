package astar_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/estrela/astar"
	"github.com/katalvlaran/estrela/core"
)

// ExampleFindPath searches a core.Graph through its collaborator methods.
func ExampleFindPath() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 4)
	g.AddEdge("B", "D", 5)
	g.AddEdge("B", "E", 1)
	g.AddEdge("C", "F", 3)
	g.AddEdge("E", "F", 1)
	for s, h := range map[string]float64{"A": 7, "B": 6, "C": 2, "D": 1, "E": 1, "F": 0} {
		g.SetHeuristic(s, h)
	}

	res, err := astar.FindPath(context.Background(), "A", "F", g.Successors, g.Heuristic, g.Cost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s (cost %g)\n", strings.Join(res.Path, " -> "), res.Cost)
	// Output: A -> B -> E -> F (cost 3)
}

// ExampleFindPath_closures runs the engine over plain functions on int states.
func ExampleFindPath_closures() {
	// States 0..9 on a line; each step costs 1 and only moves forward.
	next := astar.Successors(func(s int) []int {
		if s < 9 {
			return []int{s + 1}
		}
		return nil
	})
	step := astar.Costs(func(int, int) float64 { return 1 })
	remaining := astar.Estimates(func(s int) float64 { return float64(9 - s) })

	res, _ := astar.FindPath(context.Background(), 2, 6, next, remaining, step)
	fmt.Println(res.Path, res.Cost)

	res, _ = astar.FindPath(context.Background(), 6, 2, next, remaining, step)
	fmt.Println(res.Found)
	// Output:
	// [2 3 4 5 6] 4
	// false
}
