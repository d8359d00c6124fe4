// Package estrela finds minimum-cost routes with A* over graphs you never
// have to hand over whole.
//
// What is estrela?
//
//	A search engine plus the plumbing around it:
//		• astar/       generic A* over three injected collaborator functions
//		• core/        thread-safe weighted graph with a heuristic table
//		• dijkstra/    exact single-source costs (audit and test oracle)
//		• audit/       admissibility and consistency check of a stored heuristic
//		• dataset/     YAML graph documents: embedded, local (.zst/.lz4) or S3
//		• remote/      string collaborators with throttling and metrics;
//		               remote/dynamo serves them from DynamoDB tables
//		• gridgraph/   terrain grids as Cell-typed search spaces
//		• render/      "A -> B -> C" answers and Graphviz DOT output
//		• metrics/     Prometheus counters and histograms per search
//		• cmd/estrela, cmd/estrela-mcp   CLI and MCP stdio server
//
// Quick example:
//
//	  Arad ──140── Sibiu ──80── Rimnicu Vilcea
//	                 │                 │
//	                99                97
//	                 │                 │
//	              Fagaras           Pitesti
//	                 │                 │
//	               211               101
//	                 └──── Bucharest ──┘
//
//	doc, _ := dataset.Embedded("romania")
//	g, _ := doc.Graph()
//	res, _ := astar.FindPath(ctx, "Arad", "Bucharest", g.Successors, g.Heuristic, g.Cost)
//	fmt.Println(render.Found(res.Path))
//	// Path found: Arad -> Sibiu -> Rimnicu Vilcea -> Pitesti -> Bucharest
//
// See each subpackage's doc.go for contracts, errors and complexity.
package estrela
