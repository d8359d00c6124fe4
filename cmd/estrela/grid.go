package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/estrela/dataset"
	"github.com/katalvlaran/estrela/gridgraph"
	"github.com/katalvlaran/estrela/internal/service"
)

// runGrid turns a terrain map into a dataset whose heuristic targets -goal,
// then writes it to -out like seed does.
func runGrid(ctx context.Context, e *env, args []string) int {
	fs, c := newFlagSet("grid", e)
	mapPath := fs.String("map", "", "terrain map YAML (conn, threshold, cells)")
	goalFlag := fs.String("goal", "", "goal cell as x,y")
	out := fs.String("out", "", "destination: file path (.zst/.lz4 compress) or s3://bucket/key")
	name := fs.String("name", "grid", "dataset name")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	cfg, log, ok := c.setup(e)
	if !ok {
		return exitError
	}
	if *mapPath == "" || *goalFlag == "" || *out == "" {
		fmt.Fprintln(e.stderr, "estrela grid: -map, -goal and -out are required")
		return exitError
	}

	goal, err := gridgraph.ParseCell(*goalFlag)
	if err != nil {
		log.Error("parse goal", "error", err)
		return exitError
	}
	f, err := os.Open(*mapPath)
	if err != nil {
		log.Error("open map", "map", *mapPath, "error", err)
		return exitError
	}
	gr, err := gridgraph.Decode(f)
	f.Close()
	if err != nil {
		log.Error("decode map", "map", *mapPath, "error", err)
		return exitError
	}
	g, err := gr.ToGraph(goal)
	if err != nil {
		log.Error("build graph", "goal", goal.ID(), "error", err)
		return exitError
	}

	doc := dataset.FromGraph(*name, g)
	err = service.SaveDocument(ctx, cfg, *out, doc)
	log.LogSeed(ctx, *out, len(doc.Edges), len(doc.Heuristic), err)
	if err != nil {
		return exitError
	}

	return exitOK
}
