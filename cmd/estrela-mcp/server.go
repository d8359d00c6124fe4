package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/estrela/astar"
	"github.com/katalvlaran/estrela/internal/service"
	"github.com/katalvlaran/estrela/render"
)

// Version is reported to clients in the initialize handshake.
const Version = "0.1.0"

type ListStatesArgs struct{}

type ListStatesResult struct {
	States []string `json:"states"`
}

type FindPathArgs struct {
	Start string `json:"start" jsonschema:"the state to start from, e.g. Arad"`
	Goal  string `json:"goal" jsonschema:"the state to reach, e.g. Bucharest"`
}

// FindPathResult carries Cost only when a path was found; a zero-cost path
// (start == goal) still reports "cost": 0.
type FindPathResult struct {
	Found    bool     `json:"found"`
	Path     []string `json:"path,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
	Summary  string   `json:"summary"`
	Expanded int      `json:"expanded"`
	RunID    string   `json:"run_id"`
}

// tools adapts a service.Service to MCP tool handlers.
type tools struct {
	svc *service.Service
}

func newServer(svc *service.Service) *mcp.Server {
	t := &tools{svc: svc}

	s := mcp.NewServer(&mcp.Implementation{
		Name:    "estrela",
		Version: Version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_states",
		Description: "List the states (e.g. cities) that routes can start from or end at.",
	}, t.ListStates)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "find_path",
		Description: "Find the minimum-cost route between two states with A* search.",
	}, t.FindPath)

	return s
}

func (t *tools) ListStates(ctx context.Context, _ *mcp.CallToolRequest, _ ListStatesArgs) (*mcp.CallToolResult, ListStatesResult, error) {
	states, err := t.svc.States(ctx)
	if err != nil {
		return nil, ListStatesResult{}, err
	}
	return nil, ListStatesResult{States: states}, nil
}

// FindPath answers "no path" as a normal result; only collaborator failures
// and exhausted budgets are tool errors.
func (t *tools) FindPath(ctx context.Context, _ *mcp.CallToolRequest, args FindPathArgs) (*mcp.CallToolResult, FindPathResult, error) {
	if args.Start == "" || args.Goal == "" {
		return nil, FindPathResult{}, errors.New("start and goal are required")
	}

	rep, err := t.svc.Search(ctx, args.Start, args.Goal)
	if err != nil {
		if errors.Is(err, astar.ErrBudgetExhausted) {
			return nil, FindPathResult{}, fmt.Errorf("search gave up after %d expansions", rep.Expanded)
		}
		return nil, FindPathResult{}, err
	}

	out := FindPathResult{Found: rep.Found, Expanded: rep.Expanded, RunID: rep.RunID, Summary: render.NoPath}
	if rep.Found {
		out.Path = rep.Path
		cost := rep.Cost
		out.Cost = &cost
		out.Summary = render.Found(rep.Path)
	}
	return nil, out, nil
}
