package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/estrela/audit"
)

// runAudit reports heuristic values that overestimate and edges that break
// consistency. It exits 1 when any violation is found.
func runAudit(ctx context.Context, e *env, args []string) int {
	fs, c := newFlagSet("audit", e)
	goal := fs.String("goal", "", "goal state the heuristic estimates toward (required)")
	horizon := fs.Float64("horizon", 0, "only compare states within this exact cost of the goal (0 = all)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *goal == "" {
		fmt.Fprintln(e.stderr, "estrela audit: -goal is required")
		return exitError
	}
	if *horizon < 0 {
		fmt.Fprintln(e.stderr, "estrela audit: -horizon must be non-negative")
		return exitError
	}
	svc, log, ok := c.open(ctx, e)
	if !ok {
		return exitError
	}
	defer finish(svc, log)

	g, err := svc.Graph(ctx)
	if err != nil {
		log.Error("load graph", "error", err)
		return exitError
	}
	var opts []audit.Option
	if *horizon > 0 {
		opts = append(opts, audit.WithHorizon(*horizon))
	}
	rep, err := audit.Check(g, *goal, opts...)
	if err != nil {
		log.Error("audit", "error", err)
		return exitError
	}

	fmt.Fprintf(e.stdout, "goal %s: %d states, %d edges checked, %d cannot reach the goal\n",
		rep.Goal, rep.States, rep.Edges, rep.Unreachable)
	for _, v := range rep.Violations {
		switch v.Kind {
		case audit.Overestimate:
			fmt.Fprintf(e.stdout, "%s %s: h=%g > exact %g\n", v.Kind, v.State, v.H, v.Bound)
		case audit.Inconsistent:
			fmt.Fprintf(e.stdout, "%s %s -> %s: h=%g > w+h'=%g\n", v.Kind, v.State, v.Next, v.H, v.Bound)
		}
	}
	fmt.Fprintf(e.stdout, "admissible: %t, consistent: %t\n", rep.Admissible(), rep.Consistent())

	if len(rep.Violations) > 0 {
		return exitNoPath
	}
	return exitOK
}
