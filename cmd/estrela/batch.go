package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/estrela/internal/service"
	"github.com/katalvlaran/estrela/render"
)

type query struct {
	line        int
	start, goal string
}

type answer struct {
	text string
	code int
}

// runBatch reads "start,goal" lines and answers them with up to
// search.workers concurrent searches. Answers keep input order.
func runBatch(ctx context.Context, e *env, args []string) int {
	fs, c := newFlagSet("batch", e)
	queriesPath := fs.String("queries", "-", `file of "start,goal" lines, - for stdin`)
	workers := fs.Int("workers", 0, "concurrent searches (default from config)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	svc, log, ok := c.open(ctx, e)
	if !ok {
		return exitError
	}
	defer finish(svc, log)
	log = log.WithRun(uuid.NewString())

	r := e.stdin
	if *queriesPath != "-" {
		f, err := os.Open(*queriesPath)
		if err != nil {
			log.Error("open queries", "error", err)
			return exitError
		}
		defer f.Close()
		r = f
	}
	queries, bad, err := readQueries(r)
	if err != nil {
		log.Error("read queries", "error", err)
		return exitError
	}
	for _, b := range bad {
		log.Error("malformed query, want start,goal", "line", b.line, "text", b.start)
	}

	limit := svc.Config().Search.Workers
	if *workers > 0 {
		limit = *workers
	}
	answers := make([]answer, len(queries))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, q := range queries {
		g.Go(func() error {
			answers[i] = answerQuery(ctx, svc, q)
			return nil
		})
	}
	_ = g.Wait()

	code := exitOK
	if len(bad) > 0 {
		code = exitError
	}
	for _, a := range answers {
		fmt.Fprintln(e.stdout, a.text)
		code = max(code, a.code)
	}
	log.Info("batch completed", "queries", len(queries), "malformed", len(bad))

	return code
}

// readQueries parses the input. Blank lines and # comments are ignored;
// malformed lines come back separately with the raw text in start.
func readQueries(r io.Reader) (ok, bad []query, err error) {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		start, goal, found := strings.Cut(line, ",")
		start, goal = strings.TrimSpace(start), strings.TrimSpace(goal)
		if !found || start == "" || goal == "" {
			bad = append(bad, query{line: n, start: line})
			continue
		}
		ok = append(ok, query{line: n, start: start, goal: goal})
	}

	return ok, bad, sc.Err()
}

func answerQuery(ctx context.Context, svc *service.Service, q query) answer {
	prefix := q.start + "," + q.goal + ": "
	rep, err := svc.Search(ctx, q.start, q.goal)
	switch {
	case err != nil:
		return answer{text: prefix + "error: " + err.Error(), code: exitError}
	case !rep.Found:
		return answer{text: prefix + render.NoPath, code: exitNoPath}
	default:
		return answer{text: fmt.Sprintf("%s%s (cost %g)", prefix, render.Found(rep.Path), rep.Cost), code: exitOK}
	}
}
