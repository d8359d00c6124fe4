package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/katalvlaran/estrela/internal/service"
	"github.com/katalvlaran/estrela/render"
)

func runList(ctx context.Context, e *env, args []string) int {
	fs, c := newFlagSet("list", e)
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	svc, log, ok := c.open(ctx, e)
	if !ok {
		return exitError
	}
	defer finish(svc, log)

	states, err := svc.States(ctx)
	if err != nil {
		log.Error("list states", "error", err)
		return exitError
	}
	for _, s := range states {
		fmt.Fprintln(e.stdout, s)
	}

	return exitOK
}

func runFind(ctx context.Context, e *env, args []string) int {
	fs, c := newFlagSet("find", e)
	from := fs.String("from", "", "start state (prompted for when empty)")
	to := fs.String("to", "", "goal state (prompted for when empty)")
	dotPath := fs.String("dot", "", "write a Graphviz rendering of the graph and path here")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	svc, log, ok := c.open(ctx, e)
	if !ok {
		return exitError
	}
	defer finish(svc, log)

	start, goal := *from, *to
	if start == "" || goal == "" {
		var err error
		if start, goal, err = prompt(ctx, svc, e, start, goal); err != nil {
			log.Error("read query", "error", err)
			return exitError
		}
	}

	rep, err := svc.Search(ctx, start, goal)
	if err != nil {
		fmt.Fprintln(e.stderr, "estrela:", err)
		return exitError
	}

	code := exitOK
	title := "Path: none"
	if rep.Found {
		fmt.Fprintln(e.stdout, render.Found(rep.Path))
		title = "Path: " + render.PathText(rep.Path)
	} else {
		fmt.Fprintln(e.stdout, render.NoPath)
		code = exitNoPath
	}

	// The answer is already out; a rendering failure must not change the exit code.
	if *dotPath != "" {
		if err := writeDOT(ctx, svc, *dotPath, rep.Path, title); err != nil {
			log.Warn("render failed", "path", *dotPath, "error", err)
		}
	}

	return code
}

// prompt lists the known states and asks for whichever endpoint is missing.
// Answers are trimmed and title-cased, so "rimnicu vilcea" finds
// "Rimnicu Vilcea".
func prompt(ctx context.Context, svc *service.Service, e *env, start, goal string) (string, string, error) {
	states, err := svc.States(ctx)
	if err != nil {
		return "", "", err
	}
	fmt.Fprintln(e.stdout, "States with a heuristic estimate:")
	for _, s := range states {
		fmt.Fprintln(e.stdout, s)
	}

	in := bufio.NewReader(e.stdin)
	ask := func(label string) (string, error) {
		fmt.Fprintf(e.stdout, "%s: ", label)
		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", fmt.Errorf("%s: %w", strings.ToLower(label), err)
		}
		return titleCase(strings.TrimSpace(line)), nil
	}

	if start == "" {
		if start, err = ask("Start state"); err != nil {
			return "", "", err
		}
	}
	if goal == "" {
		if goal, err = ask("Goal state"); err != nil {
			return "", "", err
		}
	}

	return start, goal, nil
}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			inWord = true
		} else {
			inWord = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

func writeDOT(ctx context.Context, svc *service.Service, path string, route []string, title string) error {
	g, err := svc.Graph(ctx)
	if err != nil {
		return err
	}
	out, err := render.DOT(g, route, title)
	if err != nil {
		return err
	}

	return os.WriteFile(path, out, 0o644)
}
