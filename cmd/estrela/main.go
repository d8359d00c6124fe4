// Command estrela finds minimum-cost routes with A*.
//
// Usage:
//
//	estrela list   [flags]
//	estrela find   [flags] [-from A -to B] [-dot out.dot]
//	estrela batch  [flags] [-queries file]
//	estrela seed   [flags] [-out uri]
//	estrela audit  [flags] -goal B
//	estrela grid   [flags] -map map.yaml -goal x,y -out uri
//
// Every command accepts -config, -dataset, -source, -max-expansions,
// -log-level, -log-format and -metrics-textfile.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes.
const (
	exitOK     = 0
	exitNoPath = 1 // also: audit found violations, batch had a miss
	exitError  = 2
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, e *env, args []string) int
}

var commands = []command{
	{"list", "print the states that carry a heuristic estimate", runList},
	{"find", "search one route, prompting for missing endpoints", runFind},
	{"batch", "search many start,goal lines concurrently", runBatch},
	{"seed", "write the dataset to a file, S3 or DynamoDB", runSeed},
	{"audit", "check the stored heuristic against exact costs", runAudit},
	{"grid", "convert a terrain map into a dataset aimed at one goal cell", runGrid},
}

// env is the process boundary a command sees.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, e *env) int {
	if len(args) == 0 {
		usage(e.stderr)
		return exitError
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, e, args[1:])
		}
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(e.stdout)
		return exitOK
	}
	fmt.Fprintf(e.stderr, "estrela: unknown command %q\n", args[0])
	usage(e.stderr)
	return exitError
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: estrela <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-6s %s\n", c.name, c.usage)
	}
}
