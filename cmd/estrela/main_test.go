package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invoke runs the CLI in-process with quiet logging.
func invoke(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	e := &env{stdin: strings.NewReader(stdin), stdout: &out, stderr: &errOut}
	if len(args) > 0 {
		args = append([]string{args[0], "-log-level", "error"}, args[1:]...)
	}
	code = run(context.Background(), args, e)
	return code, out.String(), errOut.String()
}

func TestFind_Flags(t *testing.T) {
	code, out, _ := invoke(t, "", "find", "-from", "Arad", "-to", "Bucharest")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Path found: Arad -> Sibiu -> Rimnicu Vilcea -> Pitesti -> Bucharest\n", out)
}

func TestFind_Prompt(t *testing.T) {
	code, out, _ := invoke(t, "  rimnicu VILCEA \nbucharest", "find")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "States with a heuristic estimate:\nArad\n")
	assert.Contains(t, out, "Start state: Goal state: ")
	assert.True(t, strings.HasSuffix(out, "Path found: Rimnicu Vilcea -> Pitesti -> Bucharest\n"), out)
}

func TestFind_PromptEOF(t *testing.T) {
	code, _, _ := invoke(t, "", "find", "-from", "Arad")
	assert.Equal(t, exitError, code)
}

func TestFind_NoPath(t *testing.T) {
	code, out, _ := invoke(t, "", "find", "-dataset", "embed:small", "-from", "D", "-to", "A")
	assert.Equal(t, exitNoPath, code)
	assert.Equal(t, "no path found\n", out)
}

func TestFind_DOT(t *testing.T) {
	dot := filepath.Join(t.TempDir(), "route.dot")
	code, _, _ := invoke(t, "", "find", "-dataset", "embed:small", "-from", "A", "-to", "F", "-dot", dot)
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph")
	assert.Contains(t, string(data), "Path: A -> B -> E -> F")
}

func TestFind_RenderFailureKeepsAnswer(t *testing.T) {
	dot := filepath.Join(t.TempDir(), "missing", "route.dot")
	var out, errOut bytes.Buffer
	e := &env{stdin: strings.NewReader(""), stdout: &out, stderr: &errOut}

	code := run(context.Background(), []string{"find", "-dataset", "embed:small", "-from", "A", "-to", "F", "-dot", dot}, e)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Path found: A -> B -> E -> F\n", out.String())
	assert.Contains(t, errOut.String(), "render failed")
}

func TestFind_Budget(t *testing.T) {
	code, _, errOut := invoke(t, "", "find", "-max-expansions", "1", "-from", "Arad", "-to", "Bucharest")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "budget")
}

func TestList(t *testing.T) {
	code, out, _ := invoke(t, "", "list", "-dataset", "embed:small")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "A\nB\nC\nD\nE\nF\n", out)
}

func TestBatch(t *testing.T) {
	in := "# route checks\nArad,Bucharest\n\nArad,Atlantis\nbroken line\nBucharest,Bucharest\n"
	code, out, errOut := invoke(t, in, "batch", "-workers", "3")
	assert.Equal(t, exitError, code) // the malformed line
	assert.Equal(t, strings.Join([]string{
		"Arad,Bucharest: Path found: Arad -> Sibiu -> Rimnicu Vilcea -> Pitesti -> Bucharest (cost 418)",
		"Arad,Atlantis: no path found",
		"Bucharest,Bucharest: Path found: Bucharest (cost 0)",
	}, "\n")+"\n", out)
	assert.Contains(t, errOut, "line=5")

	code, _, _ = invoke(t, "Arad,Bucharest\nArad,Atlantis\n", "batch")
	assert.Equal(t, exitNoPath, code)
}

func TestSeedThenFind(t *testing.T) {
	p := filepath.Join(t.TempDir(), "small.yaml.lz4")
	code, _, _ := invoke(t, "", "seed", "-dataset", "embed:small", "-out", p)
	require.Equal(t, exitOK, code)

	code, out, _ := invoke(t, "", "find", "-dataset", p, "-from", "A", "-to", "F")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Path found: A -> B -> E -> F\n", out)

	code, _, _ = invoke(t, "", "seed")
	assert.Equal(t, exitError, code)
}

func TestAudit(t *testing.T) {
	code, out, _ := invoke(t, "", "audit", "-dataset", "embed:small", "-goal", "F")
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, out, "overestimate A: h=7 > exact 3")
	assert.Contains(t, out, "inconsistent B -> E: h=6 > w+h'=2")
	assert.Contains(t, out, "admissible: false, consistent: false")

	code, _, _ = invoke(t, "", "audit")
	assert.Equal(t, exitError, code)

	code, out, _ = invoke(t, "", "audit", "-dataset", "embed:small", "-goal", "F", "-horizon", "2")
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, out, "goal F: 3 states, 6 edges checked, 3 cannot reach the goal")
	assert.NotContains(t, out, "overestimate A:")

	code, _, _ = invoke(t, "", "audit", "-dataset", "embed:small", "-goal", "F", "-horizon", "-1")
	assert.Equal(t, exitError, code)
}

func TestMetricsTextfile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "estrela.prom")
	code, _, _ := invoke(t, "", "find", "-metrics-textfile", p, "-from", "Arad", "-to", "Bucharest")
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `estrela_searches_total{outcome="found"} 1`)
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := invoke(t, "", "teleport")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, `unknown command "teleport"`)

	code, _, _ = invoke(t, "")
	assert.Equal(t, exitError, code)

	code, _, _ = invoke(t, "", "find", "-source", "sqlite", "-from", "A", "-to", "B")
	assert.Equal(t, exitError, code)
}

func TestTitleCase(t *testing.T) {
	for in, want := range map[string]string{
		"rimnicu vilcea": "Rimnicu Vilcea",
		"ARAD":           "Arad",
		"drobeta-turnu":  "Drobeta-Turnu",
		"":               "",
		"a1b":            "A1B",
	} {
		assert.Equal(t, want, titleCase(in), in)
	}
}

func TestGridThenFind(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "terrain.yaml")
	require.NoError(t, os.WriteFile(mapPath, []byte("cells:\n  - [1, 9, 1]\n  - [1, 1, 1]\n"), 0o644))
	out := filepath.Join(dir, "terrain.yaml.zst")

	code, _, _ := invoke(t, "", "grid", "-map", mapPath, "-goal", "2,0", "-out", out)
	require.Equal(t, exitOK, code)

	code, stdout, _ := invoke(t, "", "find", "-dataset", out, "-from", "0,0", "-to", "2,0")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Path found: 0,0 -> 0,1 -> 1,1 -> 2,1 -> 2,0\n", stdout)

	code, _, _ = invoke(t, "", "grid", "-map", mapPath, "-goal", "9,9", "-out", out)
	assert.Equal(t, exitError, code)
	code, _, _ = invoke(t, "", "grid", "-map", mapPath)
	assert.Equal(t, exitError, code)
}
