package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/board"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRun_TextBoard(t *testing.T) {
	path := writeFile(t, "wall.txt", "S.#.\n..#.\n...E\n")

	out, err := execute(t, "run", "--board", path, "--algorithm", "bfs")
	require.NoError(t, err)
	assert.Equal(t, "So#.\n*o#.\n***E\nbfs: path of 5 steps, 8 cells visited\n", out)
}

func TestRun_Trace(t *testing.T) {
	path := writeFile(t, "line.txt", "S.E\n")

	out, err := execute(t, "run", "-b", path, "--trace")
	require.NoError(t, err)
	assert.Equal(t, "visit 1 (0,0)\nvisit 2 (0,1)\nvisit 3 (0,2)\nS*E\nbfs: path of 2 steps, 3 cells visited\n", out)
}

func TestRun_BoardAlgorithm(t *testing.T) {
	path := writeFile(t, "board.yaml", "algorithm: astar\nlayout: |\n  S#E\n")

	out, err := execute(t, "run", "--board", path)
	require.NoError(t, err)
	assert.Contains(t, out, "astar: no path, 1 cells visited")
}

func TestRun_PaintAndSave(t *testing.T) {
	saved := filepath.Join(t.TempDir(), "saved.yaml")

	_, err := execute(t, "run", "--rows", "3", "--cols", "3",
		"--wall", "1,1", "--wall", "0,1", "--clear", "0,1", "--save", saved, "-a", "astar")
	require.NoError(t, err)

	b, err := board.Load(saved)
	require.NoError(t, err)
	assert.Equal(t, "astar", b.Algorithm)
	assert.Equal(t, []gridgraph.Coord{{Row: 1, Col: 1}}, b.Walls)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "--rows", "3", "--cols", "3", "--wall", "0,0")
	assert.ErrorIs(t, err, gridgraph.ErrImmutableEndpoint)

	_, err = execute(t, "run", "--wall", "nope")
	assert.Error(t, err)

	_, err = execute(t, "run", "--algorithm", "dijkstra")
	assert.Error(t, err)

	_, err = execute(t, "run", "--board", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBreach(t *testing.T) {
	path := writeFile(t, "blocked.txt", "S#E\n")

	out, err := execute(t, "breach", "--board", path)
	require.NoError(t, err)
	assert.Equal(t, "clear 1 wall(s):\n  0,1\n", out)

	path = writeFile(t, "open.txt", "S.E\n")
	out, err = execute(t, "breach", "--board", path)
	require.NoError(t, err)
	assert.Equal(t, "start and end are already connected\n", out)
}
