package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/search"
)

const scenario = "1,-1,1,3,1; 1,-1,1,1,1; 1,-1,8,5,1; 1,-1,3,1,1; 1,1,1,1,1"

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out
	cmd.ErrWriter = &errOut
	err := cmd.Run(context.Background(), append([]string{"gridpath"}, args...))

	return out.String(), errOut.String(), err
}

func TestParseGrid(t *testing.T) {
	grid, err := parseGrid(" 1, -1 ;0,2; ")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, -1}, {0, 2}}, grid)

	_, err = parseGrid("1,x")
	assert.Error(t, err)
}

func TestReadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[1,2],[3,-1]]`), 0o600))

	grid, err := readGrid("", path)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, -1}}, grid)

	_, err = readGrid("", "")
	assert.ErrorIs(t, err, errNoGrid)
	_, err = readGrid("1", path)
	assert.ErrorIs(t, err, errBothGrids)
	_, err = readGrid("", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestCLI_Scenario(t *testing.T) {
	out, _, err := runCLI(t, "--grid", scenario, "--algorithm", "dijkstra")
	require.NoError(t, err)
	assert.Equal(t,
		"dijkstra: path [0 5 10 15 20 21 22 23 24] cost 9\n"+
			"S#...\n"+
			"*#...\n"+
			"*#...\n"+
			"*#...\n"+
			"****E\n",
		out)
}

func TestCLI_NoPath(t *testing.T) {
	out, _, err := runCLI(t, "-g", "1,-1,1", "-a", "path-bfs", "--end", "2")
	require.NoError(t, err)
	assert.Equal(t, "path-bfs: no path from 0 to 2\n", out)
}

func TestCLI_Traversal(t *testing.T) {
	out, _, err := runCLI(t, "-g", "1,1;1,1", "-a", "dfs")
	require.NoError(t, err)
	assert.Contains(t, out, "dfs: order [0 2 3 1]\n")
}

func TestCLI_Debug(t *testing.T) {
	_, logs, err := runCLI(t, "-g", "1,1;1,1", "--debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "gridpath: map loaded")
	assert.Contains(t, logs, "search: done")
}

func TestCLI_Errors(t *testing.T) {
	_, _, err := runCLI(t)
	assert.ErrorIs(t, err, errNoGrid)

	_, _, err = runCLI(t, "-g", "1,1", "-a", "greedy")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, _, err = runCLI(t, "-g", "1,1;1")
	assert.Error(t, err)
}
