package dfs_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/dfs"
	"github.com/katalvlaran/gridkit/gridgraph"
)

func benchGraph(b *testing.B, n int) *gridgraph.Graph {
	b.Helper()
	grid := make([][]int, n)
	for r := range grid {
		grid[r] = make([]int, n)
	}
	g, err := gridgraph.New(grid)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkDFS walks an open 200×200 grid with the explicit stack.
func BenchmarkDFS(b *testing.B) {
	g := benchGraph(b, 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkRecursive walks the same grid recursively.
func BenchmarkRecursive(b *testing.B) {
	g := benchGraph(b, 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Recursive(g, 0)
	}
}
