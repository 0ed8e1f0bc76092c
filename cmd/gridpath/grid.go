package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readGrid loads the map from the inline rows or, if that is empty, from
// a JSON file.
func readGrid(inline, path string) ([][]int, error) {
	switch {
	case inline != "" && path != "":
		return nil, errBothGrids
	case inline != "":
		return parseGrid(inline)
	case path != "":
		return loadGrid(path)
	default:
		return nil, errNoGrid
	}
}

// parseGrid reads rows separated by ';' with cells separated by ','.
// Whitespace around cells is ignored.
func parseGrid(s string) ([][]int, error) {
	var grid [][]int
	for r, line := range strings.Split(strings.TrimSpace(s), ";") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cells := strings.Split(line, ",")
		row := make([]int, len(cells))
		for c, cell := range cells {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("gridpath: row %d cell %d: %w", r, c, err)
			}
			row[c] = v
		}
		grid = append(grid, row)
	}

	return grid, nil
}

// loadGrid decodes a JSON [][]int file.
func loadGrid(path string) ([][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridpath: %w", err)
	}
	var grid [][]int
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, fmt.Errorf("gridpath: parse %s: %w", path, err)
	}

	return grid, nil
}
