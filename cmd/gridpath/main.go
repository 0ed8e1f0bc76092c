// Command gridpath runs a grid search over a weight map and prints the
// route it finds.
//
// The map is given inline with --grid (rows separated by ';', cells by ',')
// or as a JSON file of [][]int with --file. Negative cells are walls.
//
//	gridpath --grid "1,-1,1;1,1,1" --algorithm dijkstra --start 0 --end 2
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}
