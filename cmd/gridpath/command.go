package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/katalvlaran/gridkit/search"
)

var (
	errNoGrid    = errors.New("gridpath: one of --grid or --file is required")
	errBothGrids = errors.New("gridpath: --grid and --file are mutually exclusive")
)

func newCommand() *cli.Command {
	names := make([]string, 0, len(search.Algorithms()))
	for _, a := range search.Algorithms() {
		names = append(names, a.String())
	}

	return &cli.Command{
		Name:  "gridpath",
		Usage: "search a weighted grid for a route",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "grid",
				Aliases: []string{"g"},
				Usage:   "inline map, rows separated by ';' and cells by ','",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "JSON file holding a [][]int map",
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   search.AStar.String(),
				Usage:   "one of " + strings.Join(names, ", "),
			},
			&cli.IntFlag{
				Name:  "start",
				Value: 0,
				Usage: "start node id (row-major)",
			},
			&cli.IntFlag{
				Name:  "end",
				Value: -1,
				Usage: "goal node id; -1 selects the last cell",
			},
			&cli.BoolFlag{
				Name:  "conn8",
				Usage: "link diagonal neighbors as well",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log search events",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrWriter)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cmd.Bool("debug") {
		log.SetLevel(logrus.DebugLevel)
	}

	weights, err := readGrid(cmd.String("grid"), cmd.String("file"))
	if err != nil {
		return err
	}
	var opts []gridgraph.Option
	if cmd.Bool("conn8") {
		opts = append(opts, gridgraph.WithConnectivity(gridgraph.Conn8))
	}
	g, err := gridgraph.New(weights, opts...)
	if err != nil {
		return err
	}

	alg, err := search.ParseAlgorithm(cmd.String("algorithm"))
	if err != nil {
		return err
	}
	start := int(cmd.Int("start"))
	end := int(cmd.Int("end"))
	if end < 0 {
		end = g.Len() - 1
	}
	log.WithFields(logrus.Fields{"rows": g.Rows, "cols": g.Cols, "start": start, "end": end}).
		Debug("gridpath: map loaded")

	res, err := search.Run(g, alg, start, end, search.WithContext(ctx), search.WithLogger(log))
	if err != nil {
		return err
	}

	out := cmd.Writer
	if alg.Pathfinding() {
		if !res.Found {
			fmt.Fprintf(out, "%s: no path from %d to %d\n", alg, start, end)
			return nil
		}
		fmt.Fprintf(out, "%s: path %v cost %d\n", alg, res.Path, res.Cost)
	} else {
		fmt.Fprintf(out, "%s: order %v\n", alg, res.Order)
	}
	_, err = fmt.Fprint(out, render(g, res.Path, start, end, alg.Pathfinding()))

	return err
}
