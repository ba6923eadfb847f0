package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// stdinName stands for standard input in FILE arguments.
const stdinName = "-"

var errNoFiles = errors.New("no FILE given")

// dirFlag is shared by the commands that load maps from disk.
func dirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "dir",
		Usage:   "directory FILE names are resolved against",
		Value:   ".",
		Sources: cli.EnvVars("HILLCLIMB_DIR"),
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "print the fewest moves to the end of each map",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			dirFlag(),
			&cli.StringFlag{
				Name:    "from",
				Usage:   `where the route begins: "start" or "lowest" (any cell at elevation a)`,
				Value:   fromStart,
				Sources: cli.EnvVars("HILLCLIMB_FROM"),
			},
			&cli.StringFlag{
				Name:    "rule",
				Usage:   `move rule: "climb" (rise at most step) or "within" (change at most step)`,
				Value:   adjacency.NameClimb,
				Sources: cli.EnvVars("HILLCLIMB_RULE"),
			},
			&cli.IntFlag{
				Name:    "step",
				Usage:   "elevation step allowed by the rule",
				Value:   1,
				Sources: cli.EnvVars("HILLCLIMB_STEP"),
			},
			&cli.BoolFlag{
				Name:    "verify",
				Usage:   "cross-check each distance with independent searches",
				Sources: cli.EnvVars("HILLCLIMB_VERIFY"),
			},
			&cli.BoolFlag{
				Name:    "trace",
				Usage:   "log every cell as it leaves the frontier",
				Sources: cli.EnvVars("HILLCLIMB_TRACE"),
			},
		},
		Action: runSolve,
	}
}

func runSolve(ctx context.Context, cmd *cli.Command) error {
	names := cmd.Args().Slice()
	if len(names) == 0 {
		return errNoFiles
	}
	c, err := newSearchConfig(cmd.String("from"), cmd.String("rule"), cmd.Int("step"))
	if err != nil {
		return err
	}
	store, err := heightmap.NewStore(os.DirFS(cmd.String("dir")))
	if err != nil {
		return err
	}
	if cmd.Bool("trace") && !log.IsLevelEnabled(logrus.DebugLevel) {
		log.SetLevel(logrus.DebugLevel)
	}

	w := cmd.Root().Writer
	for _, name := range names {
		g, err := loadGrid(cmd, store, name)
		if err != nil {
			return err
		}

		opts := []bfs.Option{bfs.WithContext(ctx)}
		if cmd.Bool("trace") {
			opts = append(opts, bfs.WithOnDequeue(traceDequeue(name)))
		}
		res, err := c.search(g, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		log.WithFields(logrus.Fields{
			"file":     name,
			"distance": res.Distance,
			"visited":  res.Visited,
		}).Debug("solved")

		if cmd.Bool("verify") {
			if err := verify(ctx, g, c, res); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, res); err != nil {
			return err
		}
	}
	return nil
}

// loadGrid reads name through store, or from the command's input for "-".
func loadGrid(cmd *cli.Command, store *heightmap.Store, name string) (*heightmap.Grid, error) {
	if name != stdinName {
		return store.Load(name)
	}
	g, err := heightmap.Parse(cmd.Root().Reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

func traceDequeue(name string) func(heightmap.Coord, int) {
	return func(c heightmap.Coord, depth int) {
		log.WithFields(logrus.Fields{
			"file":  name,
			"cell":  c.String(),
			"depth": depth,
		}).Debug("dequeue")
	}
}
