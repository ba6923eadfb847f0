package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/hillclimb/heightmap"
)

var errOneFile = errors.New("exactly one FILE required")

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "print a parsed map back with its dimensions",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{dirFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errOneFile
			}
			store, err := heightmap.NewStore(os.DirFS(cmd.String("dir")))
			if err != nil {
				return err
			}
			g, err := loadGrid(cmd, store, cmd.Args().First())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.Root().Writer, "%s%dx%d start %v end %v\n%s\n",
				g, g.Rows(), g.Cols(), g.Start(), g.End(), elevationCounts(g))
			return err
		},
	}
}

// elevationCounts lists the number of cells per elevation letter, skipping
// letters that do not occur, e.g. "a:6 b:3 z:2".
func elevationCounts(g *heightmap.Grid) string {
	var sb strings.Builder
	for e, n := range g.Histogram() {
		if n == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%c:%d", 'a'+e, n)
	}
	return sb.String()
}
