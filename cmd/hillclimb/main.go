// Command hillclimb finds the fewest moves needed to climb letter height
// maps from the start marker to the end marker.
//
// It supports three commands:
//  1. "solve" prints the distance for each file (or "unreachable")
//  2. "render" prints a parsed map back with its dimensions
//  3. "serve" answers POST /v1/distance over HTTP and exports /metrics
//
// Every flag can also be set through a HILLCLIMB_* environment variable,
// and a .env file in the working directory is loaded when present.
package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "hillclimb"
)

var log = logrus.New()

// newApp builds the command tree writing results to stdout and reading
// "-" inputs from stdin.
func newApp(stdin io.Reader, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "fewest-move routes across letter height maps",
		Version: Version,
		Reader:  stdin,
		Writer:  stdout,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("HILLCLIMB_DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetLevel(logrus.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			solveCommand(),
			renderCommand(),
			serveCommand(),
		},
	}
}

func run() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Warn("loading .env file")
		}
	} else {
		log.Debug("loaded environment variables from .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newApp(os.Stdin, os.Stdout).Run(ctx, os.Args)
}

func main() {
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
