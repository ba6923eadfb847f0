package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "answer distance queries over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "listen address",
				Value:   ":8080",
				Sources: cli.EnvVars("HILLCLIMB_ADDR"),
			},
			&cli.Int64Flag{
				Name:    "max-bytes",
				Usage:   "largest accepted request body",
				Value:   1 << 20,
				Sources: cli.EnvVars("HILLCLIMB_MAX_BYTES"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			server := &http.Server{
				Addr:              cmd.String("addr"),
				Handler:           logRequests(NewServer(cmd.Int64("max-bytes")).ServeMux()),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return listenAndServe(ctx, server)
		},
	}
}

// listenAndServe runs server until ctx is done, then shuts it down.
func listenAndServe(ctx context.Context, server *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("listening")
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
