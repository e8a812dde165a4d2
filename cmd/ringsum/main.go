package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/ringsum/internal/cli"
	"github.com/katalvlaran/ringsum/quest"
)

// main is the entrypoint for the ringsum command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, solves the requested entry and prints the answer to outW.
// Logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := inv.Config.Logger(logW)
	src := inv.Config.Source()
	src.Logger = logger

	solver := quest.NewSolver(src, logger)
	solver.Radius = inv.Config.Radius

	answer, err := solver.Solve(inv.Entry.Quest, inv.Entry.Part)
	if err != nil {
		return err
	}
	fmt.Fprintln(outW, answer)

	return nil
}
