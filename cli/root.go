// Package cli implements the pathfinder command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Process exit statuses.
const (
	ExitOK          = 0
	ExitUnreachable = 1
	ExitMalformed   = 2
	ExitFailure     = 3
	ExitUsage       = 64
)

// exitError carries the status a command wants the process to exit with.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func withStatus(code int, err error) error {
	return &exitError{code: code, err: err}
}

// Run executes the command line given by args and returns the process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, "Error:", err)
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return ExitUsage
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pathfinder",
		Short: "Shortest path maze solver",
		Long: `pathfinder finds a shortest path through a text maze.

A maze is a rectangular grid of characters: ' ' open floor, 'X' the start,
'O' the exit and '#' a wall. The solved maze is printed with the path marked '+'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newSolveCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newTokenCommand())

	return rootCmd
}
