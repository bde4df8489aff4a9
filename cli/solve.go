package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by the solve command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// solveReport is the structured output of the solve command.
type solveReport struct {
	File      string              `json:"file" yaml:"file"`
	Reachable bool                `json:"reachable" yaml:"reachable"`
	Steps     int                 `json:"steps" yaml:"steps"`
	Path      []maze.CellPosition `json:"path" yaml:"path"`
	Rendered  []string            `json:"rendered" yaml:"rendered"`
}

func newSolveCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a maze file and print it with the shortest path marked",
		Long: `Solve reads a maze from FILE and prints it with a shortest path from X to O
marked with '+'.

Exit status is 0 when a path was found, 1 when the exit cannot be reached,
2 when the maze is malformed or unreadable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			return runSolve(cmd.OutOrStdout(), args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	return cmd
}

func runSolve(out io.Writer, file, format string) error {
	grid, err := maze.Load(file)
	if err != nil {
		return withStatus(ExitMalformed, err)
	}

	path, err := grid.Solve()
	if err != nil && !errors.Is(err, maze.ErrUnreachable) {
		return withStatus(ExitMalformed, err)
	}
	unreachable := err

	switch format {
	case formatText:
		if unreachable == nil {
			fmt.Fprintln(out, grid.Render(path))
		}
	default:
		report := solveReport{
			File:      file,
			Reachable: unreachable == nil,
			Steps:     path.Steps(),
			Path:      path,
			Rendered:  grid.Rows(),
		}
		if unreachable == nil {
			report.Rendered = splitLines(grid.Render(path))
		}
		if err := writeReport(out, format, report); err != nil {
			return withStatus(ExitFailure, err)
		}
	}

	if unreachable != nil {
		return withStatus(ExitUnreachable, fmt.Errorf("no path: %w", unreachable))
	}
	return nil
}

func writeReport(out io.Writer, format string, report solveReport) error {
	if report.Path == nil {
		report.Path = []maze.CellPosition{}
	}

	if format == formatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
