package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// Solver solves mazes and looks up earlier solutions.
type Solver interface {
	// Solve finds a shortest path through the maze given as raw rows.
	// An unreachable exit is a successful call with Reachable set to false.
	Solve(ctx context.Context, rows []string) (*dmn.Solution, error)

	// ByID returns a previously stored solution.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Solution, error)
}

// SolveRecorder observes solve outcomes.
type SolveRecorder interface {
	ObserveSolve(outcome string, elapsed time.Duration)
	ObserveCache(hit bool)
}
