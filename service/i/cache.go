package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
)

// SolutionCache keeps recent solutions keyed by grid hash.
type SolutionCache interface {
	// Get returns the cached solution for the grid hash, or (nil, nil) on a miss.
	Get(ctx context.Context, gridHash string) (*dmn.Solution, error)

	// Set stores a solution under its grid hash.
	Set(ctx context.Context, solution *dmn.Solution) error

	// Lock acquires an exclusive lock for the grid hash and returns its release function.
	Lock(ctx context.Context, gridHash string) (func(), error)
}
