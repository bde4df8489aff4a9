package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

// Solve outcomes reported to the recorder.
const (
	OutcomeSolved      = "solved"
	OutcomeUnreachable = "unreachable"
	OutcomeMalformed   = "malformed"
	OutcomeFailed      = "failed"
)

var (
	ErrNilLogger      = errors.New("solver service requires a logger")
	ErrNoSolutionRepo = errors.New("solution repository is not configured")
)

// SolverOptions holds the optional collaborators of a SolverService.
// Nil fields disable the corresponding feature.
type SolverOptions struct {
	Cache    i.SolutionCache
	Repo     i.SolutionRepo
	Recorder i.SolveRecorder
}

// SolverService solves mazes, caching results by grid content and persisting them.
type SolverService struct {
	cache    i.SolutionCache
	repo     i.SolutionRepo
	recorder i.SolveRecorder
	logger   i.Logger
}

// NewSolverService creates a SolverService.
func NewSolverService(logger i.Logger, opts *SolverOptions) (*SolverService, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if opts == nil {
		opts = &SolverOptions{}
	}

	return &SolverService{
		cache:    opts.Cache,
		repo:     opts.Repo,
		recorder: opts.Recorder,
		logger:   logger,
	}, nil
}

// Solve builds the grid, returns a cached solution when one exists and otherwise
// searches for a shortest path. Malformed mazes are returned as errors and never cached.
func (s *SolverService) Solve(ctx context.Context, rows []string) (*dmn.Solution, error) {
	started := time.Now()

	grid, err := maze.NewGrid(rows)
	if err != nil {
		s.observe(OutcomeMalformed, started)
		return nil, err
	}
	hash := dmn.HashRows(grid.Rows())

	if s.cache != nil {
		cached := s.cached(ctx, hash)
		if s.recorder != nil {
			s.recorder.ObserveCache(cached != nil)
		}
		if cached != nil {
			return cached, nil
		}

		unlock, err := s.cache.Lock(ctx, hash)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Locking grid %s: %v", hash[:12], err))
		} else {
			defer unlock()
			// Another instance may have solved it while we waited.
			if cached := s.cached(ctx, hash); cached != nil {
				return cached, nil
			}
		}
	}

	s.warnAmbiguous(grid, hash)

	path, err := grid.Solve()
	if err != nil && !errors.Is(err, maze.ErrUnreachable) {
		s.observe(OutcomeMalformed, started)
		return nil, err
	}

	solution := dmn.NewSolution(grid, path)
	if solution.Reachable {
		s.observe(OutcomeSolved, started)
	} else {
		s.observe(OutcomeUnreachable, started)
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, solution); err != nil {
			s.observe(OutcomeFailed, started)
			return nil, fmt.Errorf("saving solution: %w", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, solution); err != nil {
			s.logger.Warning(fmt.Sprintf("Caching solution %s: %v", solution.ID, err))
		}
	}

	s.logger.Debug(fmt.Sprintf("Solved grid %s: reachable=%v steps=%d", hash[:12], solution.Reachable, solution.Steps))
	return solution, nil
}

// ByID retrieves a stored solution.
func (s *SolverService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Solution, error) {
	if s.repo == nil {
		return nil, ErrNoSolutionRepo
	}
	return s.repo.ByID(ctx, id)
}

// cached returns the cached solution for hash, treating cache failures as misses.
func (s *SolverService) cached(ctx context.Context, hash string) *dmn.Solution {
	solution, err := s.cache.Get(ctx, hash)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Reading cached solution: %v", err))
	}
	return solution
}

// warnAmbiguous logs when the grid carries more than one start or exit marker.
func (s *SolverService) warnAmbiguous(grid *maze.Grid, hash string) {
	for _, class := range []maze.Classification{maze.Start, maze.Exit} {
		if n := grid.Count(class); n > 1 {
			s.logger.Warning(fmt.Sprintf("Grid %s has %d %s markers, using the first", hash[:12], n, class))
		}
	}
}

func (s *SolverService) observe(outcome string, started time.Time) {
	if s.recorder != nil {
		s.recorder.ObserveSolve(outcome, time.Since(started))
	}
}
