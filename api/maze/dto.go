package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
)

// SolveRequest carries a maze as raw rows.
type SolveRequest struct {
	Rows []string `json:"rows" binding:"required,min=1"`
}

// SolutionResponse describes a solved (or unreachable) maze.
type SolutionResponse struct {
	ID        uuid.UUID           `json:"id"`
	Reachable bool                `json:"reachable"`
	Steps     int                 `json:"steps"`
	Path      []maze.CellPosition `json:"path"`
	Rendered  []string            `json:"rendered"`
	SolvedAt  time.Time           `json:"solved_at"`
}

func newSolutionResponse(s *dmn.Solution) *SolutionResponse {
	path := s.Path
	if path == nil {
		path = []maze.CellPosition{}
	}
	return &SolutionResponse{
		ID:        s.ID,
		Reachable: s.Reachable,
		Steps:     s.Steps,
		Path:      path,
		Rendered:  splitRows(s.Rendered),
		SolvedAt:  s.SolvedAt,
	}
}
