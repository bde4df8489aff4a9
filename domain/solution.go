// Package domain holds the persisted maze solution model.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
)

// ErrSolutionNotFound is returned when no stored solution matches a lookup.
var ErrSolutionNotFound = errors.New("solution not found")

// Solution is the outcome of solving one maze, reachable or not.
type Solution struct {
	ID        uuid.UUID           `bson:"_id" json:"id" yaml:"id"`
	GridHash  string              `bson:"gridHash" json:"grid_hash" yaml:"grid_hash"`
	Rows      []string            `bson:"rows" json:"rows" yaml:"rows"`
	Reachable bool                `bson:"reachable" json:"reachable" yaml:"reachable"`
	Steps     int                 `bson:"steps" json:"steps" yaml:"steps"`
	Path      []maze.CellPosition `bson:"path" json:"path" yaml:"path"`
	Rendered  string              `bson:"rendered" json:"rendered" yaml:"rendered"`
	SolvedAt  time.Time           `bson:"solvedAt" json:"solved_at" yaml:"solved_at"`
}

// NewSolution records the result of searching grid. A nil path means the exit
// was unreachable.
func NewSolution(grid *maze.Grid, path maze.Path) *Solution {
	rows := grid.Rows()
	return &Solution{
		ID:        uuid.New(),
		GridHash:  HashRows(rows),
		Rows:      rows,
		Reachable: path != nil,
		Steps:     path.Steps(),
		Path:      path,
		Rendered:  grid.Render(path),
		SolvedAt:  time.Now().UTC(),
	}
}

// HashRows returns a stable content key for a maze.
func HashRows(rows []string) string {
	sum := sha256.Sum256([]byte(strings.Join(rows, "\n")))
	return hex.EncodeToString(sum[:])
}
