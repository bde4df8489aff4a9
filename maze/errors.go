package maze

import (
	"errors"
	"fmt"
)

// Maze errors.
var (
	ErrEmptyInput     = errors.New("maze: empty input")
	ErrRaggedGrid     = errors.New("maze: rows differ in length")
	ErrOutOfBounds    = errors.New("maze: position out of bounds")
	ErrInvalidCell    = errors.New("maze: invalid cell")
	ErrImpassable     = errors.New("maze: endpoint is a wall")
	ErrMarkerNotFound = errors.New("maze: marker not found")

	// ErrUnreachable means the exit exists but no path connects it to the start.
	// It is a negative result, not an input defect.
	ErrUnreachable = errors.New("maze: exit unreachable")
)

// CellError attaches the offending position to a cell level failure.
type CellError struct {
	Pos    CellPosition
	Symbol byte // raw content, zero when the position is out of bounds
	Err    error
}

// Error implements the error interface.
func (e *CellError) Error() string {
	if errors.Is(e.Err, ErrInvalidCell) {
		return fmt.Sprintf("%s %q at %s", e.Err, e.Symbol, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Pos)
}

// Unwrap returns the sentinel error.
func (e *CellError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err describes defective input, as opposed to
// ErrUnreachable or a nil error.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrRaggedGrid) ||
		errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrInvalidCell) ||
		errors.Is(err, ErrImpassable) ||
		errors.Is(err, ErrMarkerNotFound)
}
