package maze

import "fmt"

// Raw cell symbols recognized in a maze file.
const (
	OpenSymbol  byte = ' '
	StartSymbol byte = 'X'
	ExitSymbol  byte = 'O'
	WallSymbol  byte = '#'
	PathSymbol  byte = '+'
)

// Classification is the semantic role of a single maze cell.
type Classification uint8

const (
	Invalid Classification = iota
	Open
	Start
	Exit
	Wall
)

// String returns the classification name.
func (c Classification) String() string {
	switch c {
	case Open:
		return "open"
	case Start:
		return "start"
	case Exit:
		return "exit"
	case Wall:
		return "wall"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("Unknown classification: %d", uint8(c))
}

// Passable reports whether a search may step onto a cell of this classification.
func (c Classification) Passable() bool {
	return c == Open || c == Start || c == Exit
}

// classify maps a raw symbol onto its classification.
func classify(symbol byte) Classification {
	switch symbol {
	case OpenSymbol:
		return Open
	case StartSymbol:
		return Start
	case ExitSymbol:
		return Exit
	case WallSymbol:
		return Wall
	default:
		return Invalid
	}
}

// symbolOf is the inverse of classify for the four recognized classifications.
func symbolOf(c Classification) (byte, bool) {
	switch c {
	case Open:
		return OpenSymbol, true
	case Start:
		return StartSymbol, true
	case Exit:
		return ExitSymbol, true
	case Wall:
		return WallSymbol, true
	}
	return 0, false
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row" yaml:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" yaml:"col" bson:"col"` // Column index of the cell
}

// String formats the position as (row, col).
func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d, %d)", cp.Row, cp.Col)
}

// Add returns the position moved by delta.
func (cp CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// IsAdjacent reports whether other is exactly one orthogonal step away.
func (cp CellPosition) IsAdjacent(other CellPosition) bool {
	dr, dc := cp.Row-other.Row, cp.Col-other.Col
	return dr*dr+dc*dc == 1
}
