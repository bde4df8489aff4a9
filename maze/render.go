package maze

import "strings"

// Render returns the grid as text with every open cell on path marked with '+'.
// Start and exit keep their own markers.
func (g *Grid) Render(path Path) string {
	canvas := make([][]byte, g.height)
	for row := range g.cells {
		canvas[row] = append([]byte(nil), g.cells[row]...)
	}

	for _, pos := range path {
		if g.InBounds(pos) && canvas[pos.Row][pos.Col] == OpenSymbol {
			canvas[pos.Row][pos.Col] = PathSymbol
		}
	}

	var output strings.Builder
	for row := range canvas {
		if row > 0 {
			output.WriteByte('\n')
		}
		output.Write(canvas[row])
	}
	return output.String()
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	return g.Render(nil)
}
