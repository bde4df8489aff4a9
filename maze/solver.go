package maze

import (
	"errors"
	"fmt"
	"slices"
)

// Path is an ordered sequence of adjacent cells from start to exit inclusive.
type Path []CellPosition

// Steps returns the number of moves along the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Solve locates the start and exit markers and returns a shortest path between them.
// When a marker occurs more than once the first one in row-major order is used.
func (g *Grid) Solve() (Path, error) {
	start, err := g.Locate(Start)
	if err != nil {
		return nil, err
	}
	exit, err := g.Locate(Exit)
	if err != nil {
		return nil, err
	}
	return g.ShortestPath(start, exit)
}

// ShortestPath runs a breadth-first search from start and returns one path of
// minimum length to exit. It returns ErrUnreachable when no such path exists.
func (g *Grid) ShortestPath(start, exit CellPosition) (Path, error) {
	if err := g.checkEndpoint(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := g.checkEndpoint(exit); err != nil {
		return nil, fmt.Errorf("exit: %w", err)
	}
	if start == exit {
		return Path{start}, nil
	}

	// visited maps each discovered cell to its predecessor; the start has none.
	visited := map[CellPosition]*CellPosition{start: nil}
	layer := []CellPosition{start}

	for len(layer) > 0 {
		var next []CellPosition
		for _, pos := range layer {
			neighbors, err := g.Adjacent(pos)
			if err != nil {
				return nil, err
			}

			for _, neighbor := range neighbors {
				if neighbor == exit {
					return append(collectPath(pos, visited), exit), nil
				}
				if _, seen := visited[neighbor]; seen {
					continue
				}
				from := pos
				visited[neighbor] = &from
				next = append(next, neighbor)
			}
		}
		layer = next
	}

	return nil, ErrUnreachable
}

// checkEndpoint verifies that pos is inside the grid and passable.
func (g *Grid) checkEndpoint(pos CellPosition) error {
	class, err := g.Classify(pos)
	if err != nil {
		return err
	}
	if !class.Passable() {
		return &CellError{Pos: pos, Symbol: WallSymbol, Err: ErrImpassable}
	}
	return nil
}

// collectPath walks predecessor links from pos back to the start and returns
// the cells in start-first order.
func collectPath(pos CellPosition, visited map[CellPosition]*CellPosition) Path {
	var path Path
	for p := &pos; p != nil; p = visited[*p] {
		path = append(path, *p)
	}
	slices.Reverse(path)
	return path
}

// Validate checks that path is a simple path from start to exit whose every
// step is a legal move in g.
func (g *Grid) Validate(path Path, start, exit CellPosition) error {
	if len(path) == 0 || path[0] != start || path[len(path)-1] != exit {
		return errors.New("maze: path does not join start to exit")
	}

	seen := make(map[CellPosition]struct{}, len(path))
	for i, pos := range path {
		if _, dup := seen[pos]; dup {
			return fmt.Errorf("maze: path revisits %s", pos)
		}
		seen[pos] = struct{}{}

		if i == 0 {
			continue
		}
		if !path[i-1].IsAdjacent(pos) {
			return fmt.Errorf("maze: path jumps %s -> %s", path[i-1], pos)
		}
		class, err := g.Classify(pos)
		if err != nil {
			return err
		}
		if !class.Passable() {
			return fmt.Errorf("maze: illegal step %s -> %s", path[i-1], pos)
		}
	}
	return nil
}
