package maze

// Direction is a single orthogonal step.
type Direction struct {
	Name  string
	Delta CellPosition
}

// Directions lists the orthogonal steps in the order neighbors are examined.
// The order is fixed so that ties between equally short paths break the same
// way on every run.
var Directions = [4]Direction{
	{Name: "North", Delta: CellPosition{Row: -1, Col: 0}},
	{Name: "South", Delta: CellPosition{Row: 1, Col: 0}},
	{Name: "West", Delta: CellPosition{Row: 0, Col: -1}},
	{Name: "East", Delta: CellPosition{Row: 0, Col: 1}},
}

// Adjacent returns the neighbors of pos that a search may step onto, in
// Directions order. Walls and positions outside the grid are skipped; an
// invalid neighbor fails with ErrInvalidCell.
func (g *Grid) Adjacent(pos CellPosition) ([]CellPosition, error) {
	result := make([]CellPosition, 0, len(Directions))
	for _, dir := range Directions {
		neighbor := pos.Add(dir.Delta)
		if !g.InBounds(neighbor) {
			continue
		}

		class, err := g.Classify(neighbor)
		if err != nil {
			return nil, err
		}
		if class.Passable() {
			result = append(result, neighbor)
		}
	}
	return result, nil
}
