package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Run("Rectangular rows", func(t *testing.T) {
		g, err := NewGrid([]string{"X #", "  O"})
		require.NoError(t, err)
		assert.Equal(t, 3, g.Width())
		assert.Equal(t, 2, g.Height())
		assert.Equal(t, []string{"X #", "  O"}, g.Rows())
	})

	t.Run("No rows", func(t *testing.T) {
		_, err := NewGrid(nil)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("Zero width", func(t *testing.T) {
		_, err := NewGrid([]string{""})
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("Ragged rows", func(t *testing.T) {
		_, err := NewGrid([]string{"X  ", " O"})
		assert.ErrorIs(t, err, ErrRaggedGrid)
	})

	t.Run("Rows are copied", func(t *testing.T) {
		g, err := NewGrid([]string{"XO"})
		require.NoError(t, err)
		rows := g.Rows()
		rows[0] = "##"
		assert.Equal(t, "XO", g.String())
	})
}

func TestClassify(t *testing.T) {
	g, err := NewGrid([]string{"X #", "?O "})
	require.NoError(t, err)

	cases := []struct {
		pos  CellPosition
		want Classification
	}{
		{CellPosition{0, 0}, Start},
		{CellPosition{0, 1}, Open},
		{CellPosition{0, 2}, Wall},
		{CellPosition{1, 1}, Exit},
		{CellPosition{1, 2}, Open},
	}
	for _, c := range cases {
		got, err := g.Classify(c.pos)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got, c.pos.String())
	}

	t.Run("Invalid symbol", func(t *testing.T) {
		_, err := g.Classify(CellPosition{1, 0})
		assert.ErrorIs(t, err, ErrInvalidCell)

		var cellErr *CellError
		require.ErrorAs(t, err, &cellErr)
		assert.Equal(t, CellPosition{1, 0}, cellErr.Pos)
		assert.Equal(t, byte('?'), cellErr.Symbol)
	})

	t.Run("Out of bounds", func(t *testing.T) {
		for _, pos := range []CellPosition{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
			_, err := g.Classify(pos)
			assert.ErrorIs(t, err, ErrOutOfBounds, pos.String())
		}
	})
}

func TestLocate(t *testing.T) {
	t.Run("First marker in row-major order", func(t *testing.T) {
		g, err := NewGrid([]string{"# X", "X O", "O  "})
		require.NoError(t, err)

		start, err := g.Locate(Start)
		require.NoError(t, err)
		assert.Equal(t, CellPosition{0, 2}, start)

		exit, err := g.Locate(Exit)
		require.NoError(t, err)
		assert.Equal(t, CellPosition{1, 2}, exit)

		assert.Equal(t, 2, g.Count(Start))
		assert.Equal(t, 2, g.Count(Exit))
		assert.Equal(t, 1, g.Count(Wall))
	})

	t.Run("Missing marker", func(t *testing.T) {
		g, err := NewGrid([]string{"X  "})
		require.NoError(t, err)

		_, err = g.Locate(Exit)
		assert.ErrorIs(t, err, ErrMarkerNotFound)
	})

	t.Run("Invalid classification is never found", func(t *testing.T) {
		g, err := NewGrid([]string{"X?O"})
		require.NoError(t, err)

		_, err = g.Locate(Invalid)
		assert.ErrorIs(t, err, ErrMarkerNotFound)
	})
}

func TestAdjacent(t *testing.T) {
	g, err := NewGrid([]string{
		"# O",
		"X  ",
		" # ",
	})
	require.NoError(t, err)

	t.Run("Fixed order skipping walls", func(t *testing.T) {
		got, err := g.Adjacent(CellPosition{1, 1})
		require.NoError(t, err)
		// north is open, south is a wall, then west (start) and east.
		assert.Equal(t, []CellPosition{{0, 1}, {1, 0}, {1, 2}}, got)
	})

	t.Run("Edges are silently excluded", func(t *testing.T) {
		got, err := g.Adjacent(CellPosition{1, 0})
		require.NoError(t, err)
		assert.Equal(t, []CellPosition{{2, 0}, {1, 1}}, got)
	})

	t.Run("Invalid neighbor fails", func(t *testing.T) {
		bad, err := NewGrid([]string{"X*O"})
		require.NoError(t, err)

		_, err = bad.Adjacent(CellPosition{0, 0})
		assert.ErrorIs(t, err, ErrInvalidCell)
	})
}

func TestRender(t *testing.T) {
	g, err := NewGrid([]string{"X  ", "## ", "O  "})
	require.NoError(t, err)

	path := Path{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}
	assert.Equal(t, "X++\n##+\nO++", g.Render(path))
	assert.Equal(t, "X  \n## \nO  ", g.String())
}

func TestRead(t *testing.T) {
	t.Run("Keeps leading and trailing open cells", func(t *testing.T) {
		rows, err := Read(strings.NewReader("  X\r\nO  \n\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"  X", "O  "}, rows)
	})

	t.Run("Rows wider than 64 KiB", func(t *testing.T) {
		wide := "X" + strings.Repeat(" ", 70000) + "O"
		rows, err := Read(strings.NewReader(wide + "\n" + wide))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Len(t, rows[1], 70002)

		g, err := NewGrid(rows)
		require.NoError(t, err)
		path, err := g.Solve()
		require.NoError(t, err)
		assert.Equal(t, 70001, path.Steps())
	})

	t.Run("Empty input", func(t *testing.T) {
		rows, err := Read(strings.NewReader(""))
		require.NoError(t, err)
		_, err = NewGrid(rows)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}

func TestIsAdjacent(t *testing.T) {
	pos := CellPosition{Row: 2, Col: 2}
	assert.True(t, pos.IsAdjacent(CellPosition{Row: 1, Col: 2}))
	assert.True(t, pos.IsAdjacent(CellPosition{Row: 2, Col: 3}))
	assert.False(t, pos.IsAdjacent(pos))
	assert.False(t, pos.IsAdjacent(CellPosition{Row: 3, Col: 3}))
	assert.False(t, pos.IsAdjacent(CellPosition{Row: 2, Col: 4}))
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "wall", Wall.String())
	assert.Equal(t, "Unknown classification: 9", Classification(9).String())
}
