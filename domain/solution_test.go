package domain

import (
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolution(t *testing.T) {
	grid, err := maze.NewGrid([]string{"X O"})
	require.NoError(t, err)

	t.Run("Reachable", func(t *testing.T) {
		path, err := grid.Solve()
		require.NoError(t, err)

		s := NewSolution(grid, path)
		assert.NotEqual(t, uuid.Nil, s.ID)
		assert.True(t, s.Reachable)
		assert.Equal(t, 2, s.Steps)
		assert.Equal(t, "X+O", s.Rendered)
		assert.Equal(t, HashRows([]string{"X O"}), s.GridHash)
	})

	t.Run("Unreachable", func(t *testing.T) {
		s := NewSolution(grid, nil)
		assert.False(t, s.Reachable)
		assert.Zero(t, s.Steps)
		assert.Equal(t, "X O", s.Rendered)
	})
}

func TestHashRows(t *testing.T) {
	assert.Equal(t, HashRows([]string{"X", "O"}), HashRows([]string{"X", "O"}))
	assert.NotEqual(t, HashRows([]string{"X", "O"}), HashRows([]string{"XO"}))
	assert.Len(t, HashRows([]string{"XO"}), 64)
}
