package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mazekit/mazekit/grid"
)

func TestSide_Opposite(t *testing.T) {
	assert.Equal(t, grid.South, grid.North.Opposite())
	assert.Equal(t, grid.North, grid.South.Opposite())
	assert.Equal(t, grid.West, grid.East.Opposite())
	assert.Equal(t, grid.East, grid.West.Opposite())
}

func TestSide_Delta(t *testing.T) {
	cases := []struct {
		side       grid.Side
		dRow, dCol int
	}{
		{grid.North, -1, 0},
		{grid.East, 0, +1},
		{grid.South, +1, 0},
		{grid.West, 0, -1},
	}
	for _, tc := range cases {
		dr, dc := tc.side.Delta()
		assert.Equal(t, tc.dRow, dr, "%s row delta", tc.side)
		assert.Equal(t, tc.dCol, dc, "%s col delta", tc.side)
	}
}

func TestCell_NextRoundTrip(t *testing.T) {
	c := grid.Cell{Row: 3, Col: 5}
	for _, s := range grid.Sides {
		assert.Equal(t, c, c.Next(s).Next(s.Opposite()),
			"stepping %s then back must return to the origin", s)
	}
}

func TestWall_NextCell(t *testing.T) {
	w := grid.Cell{Row: 2, Col: 2}.Wall(grid.East)
	assert.Equal(t, grid.Cell{Row: 2, Col: 3}, w.NextCell())
	assert.Equal(t, "(2,2)/East", w.String())
}
