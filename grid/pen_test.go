package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mazekit/mazekit/grid"
)

// recordingPen captures every notification in order.
type recordingPen struct {
	cells  []grid.Cell
	walls  []grid.Wall
	states []grid.CellState
	ticks  int
	resets int
}

func (p *recordingPen) UpdateWalls(state grid.CellState, walls ...grid.Wall) {
	p.walls = append(p.walls, walls...)
	p.states = append(p.states, state)
}

func (p *recordingPen) UpdateCells(state grid.CellState, cells ...grid.Cell) {
	p.cells = append(p.cells, cells...)
	p.states = append(p.states, state)
}

func (p *recordingPen) Tick()            { p.ticks++ }
func (p *recordingPen) Reset(*grid.Maze) { p.resets++ }

func TestPaintWallPath(t *testing.T) {
	pen := &recordingPen{}
	w1 := grid.Cell{Row: 0, Col: 0}.Wall(grid.East)
	w2 := grid.Cell{Row: 0, Col: 1}.Wall(grid.South)

	grid.PaintWallPath(pen, grid.StateBestPath, w1, w2)

	assert.Equal(t, []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}}, pen.cells,
		"the far-side cell of each wall is painted")
	assert.Equal(t, []grid.Wall{w1, w2}, pen.walls)
	for _, s := range pen.states {
		assert.Equal(t, grid.StateBestPath, s)
	}
}

func TestCellState_String(t *testing.T) {
	assert.Equal(t, "Normal", grid.StateNormal.String())
	assert.Equal(t, "Undiscovered", grid.StateUndiscovered.String())
	assert.Equal(t, "CellState(?)", grid.CellState(42).String())
}

func TestNopPen_ImplementsPen(t *testing.T) {
	var p grid.Pen = grid.NopPen{}
	p.UpdateWalls(grid.StateActive, grid.Cell{}.Wall(grid.North))
	p.UpdateCells(grid.StateActive, grid.Cell{})
	p.Tick()
	p.Reset(nil)
}
