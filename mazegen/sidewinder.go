package mazegen

import "github.com/mazekit/mazekit/grid"

// sidewinder carves with the sidewinder algorithm.
//
// The top row becomes a single corridor (its west walls are cleared — the
// trivial border run). Every subsequent row is swept left to right holding
// an active run of cells: at each cell either the run extends east (carve
// the east wall) or it closes — always forced at the last column — by
// carving the north wall of one random run member. Every row therefore ends
// with at least one north carve, keeping it connected to the rows above.
func (cv *carver) sidewinder() error {
	m := cv.maze
	rng := m.Rand()

	topRow := make([]grid.Cell, m.Cols())
	topWalls := make([]grid.Wall, m.Cols())
	for col := 0; col < m.Cols(); col++ {
		topRow[col] = grid.Cell{Row: 0, Col: col}
		topWalls[col] = topRow[col].Wall(grid.West)
	}
	m.SetWalls(false, topWalls...)
	cv.pen.UpdateCells(grid.StateNormal, topRow...)
	cv.pen.UpdateWalls(grid.StateNormal, topWalls...)

	var run []grid.Wall

	for row := 1; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			cell := grid.Cell{Row: row, Col: col}
			closeRun := rng.Intn(2) == 1

			if col == m.Cols()-1 || closeRun {
				cv.pen.UpdateCells(grid.StateNormal, cell)

				run = append(run, cell.Wall(grid.West))
				pick := run[rng.Intn(len(run))]
				cv.carve(pick.Cell.Wall(grid.North))
				run = run[:0]
			} else {
				eastWall := cell.Wall(grid.East)
				cv.carve(eastWall)
				cv.pen.UpdateCells(grid.StateNormal, cell, eastWall.NextCell())
				run = append(run, eastWall)
			}

			if err := cv.tick(); err != nil {
				return err
			}
		}
	}

	return nil
}
