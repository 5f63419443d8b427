package mazesolve

import "github.com/mazekit/mazekit/grid"

// deadEndFilling eliminates dead ends until only the path remains.
//
// A dead end is an unfilled cell with exactly one open, unfilled neighbor,
// the start and end cells excepted. Each full-grid scan collects the
// current dead ends; each is then filled inward along its corridor until a
// junction or an end cell stops it. Scans repeat until one finds nothing —
// a cell can become a dead end only after a neighboring corridor fills, so
// partial rescans would miss it. On a tree maze the unfilled remainder is
// exactly the unique start–end path, traced with the no-heuristic DFS
// restricted to unfilled cells.
func (sv *solver) deadEndFilling() error {
	m := sv.maze
	filled := m.NewCellSet()

	isDeadEnd := func(c grid.Cell, passages []grid.Wall) bool {
		return c != m.Start() && c != m.End() && len(passages) == 1
	}
	passagesAround := func(c grid.Cell) []grid.Wall {
		return m.WallsAround(c, grid.Filter{OnlyPassages: true, Blacklist: filled})
	}

	for {
		// full-grid scan for current dead ends
		var deadEnds []grid.Cell
		for row := 0; row < m.Rows(); row++ {
			for col := 0; col < m.Cols(); col++ {
				cell := grid.Cell{Row: row, Col: col}
				if filled.Contains(cell) {
					continue
				}
				if isDeadEnd(cell, passagesAround(cell)) {
					deadEnds = append(deadEnds, cell)
				}
			}
		}
		if len(deadEnds) == 0 {
			break
		}

		// fill each corridor inward until a junction or an end cell
		for _, cell := range deadEnds {
			for !filled.Contains(cell) {
				passages := passagesAround(cell)
				if !isDeadEnd(cell, passages) {
					break
				}
				wall := passages[0]
				sv.pen.UpdateCells(grid.StateIgnored, cell)
				sv.pen.UpdateWalls(grid.StateIgnored, wall)
				filled.Add(cell)
				if err := sv.tick(); err != nil {
					return err
				}
				cell = wall.NextCell()
			}
		}
	}

	sv.res.Filled = filled.Clone()

	// what is left unfilled is the path; trace it
	return sv.dfs(HeuristicNone, filled)
}
