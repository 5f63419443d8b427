package mazegen

import (
	"github.com/mazekit/mazekit/grid"
	"github.com/mazekit/mazekit/unionfind"
)

// ellerComps tracks connectivity for Eller's algorithm: a disjoint set over
// all cells plus, per live component, the member cells of the current row
// only (the candidates for south drops).
type ellerComps struct {
	sets *unionfind.DSU
	// rowCells maps a component root to its cells in the current row.
	rowCells map[int][]grid.Cell
}

// add records c as a current-row member of its component.
func (ec *ellerComps) add(m *grid.Maze, c grid.Cell) {
	root := ec.sets.Find(cellIndex(m, c))
	ec.rowCells[root] = append(ec.rowCells[root], c)
}

// merge joins the components of a and b, concatenating their current-row
// member lists under the surviving root.
func (ec *ellerComps) merge(m *grid.Maze, a, b grid.Cell) {
	ra, rb := ec.sets.Find(cellIndex(m, a)), ec.sets.Find(cellIndex(m, b))
	if ra == rb {
		return
	}
	ec.sets.Union(ra, rb)
	root, other := ec.sets.Find(ra), ra
	if root == ra {
		other = rb
	}
	ec.rowCells[root] = append(ec.rowCells[root], ec.rowCells[other]...)
	delete(ec.rowCells, other)
}

// eller carves with Eller's algorithm, one row at a time.
//
// Within a row, adjacent cells not already connected merge on a coin flip —
// forced on the final row, which guarantees global connectivity. Before
// advancing, every live component drops at least one random current-row
// member south to seed the next row; columns receiving no drop start the
// next row as fresh singleton components.
func (cv *carver) eller() error {
	m := cv.maze
	rng := m.Rand()

	ec := &ellerComps{
		sets:     unionfind.New(m.NumCells()),
		rowCells: make(map[int][]grid.Cell, m.Cols()),
	}

	for row := 0; row < m.Rows(); row++ {
		lastRow := row == m.Rows()-1

		// horizontal merges
		for col := 0; col < m.Cols(); col++ {
			cell := grid.Cell{Row: row, Col: col}
			ec.add(m, cell)
			cv.pen.UpdateCells(grid.StateNormal, cell)

			if col < m.Cols()-1 {
				east := cell.Next(grid.East)
				joined := ec.sets.Connected(cellIndex(m, cell), cellIndex(m, east))
				if !joined && (lastRow || rng.Intn(2) == 1) {
					cv.carve(cell.Wall(grid.East))
					ec.merge(m, cell, east)
				}
			}
			if err := cv.tick(); err != nil {
				return err
			}
		}

		if lastRow {
			break
		}

		// south drops: each live component seeds the next row at least once
		for col := 0; col < m.Cols(); col++ {
			root := ec.sets.Find(cellIndex(m, grid.Cell{Row: row, Col: col}))
			members, live := ec.rowCells[root]
			if !live {
				continue // component already processed via an earlier column
			}
			delete(ec.rowCells, root)

			drops := 1 + rng.Intn(len(members))
			for _, i := range rng.Perm(len(members))[:drops] {
				cell := members[i]
				cv.carve(cell.Wall(grid.South))
				// the south neighbor joins this component; it was untouched
				// until now, so the carve can never close a cycle
				ec.sets.Union(cellIndex(m, cell), cellIndex(m, cell.Next(grid.South)))
				if err := cv.tick(); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
