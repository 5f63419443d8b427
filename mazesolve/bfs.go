package mazesolve

import "github.com/mazekit/mazekit/grid"

// bfs expands the frontier one graph layer at a time with two buffers.
//
// Cells are dequeued from the current buffer and their unvisited open
// neighbors enqueued into the next buffer; when the current buffer empties
// the buffers swap, and one tick marks the completed layer. The search
// terminates the instant the end cell is dequeued. Each cell is enqueued
// at most once.
//
// By contract bfs reconstructs no path — Result.Path stays nil; the layer
// structure is exposed through Result.Order and Result.Depth.
func (sv *solver) bfs() error {
	m := sv.maze

	enqueued := m.NewCellSet()
	sv.res.Depth = make(map[grid.Cell]int, m.NumCells())

	cur := []grid.Cell{m.Start()}
	var next []grid.Cell
	enqueued.Add(m.Start())
	sv.res.Depth[m.Start()] = 0
	sv.pen.UpdateCells(grid.StateBestPath, m.Start())

	depth := 0
	for len(cur) > 0 {
		for _, cell := range cur {
			sv.res.Order = append(sv.res.Order, cell)
			if cell == m.End() {
				sv.pen.UpdateCells(grid.StateBestPath, cell)

				return sv.tick()
			}
			sv.pen.UpdateCells(grid.StateIgnored, cell)

			newWalls := m.WallsAround(cell, grid.Filter{OnlyPassages: true, Blacklist: enqueued})
			for _, w := range newWalls {
				nc := w.NextCell()
				enqueued.Add(nc)
				sv.res.Depth[nc] = depth + 1
				next = append(next, nc)
			}
			sv.pen.UpdateWalls(grid.StateActive, newWalls...)
		}

		// swap buffers: one tick per completed graph layer
		cur, next = next, cur[:0]
		depth++
		if err := sv.tick(); err != nil {
			return err
		}
	}

	return ErrUnreachableEnd
}
