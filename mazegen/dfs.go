package mazegen

import "github.com/mazekit/mazekit/grid"

// frame is one suspended junction of the DFS backtracker: the cell and the
// walls not yet tried from it.
type frame struct {
	cell  grid.Cell
	walls []grid.Wall
}

// dfs carves with the iterative recursive backtracker.
//
// From the current cell, pick a random wall towards an unvisited neighbor,
// carve it, remember the remaining alternatives on the stack, and descend.
// On exhaustion, pop frames — dropping alternatives whose neighbor was
// visited in the meantime — until a usable alternative or an empty stack.
// The walk spans the whole grid, so start and end cells are connected
// regardless of the random entry cell.
func (cv *carver) dfs() error {
	m := cv.maze
	visited := m.NewCellSet()
	var stack []frame
	cell := m.RandCell()

	for {
		visited.Add(cell)
		cv.pen.UpdateCells(grid.StateNormal, cell)
		if err := cv.tick(); err != nil {
			return err
		}

		walls := m.WallsAround(cell, grid.Filter{Blacklist: visited})

		if len(walls) == 0 {
			// backtrack: pop frames until one still has a live alternative
			for len(stack) > 0 && len(walls) == 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cell = top.cell

				walls = walls[:0]
				for _, w := range top.walls {
					if visited.Contains(w.NextCell()) {
						if err := cv.tick(); err != nil {
							return err
						}
					} else {
						walls = append(walls, w)
					}
				}
				cv.pen.UpdateCells(grid.StateNormal, cell)
			}
			if len(walls) == 0 {
				return nil
			}
		}

		i := m.Rand().Intn(len(walls))
		next := walls[i]
		cv.carve(next)

		walls = append(walls[:i], walls[i+1:]...)
		if len(walls) != 0 {
			cv.pen.UpdateCells(grid.StateActive, cell)
			stack = append(stack, frame{cell: cell, walls: walls})
		}

		cell = next.NextCell()
	}
}
