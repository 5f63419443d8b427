package mazegen

import "github.com/mazekit/mazekit/grid"

// prim carves with randomized Prim's algorithm: frontier growth.
//
// The visited region starts at one random cell; the frontier holds walls
// between visited and unvisited cells. Repeatedly pop a random frontier
// wall: if exactly one of its two cells is visited, carve it, mark the new
// cell visited, and push that cell's walls onto the frontier; otherwise the
// wall has become interior and is discarded without side effects.
func (cv *carver) prim() error {
	m := cv.maze
	visited := m.NewCellSet()

	seed := m.RandCell()
	frontier := m.WallsAround(seed, grid.Filter{Blacklist: visited})
	cv.pen.UpdateCells(grid.StateNormal, seed)
	cv.pen.UpdateWalls(grid.StateActive, frontier...)

	visited.Add(seed)

	for len(frontier) > 0 {
		// pop a uniformly random wall, order irrelevant
		i := m.Rand().Intn(len(frontier))
		wall := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if visited.Contains(wall.Cell) != visited.Contains(wall.NextCell()) {
			cv.carve(wall)

			// frontier walls are created from the visited side, so the new
			// cell is always the far one
			newCell := wall.NextCell()
			visited.Add(newCell)

			newWalls := m.WallsAround(newCell, grid.Filter{Blacklist: visited})
			frontier = append(frontier, newWalls...)

			cv.pen.UpdateCells(grid.StateNormal, newCell)
			cv.pen.UpdateWalls(grid.StateActive, newWalls...)
		} else {
			cv.pen.UpdateWalls(grid.StateNormal, wall)
		}

		if err := cv.tick(); err != nil {
			return err
		}
	}

	return nil
}
