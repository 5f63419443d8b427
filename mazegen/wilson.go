package mazegen

import (
	"fmt"

	"github.com/mazekit/mazekit/grid"
)

// wilson carves with Wilson's algorithm: loop-erased random walks.
//
// A single random cell seeds the maze. For each cell not yet in the maze
// (found by a hinted linear scan that never restarts from zero), walk
// randomly, recording the walls crossed; whenever the walk re-enters a cell
// of the current path, the loop is erased by truncating the path back to
// that cell. When the walk reaches the maze, every wall of the final path
// is carved. The result is a uniformly random spanning tree.
//
// The walk never immediately reverses its previous step, except when that
// reverse move is the only in-grid move (single-row or single-column
// mazes), where it is re-allowed to keep the walk well-defined.
func (cv *carver) wilson() error {
	m := cv.maze

	inMaze := m.NewCellSet()
	inPath := m.NewCellSet()

	seed := m.RandCell()
	inMaze.Add(seed)
	cv.pen.UpdateCells(grid.StateNormal, seed)

	// hint persists across scans so finding the next unvisited cell stays
	// amortized O(1)
	hint := 0

	for {
		cur, h, ok := inMaze.NextUnset(hint)
		if !ok {
			return nil
		}
		hint = h

		inPath.Add(cur)
		cv.pen.UpdateCells(grid.StateActive, cur)
		pathStart := cur
		var path []grid.Wall
		var forbidden []grid.Side

		for !inMaze.Contains(cur) {
			if err := cv.tick(); err != nil {
				return err
			}

			neighbors := m.WallsAround(cur, grid.Filter{ExceptSides: forbidden})
			if len(neighbors) == 0 && len(forbidden) != 0 {
				// reversing is the only possible move
				neighbors = m.WallsAround(cur, grid.Filter{})
			}
			if len(neighbors) == 0 {
				return fmt.Errorf("%w: from %s", ErrNoReachableNeighbor, cur)
			}

			nextWall := neighbors[m.Rand().Intn(len(neighbors))]
			nextCell := nextWall.NextCell()

			if inPath.Contains(nextCell) {
				// loop in the path: truncate back to the first occurrence of
				// nextCell, eg [a,b,c,d,b] becomes [a,b]
				loopStart := -1
				if nextCell != pathStart {
					for i := range path {
						if path[i].Cell == nextCell {
							loopStart = i

							break
						}
					}
				}

				for _, w := range path[loopStart+1:] {
					inPath.Remove(w.NextCell())
					grid.PaintWallPath(cv.pen, grid.StateUndiscovered, w)
				}

				if loopStart < 0 {
					cur = pathStart
				} else {
					cur = path[loopStart].NextCell()
				}
				path = path[:loopStart+1]
				forbidden = nil
			} else {
				inPath.Add(nextCell)
				path = append(path, nextWall)
				forbidden = []grid.Side{nextWall.Side.Opposite()}
				grid.PaintWallPath(cv.pen, grid.StateActive, nextWall)
				cur = nextCell
			}
		}

		// commit: break every wall along the surviving path
		for _, w := range path {
			cv.carve(w)
			grid.PaintWallPath(cv.pen, grid.StateNormal, w)
		}
		cv.pen.UpdateCells(grid.StateNormal, pathStart)

		_ = inMaze.UnionWith(inPath) // same grid, cannot fail
		inPath.Fill(false)
	}
}
