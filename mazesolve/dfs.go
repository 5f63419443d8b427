package mazesolve

import (
	"math"

	"github.com/mazekit/mazekit/grid"
)

// pickPath applies the junction heuristic: it removes and returns the
// passage to try next from walls, together with the remaining choices.
// len(walls) > 0 is the caller's responsibility.
func (sv *solver) pickPath(h Heuristic, walls []grid.Wall) (grid.Wall, []grid.Wall) {
	var i int
	switch h {
	case HeuristicManhattan:
		// lowest remaining distance to the goal wins; ties to the first seen
		best := math.MaxInt
		for j, w := range walls {
			if d := manhattan(w.NextCell(), sv.maze.End()); d < best {
				best = d
				i = j
			}
		}
	case HeuristicShuffle:
		i = sv.maze.Rand().Intn(len(walls))
	default: // HeuristicNone: arbitrary, take the last
		i = len(walls) - 1
	}

	picked := walls[i]

	return picked, append(walls[:i], walls[i+1:]...)
}

// dfsFrame is one suspended junction: the wall crossed into it and the
// passages not yet tried from it.
type dfsFrame struct {
	wall   grid.Wall
	others []grid.Wall
}

// dfs runs the backtracking search restricted to open passages. At each
// junction the heuristic selects which passage to try first; exhausted
// branches are popped off the stack, discarding alternatives whose far
// cell was visited in the meantime.
//
// visited seeds the search's visited set; DeadEndFilling passes its filled
// set here to restrict the trace to unfilled cells. Pass nil for a fresh
// set.
//
// On success the frame stack is exactly the path, which is recorded in
// Result.Path.
func (sv *solver) dfs(h Heuristic, visited *grid.CellSet) error {
	m := sv.maze
	if visited == nil {
		visited = m.NewCellSet()
	}
	var stack []dfsFrame
	cell := m.Start()

	sv.pen.UpdateCells(grid.StateBestPath, cell)

	for cell != m.End() {
		visited.Add(cell)
		sv.res.Order = append(sv.res.Order, cell)

		walls := m.WallsAround(cell, grid.Filter{OnlyPassages: true, Blacklist: visited})

		if len(walls) == 0 {
			// backtrack: pop frames until one still has a live alternative
			for len(stack) > 0 && len(walls) == 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				grid.PaintWallPath(sv.pen, grid.StateIgnored, top.wall)
				if err := sv.tick(); err != nil {
					return err
				}

				walls = walls[:0]
				for _, w := range top.others {
					if !visited.Contains(w.NextCell()) {
						walls = append(walls, w)
					}
				}
				if len(walls) == 0 {
					sv.pen.UpdateWalls(grid.StateIgnored, top.others...)
				}
			}
			if len(walls) == 0 {
				return ErrUnreachableEnd
			}
		}

		nextWall, others := sv.pickPath(h, walls)
		stack = append(stack, dfsFrame{wall: nextWall, others: others})
		cell = nextWall.NextCell()

		grid.PaintWallPath(sv.pen, grid.StateBestPath, nextWall)
		grid.PaintWallPath(sv.pen, grid.StateActive, others...)
		if err := sv.tick(); err != nil {
			return err
		}
	}

	// the surviving stack is the path: start plus each crossed wall's far cell
	path := make([]grid.Cell, 0, len(stack)+1)
	path = append(path, m.Start())
	for _, f := range stack {
		path = append(path, f.wall.NextCell())
	}
	sv.res.Path = path

	return nil
}
