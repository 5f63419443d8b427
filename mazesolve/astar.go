package mazesolve

import (
	"container/heap"

	"github.com/mazekit/mazekit/grid"
)

// pqItem pairs a cell with its f-score at push time.
type pqItem struct {
	cell grid.Cell
	f    int
}

// openSet is a min-heap of pqItems keyed by f-score.
type openSet []pqItem

func (q openSet) Len() int            { return len(q) }
func (q openSet) Less(i, j int) bool  { return q[i].f < q[j].f }
func (q openSet) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *openSet) Push(x interface{}) { *q = append(*q, x.(pqItem)) }
func (q *openSet) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// astar runs A* with the Manhattan heuristic, admissible because every open
// passage has unit cost. Walled edges are excluded from relaxation
// outright. Membership in the open set is tracked with a bitset and checked
// before every push, so no cell is queued twice while pending.
func (sv *solver) astar() error {
	m := sv.maze
	end := m.End()

	h := func(c grid.Cell) int { return manhattan(c, end) }

	// cameFrom[n] is the wall crossed into n on the cheapest known path.
	cameFrom := make(map[grid.Cell]grid.Wall, m.NumCells())
	// gScore[n] is the cost of the cheapest known path from start to n.
	gScore := map[grid.Cell]int{m.Start(): 0}

	open := &openSet{{cell: m.Start(), f: h(m.Start())}}
	heap.Init(open)
	inOpen := m.NewCellSet()
	inOpen.Add(m.Start())

	for open.Len() > 0 {
		cur := heap.Pop(open).(pqItem).cell
		inOpen.Remove(cur)
		sv.res.Order = append(sv.res.Order, cur)

		if cur == end {
			return sv.reconstruct(cameFrom)
		}

		for _, wall := range m.WallsAround(cur, grid.Filter{OnlyPassages: true}) {
			neighbor := wall.NextCell()
			tentative := gScore[cur] + 1
			if old, seen := gScore[neighbor]; seen && tentative >= old {
				continue
			}
			// cheapest path to neighbor so far: record it
			cameFrom[neighbor] = wall
			gScore[neighbor] = tentative
			if !inOpen.Contains(neighbor) {
				heap.Push(open, pqItem{cell: neighbor, f: tentative + h(neighbor)})
				inOpen.Add(neighbor)
				grid.PaintWallPath(sv.pen, grid.StateActive, wall)
				if err := sv.tick(); err != nil {
					return err
				}
			}
		}
	}

	return ErrUnreachableEnd
}

// reconstruct walks the parent map backward from the end cell, painting and
// recording the path start→end.
func (sv *solver) reconstruct(cameFrom map[grid.Cell]grid.Wall) error {
	var rev []grid.Cell
	cur := sv.maze.End()
	for {
		rev = append(rev, cur)
		w, ok := cameFrom[cur]
		if !ok {
			break
		}
		grid.PaintWallPath(sv.pen, grid.StateBestPath, w)
		cur = w.Cell
		if err := sv.tick(); err != nil {
			return err
		}
	}
	sv.pen.UpdateCells(grid.StateBestPath, cur)

	path := make([]grid.Cell, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	sv.res.Path = path

	return sv.tick()
}
