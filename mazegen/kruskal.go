package mazegen

import (
	"github.com/mazekit/mazekit/grid"
	"github.com/mazekit/mazekit/unionfind"
)

// kruskal carves with randomized Kruskal's algorithm.
//
// Enumerate one wall-edge per cell per canonical side (West, North), so
// each physical wall appears exactly once, shuffle them, and walk the
// shuffled order joining distinct union-find components. Edge weights are
// never inspected; the shuffle is the randomization.
func (cv *carver) kruskal() error {
	m := cv.maze

	edges := make([]grid.Wall, 0, 2*m.NumCells())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			edges = append(edges, cell.Wall(grid.West), cell.Wall(grid.North))
		}
	}
	m.Rand().Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	sets := unionfind.New(m.NumCells())

	for _, wall := range edges {
		if !m.Contains(wall.NextCell()) {
			// border edge, nothing on the other side
			continue
		}
		if sets.Union(cellIndex(m, wall.Cell), cellIndex(m, wall.NextCell())) {
			cv.carve(wall)
			cv.pen.UpdateCells(grid.StateNormal, wall.Cell, wall.NextCell())
			if err := cv.tick(); err != nil {
				return err
			}
		}
	}

	return nil
}
