package mazegen

import (
	"context"

	"github.com/mazekit/mazekit/grid"
)

// Generate runs one generation algorithm against m.
//
// The maze is first Reset to the algorithm's declared start state (walled
// for every algorithm except RecursiveDivision) and the pen is told to
// repaint; the selected algorithm then mutates the wall bitsets through the
// maze's wall-setting primitive until the maze is fully connected.
//
// Returns ErrNilMaze, ErrUnknownAlgorithm, a context error on cancellation,
// or ErrNoReachableNeighbor on an internal invariant violation.
func Generate(m *grid.Maze, opts ...Option) error {
	if m == nil {
		return ErrNilMaze
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.Algorithm.Valid() {
		return ErrUnknownAlgorithm
	}

	m.Reset(o.Algorithm.StartWalled())
	o.Pen.Reset(m)

	cv := &carver{maze: m, pen: o.Pen, ctx: o.Ctx}

	switch o.Algorithm {
	case Dfs:
		return cv.dfs()
	case Wilson:
		return cv.wilson()
	case Prim:
		return cv.prim()
	case Kruskal:
		return cv.kruskal()
	case Eller:
		return cv.eller()
	case RecursiveDivision:
		return cv.division()
	case Sidewinder:
		return cv.sidewinder()
	default:
		return ErrUnknownAlgorithm
	}
}

// carver holds the shared state of one generation run.
type carver struct {
	maze *grid.Maze
	pen  grid.Pen
	ctx  context.Context
}

// tick records one algorithmic step and honors cancellation.
func (cv *carver) tick() error {
	select {
	case <-cv.ctx.Done():
		return cv.ctx.Err()
	default:
	}
	cv.pen.Tick()

	return nil
}

// carve opens the wall and notifies the pen.
func (cv *carver) carve(w grid.Wall) {
	cv.maze.SetWalls(false, w)
	cv.pen.UpdateWalls(grid.StateNormal, w)
}

// cellIndex maps a cell to its row-major index, the keying used by the
// union-find based generators.
func cellIndex(m *grid.Maze, c grid.Cell) int {
	return c.Row*m.Cols() + c.Col
}
