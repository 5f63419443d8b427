package mazesolve

import (
	"context"

	"github.com/mazekit/mazekit/grid"
)

// Solve runs one solver algorithm against m, walking only open passages
// from m.Start() to m.End(). The maze is read-only during solving; a
// generation run must have completed before Solve is called.
//
// Returns the Result and ErrNilMaze, ErrUnknownAlgorithm,
// ErrUnknownHeuristic, a context error on cancellation, or
// ErrUnreachableEnd on an internal invariant violation.
func Solve(m *grid.Maze, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.Algorithm.Valid() {
		return nil, ErrUnknownAlgorithm
	}
	if !o.Heuristic.Valid() {
		return nil, ErrUnknownHeuristic
	}

	sv := &solver{maze: m, pen: o.Pen, ctx: o.Ctx, res: &Result{}}

	var err error
	switch o.Algorithm {
	case DfsBacktracker:
		err = sv.dfs(o.Heuristic, nil)
	case Bfs:
		err = sv.bfs()
	case AStar:
		err = sv.astar()
	case WallFollower:
		err = sv.wallFollower(o.Hand)
	case DeadEndFilling:
		err = sv.deadEndFilling()
	default:
		err = ErrUnknownAlgorithm
	}
	if err != nil {
		return nil, err
	}

	return sv.res, nil
}

// solver holds the shared state of one solve run.
type solver struct {
	maze *grid.Maze
	pen  grid.Pen
	ctx  context.Context
	res  *Result
}

// tick records one algorithmic step and honors cancellation.
func (sv *solver) tick() error {
	select {
	case <-sv.ctx.Done():
		return sv.ctx.Err()
	default:
	}
	sv.pen.Tick()

	return nil
}

// manhattan returns the Manhattan distance between two cells, the
// admissible heuristic shared by the DFS solver and A*.
func manhattan(a, b grid.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
