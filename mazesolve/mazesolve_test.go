package mazesolve_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazekit/mazekit/grid"
	"github.com/mazekit/mazekit/mazegen"
	"github.com/mazekit/mazekit/mazesolve"
)

// pathSolvers enumerates every solver configuration that must produce
// Result.Path. On a perfect maze the simple start–end path is unique, so all
// of them must agree.
var pathSolvers = []struct {
	name string
	opts []mazesolve.Option
}{
	{"DfsManhattan", []mazesolve.Option{
		mazesolve.WithAlgorithm(mazesolve.DfsBacktracker),
		mazesolve.WithHeuristic(mazesolve.HeuristicManhattan),
	}},
	{"DfsNone", []mazesolve.Option{
		mazesolve.WithAlgorithm(mazesolve.DfsBacktracker),
		mazesolve.WithHeuristic(mazesolve.HeuristicNone),
	}},
	{"DfsShuffle", []mazesolve.Option{
		mazesolve.WithAlgorithm(mazesolve.DfsBacktracker),
		mazesolve.WithHeuristic(mazesolve.HeuristicShuffle),
	}},
	{"AStar", []mazesolve.Option{
		mazesolve.WithAlgorithm(mazesolve.AStar),
	}},
	{"WallFollowerRight", []mazesolve.Option{
		mazesolve.WithAlgorithm(mazesolve.WallFollower),
		mazesolve.WithHandedness(mazesolve.RightHand),
	}},
	{"WallFollowerLeft", []mazesolve.Option{
		mazesolve.WithAlgorithm(mazesolve.WallFollower),
		mazesolve.WithHandedness(mazesolve.LeftHand),
	}},
	{"DeadEndFilling", []mazesolve.Option{
		mazesolve.WithAlgorithm(mazesolve.DeadEndFilling),
	}},
}

// generateMaze returns a fresh perfect maze carved by the given generator.
func generateMaze(t *testing.T, rows, cols int, seed int64, algo mazegen.Algorithm) *grid.Maze {
	t.Helper()
	m, err := grid.NewMaze(rows, cols, seed)
	require.NoError(t, err)
	require.NoError(t, mazegen.Generate(m, mazegen.WithAlgorithm(algo)))

	return m
}

// assertValidPath checks that path is a simple open-passage walk from the
// maze's start cell to its end cell.
func assertValidPath(t *testing.T, m *grid.Maze, path []grid.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, m.Start(), path[0])
	assert.Equal(t, m.End(), path[len(path)-1])

	seen := make(map[grid.Cell]bool, len(path))
	for i, c := range path {
		require.False(t, seen[c], "path revisits %s", c)
		seen[c] = true
		if i == 0 {
			continue
		}
		prev := path[i-1]
		joined := false
		for _, s := range grid.Sides {
			if prev.Next(s) == c && !m.HasWall(prev.Wall(s)) {
				joined = true

				break
			}
		}
		require.True(t, joined, "no open passage between %s and %s", prev, c)
	}
}

func TestSolve_PathSolversAgree(t *testing.T) {
	cases := []struct {
		rows, cols int
		seed       int64
		gen        mazegen.Algorithm
	}{
		{1, 1, 1, mazegen.Dfs},
		{1, 6, 2, mazegen.Wilson},
		{6, 1, 3, mazegen.Kruskal},
		{3, 3, 4, mazegen.Prim},
		{8, 8, 5, mazegen.Dfs},
		{12, 7, 6, mazegen.Eller},
		{9, 9, 7, mazegen.RecursiveDivision},
		{7, 11, 8, mazegen.Sidewinder},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_%dx%d", tc.gen, tc.rows, tc.cols), func(t *testing.T) {
			reference := generateMaze(t, tc.rows, tc.cols, tc.seed, tc.gen)
			ref, err := mazesolve.Solve(reference, mazesolve.WithAlgorithm(mazesolve.AStar))
			require.NoError(t, err)
			assertValidPath(t, reference, ref.Path)

			for _, solver := range pathSolvers {
				t.Run(solver.name, func(t *testing.T) {
					// fresh identical maze so RNG-drawing solvers see the same state
					m := generateMaze(t, tc.rows, tc.cols, tc.seed, tc.gen)
					res, err := mazesolve.Solve(m, solver.opts...)
					require.NoError(t, err)
					assertValidPath(t, m, res.Path)
					assert.Equal(t, ref.Path, res.Path,
						"the simple path on a perfect maze is unique")
				})
			}
		})
	}
}

func TestSolve_Bfs(t *testing.T) {
	m := generateMaze(t, 9, 9, 21, mazegen.Dfs)
	res, err := mazesolve.Solve(m, mazesolve.WithAlgorithm(mazesolve.Bfs))
	require.NoError(t, err)

	assert.Nil(t, res.Path, "bfs marks no path")
	require.NotEmpty(t, res.Order)
	assert.Equal(t, m.Start(), res.Order[0])
	assert.Equal(t, m.End(), res.Order[len(res.Order)-1], "the search stops when the end is dequeued")

	require.NotNil(t, res.Depth)
	assert.Equal(t, 0, res.Depth[m.Start()])

	prev := 0
	for _, c := range res.Order {
		d, known := res.Depth[c]
		require.True(t, known, "visited cell %s has no depth", c)
		require.GreaterOrEqual(t, d, prev, "visit order must be monotone in depth")
		require.LessOrEqual(t, d, prev+1)
		prev = d
	}
}

func TestSolve_BfsDepthMatchesPathLength(t *testing.T) {
	m := generateMaze(t, 10, 10, 33, mazegen.Wilson)

	bfs, err := mazesolve.Solve(m, mazesolve.WithAlgorithm(mazesolve.Bfs))
	require.NoError(t, err)
	astar, err := mazesolve.Solve(m, mazesolve.WithAlgorithm(mazesolve.AStar))
	require.NoError(t, err)

	assert.Equal(t, bfs.Depth[m.End()], len(astar.Path)-1,
		"graph distance and shortest path length must agree")
}

func TestSolve_DeadEndFilling_FilledComplement(t *testing.T) {
	m := generateMaze(t, 8, 8, 44, mazegen.Prim)
	res, err := mazesolve.Solve(m, mazesolve.WithAlgorithm(mazesolve.DeadEndFilling))
	require.NoError(t, err)
	require.NotNil(t, res.Filled)

	onPath := make(map[grid.Cell]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			c := grid.Cell{Row: row, Col: col}
			assert.NotEqual(t, onPath[c], res.Filled.Contains(c),
				"cell %s must be either filled or on the path", c)
		}
	}
}

func TestSolve_SingleCell(t *testing.T) {
	for _, solver := range pathSolvers {
		t.Run(solver.name, func(t *testing.T) {
			m, err := grid.NewMaze(1, 1, 1)
			require.NoError(t, err)
			res, err := mazesolve.Solve(m, solver.opts...)
			require.NoError(t, err)
			assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}}, res.Path)
		})
	}

	t.Run("Bfs", func(t *testing.T) {
		m, err := grid.NewMaze(1, 1, 1)
		require.NoError(t, err)
		res, err := mazesolve.Solve(m, mazesolve.WithAlgorithm(mazesolve.Bfs))
		require.NoError(t, err)
		assert.Nil(t, res.Path)
		assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}}, res.Order)
		assert.Equal(t, 0, res.Depth[grid.Cell{Row: 0, Col: 0}])
	})
}

func TestSolve_MovedStartAndEnd(t *testing.T) {
	m := generateMaze(t, 9, 9, 55, mazegen.Kruskal)
	require.NoError(t, m.SetStart(grid.Cell{Row: 4, Col: 4}))
	require.NoError(t, m.SetEnd(grid.Cell{Row: 0, Col: 8}))

	res, err := mazesolve.Solve(m, mazesolve.WithAlgorithm(mazesolve.AStar))
	require.NoError(t, err)
	assertValidPath(t, m, res.Path)
}

func TestSolve_Errors(t *testing.T) {
	t.Run("NilMaze", func(t *testing.T) {
		res, err := mazesolve.Solve(nil)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, mazesolve.ErrNilMaze)
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		m, err := grid.NewMaze(2, 2, 1)
		require.NoError(t, err)
		_, err = mazesolve.Solve(m, mazesolve.WithAlgorithm(mazesolve.Algorithm(99)))
		assert.ErrorIs(t, err, mazesolve.ErrUnknownAlgorithm)
	})

	t.Run("UnknownHeuristic", func(t *testing.T) {
		m, err := grid.NewMaze(2, 2, 1)
		require.NoError(t, err)
		_, err = mazesolve.Solve(m, mazesolve.WithHeuristic(mazesolve.Heuristic(99)))
		assert.ErrorIs(t, err, mazesolve.ErrUnknownHeuristic)
	})
}

func TestSolve_UnreachableEnd(t *testing.T) {
	algos := []mazesolve.Algorithm{
		mazesolve.DfsBacktracker,
		mazesolve.Bfs,
		mazesolve.AStar,
		mazesolve.WallFollower,
		mazesolve.DeadEndFilling,
	}
	for _, algo := range algos {
		t.Run(algo.String(), func(t *testing.T) {
			// fully walled: no passage leaves the start cell
			m, err := grid.NewMaze(2, 2, 1)
			require.NoError(t, err)
			_, err = mazesolve.Solve(m, mazesolve.WithAlgorithm(algo))
			assert.ErrorIs(t, err, mazesolve.ErrUnreachableEnd)
		})
	}
}

func TestSolve_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	algos := []mazesolve.Algorithm{
		mazesolve.DfsBacktracker,
		mazesolve.Bfs,
		mazesolve.AStar,
		mazesolve.WallFollower,
		mazesolve.DeadEndFilling,
	}
	for _, algo := range algos {
		t.Run(algo.String(), func(t *testing.T) {
			m := generateMaze(t, 8, 8, 66, mazegen.Dfs)
			_, err := mazesolve.Solve(m,
				mazesolve.WithAlgorithm(algo),
				mazesolve.WithContext(ctx))
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestSolve_ShuffleDeterministicUnderSeed(t *testing.T) {
	run := func() *mazesolve.Result {
		m := generateMaze(t, 10, 10, 99, mazegen.Dfs)
		res, err := mazesolve.Solve(m,
			mazesolve.WithAlgorithm(mazesolve.DfsBacktracker),
			mazesolve.WithHeuristic(mazesolve.HeuristicShuffle))
		require.NoError(t, err)

		return res
	}

	a, b := run(), run()
	assert.Equal(t, a.Order, b.Order, "equal seeds must replay the identical search")
	assert.Equal(t, a.Path, b.Path)
}

func TestSolve_WallFollowerOrderCoversPath(t *testing.T) {
	m := generateMaze(t, 7, 7, 13, mazegen.Wilson)
	res, err := mazesolve.Solve(m, mazesolve.WithAlgorithm(mazesolve.WallFollower))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(res.Order), len(res.Path),
		"the raw walk includes every path cell plus its excursions")
	assert.Equal(t, m.Start(), res.Order[0])
	assert.Equal(t, m.End(), res.Order[len(res.Order)-1])
}

func TestAlgorithm_StringValid(t *testing.T) {
	assert.Equal(t, "DfsBacktracker", mazesolve.DfsBacktracker.String())
	assert.Equal(t, "DeadEndFilling", mazesolve.DeadEndFilling.String())
	assert.Equal(t, "Algorithm(7)", mazesolve.Algorithm(7).String())
	assert.False(t, mazesolve.Algorithm(-1).Valid())

	assert.Equal(t, "Manhattan", mazesolve.HeuristicManhattan.String())
	assert.Equal(t, "Shuffle", mazesolve.HeuristicShuffle.String())
	assert.False(t, mazesolve.Heuristic(3).Valid())

	assert.Equal(t, "RightHand", mazesolve.RightHand.String())
	assert.Equal(t, "LeftHand", mazesolve.LeftHand.String())
}
