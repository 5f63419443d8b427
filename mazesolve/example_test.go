package mazesolve_test

import (
	"fmt"

	"github.com/mazekit/mazekit/grid"
	"github.com/mazekit/mazekit/mazegen"
	"github.com/mazekit/mazekit/mazesolve"
)

// A 1×2 maze has exactly one passage and one possible path.
func ExampleSolve() {
	m, err := grid.NewMaze(1, 2, 42)
	if err != nil {
		panic(err)
	}
	if err := mazegen.Generate(m); err != nil {
		panic(err)
	}

	res, err := mazesolve.Solve(m, mazesolve.WithAlgorithm(mazesolve.AStar))
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Path)
	// Output: [(0,0) (0,1)]
}

func ExampleSolve_bfs() {
	m, err := grid.NewMaze(1, 3, 7)
	if err != nil {
		panic(err)
	}
	if err := mazegen.Generate(m, mazegen.WithAlgorithm(mazegen.Kruskal)); err != nil {
		panic(err)
	}

	res, err := mazesolve.Solve(m, mazesolve.WithAlgorithm(mazesolve.Bfs))
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Depth[m.End()])
	// Output: 2
}
