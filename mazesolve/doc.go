// Package mazesolve traces a path between a maze's start and end cells with
// one of five search strategies, all behind a single Solve call.
//
// What:
//
//   - DfsBacktracker — backtracking search over open passages with a
//     pluggable junction heuristic (Manhattan, none, or shuffle).
//   - Bfs            — two-buffer frontier search; demonstrates reachability
//     layer by layer but, by contract, marks no path.
//   - AStar          — A* with the admissible Manhattan heuristic and
//     parent-map path reconstruction.
//   - WallFollower   — deterministic hand-rule state machine (right or left
//     hand); correct only on simply-connected (tree) mazes.
//   - DeadEndFilling — iteratively fills dead-end corridors until only the
//     unique path remains, then traces it.
//
// Why:
//
//   - A closed Algorithm enum dispatched by switch keeps observer call
//     sites uniform and algorithm choice a plain parameter.
//   - Solvers treat the maze as read-only and draw any randomness (the
//     shuffle heuristic) from the maze's own seeded RNG, preserving
//     determinism under seed.
//
// Complexity: O(cells) for every solver on tree mazes; A* is
// O(cells·log cells) from the priority queue.
//
// Results:
//
//	Solve returns a Result holding the traced Path (start→end, nil for
//	Bfs), the visit Order, BFS layer Depths, and the Filled set for
//	dead-end filling.
//
// Options:
//
//   - WithAlgorithm(a)  — select the solver (default DfsBacktracker).
//   - WithHeuristic(h)  — junction heuristic for the DFS solver
//     (default HeuristicManhattan).
//   - WithHandedness(h) — hand rule for the wall follower (default RightHand).
//   - WithPen(p)        — observer notified of every paint and step.
//   - WithContext(ctx)  — cooperative cancellation at tick points.
//
// Errors:
//
//   - ErrNilMaze, ErrUnknownAlgorithm, ErrUnknownHeuristic — bad inputs.
//   - ErrUnreachableEnd — the end cell cannot be reached; for a maze left
//     connected by any generator this signals an internal invariant
//     violation, not a user condition.
package mazesolve
