// Package mazegen carves rectangular mazes with one of seven randomized
// generation algorithms, all behind a single Generate call.
//
// What:
//
//   - Dfs               — iterative recursive backtracker (stack of frames).
//   - Wilson            — loop-erased random walks; uniformly random
//     spanning trees, unlike the biased alternatives.
//   - Prim              — randomized frontier growth over walls.
//   - Kruskal           — shuffled canonical edges + union-find.
//   - Eller             — row-by-row union-find with random south drops.
//   - RecursiveDivision — space partitioning; the only algorithm that
//     starts from a CLEAR maze and erects walls.
//   - Sidewinder        — run-based carving, top row cleared into a corridor.
//
// Every algorithm leaves the maze fully connected, and all of them produce
// spanning trees: exactly rows*cols-1 open passages, no cycles.
//
// Why:
//
//   - One entry point and a closed Algorithm enum keep the observer
//     call sites uniform and make algorithm choice a plain parameter.
//   - All randomness is drawn from the maze's own seeded RNG, so a run is
//     reproduced exactly by (seed, algorithm, dimensions).
//
// Complexity: O(cells) for Dfs, Prim, Eller, Sidewinder and
// RecursiveDivision; O(cells·α) for Kruskal; Wilson is O(cells) expected
// but unbounded in the worst case (random walks).
//
// Options:
//
//   - WithAlgorithm(a) — select the generator (default Dfs).
//   - WithPen(p)       — observer notified of every carve and step
//     (default grid.NopPen).
//   - WithContext(ctx) — cooperative cancellation, checked at tick points.
//
// Errors:
//
//   - ErrNilMaze              — Generate was passed a nil maze.
//   - ErrUnknownAlgorithm     — the Algorithm value is out of range.
//   - ErrNoReachableNeighbor  — internal invariant violation; indicates a
//     bug in wall storage or the algorithm, never a user condition.
//   - context errors pass through unchanged when the context is canceled.
package mazegen
