// Package grid provides the core maze model: cell geometry, compact bitset
// cell sets, the two-bitset wall store, and the observer (Pen) contract that
// rendering layers implement.
//
// What:
//
//   - Side, Cell, Wall value types with row/col deltas and opposite sides.
//   - CellSet, a bit-per-cell set addressed row-major (row*ncols+col), with
//     membership, bulk union/intersect, inversion, and a hinted
//     find-next-unset scan.
//   - Maze, which stores every wall in exactly two CellSets (North bits and
//     West bits); East/South queries are canonicalized onto the neighbor's
//     West/North bit, so each physical wall has a single storage location.
//     Boundary walls are always present and cannot be cleared.
//   - Pen, the notification contract consumed by generators and solvers;
//     NopPen is the behavior-neutral default.
//
// Why:
//
//   - Two bitsets make wall storage O(cells/8) bytes with O(1) queries.
//   - A seeded RNG owned by the Maze makes every generation and solve run
//     reproducible from (seed, algorithm, dimensions) alone.
//   - The Pen indirection keeps drawing, pacing, and UI concerns out of the
//     algorithms entirely.
//
// Complexity:
//
//   - HasWall / SetWalls:     O(1) per wall.
//   - CellSet ops:            O(1) single-bit, O(cells/64) bulk.
//   - CellSet.NextUnset:      amortized O(1) across a monotone scan.
//   - Maze.String:            O(cells).
//
// Errors:
//
//   - ErrBadDimensions:   nrows or ncols is not positive.
//   - ErrCellOutOfBounds: a cell lies outside the grid.
//   - ErrSizeMismatch:    bulk CellSet operation over differing grids.
//
// See mazegen and mazesolve for the algorithms operating on this model.
package grid
