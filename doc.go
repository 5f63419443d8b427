// Package mazekit generates and solves perfect rectangular grid mazes —
// from compact bitset wall storage to randomized spanning-tree carving and
// classic path-finding strategies.
//
// 🚀 What is mazekit?
//
//	A pure-Go library that brings together:
//		• Core primitives: cells, walls, bitset cell sets, the two-bitset maze store
//		• Generators: DFS backtracker, Wilson, Prim, Kruskal, Eller,
//		  recursive division, sidewinder
//		• Solvers: heuristic DFS, frontier BFS, A*, wall follower (hand rule),
//		  dead-end filling
//		• An observer contract so renderers can animate every carve and step
//
// ✨ Why choose mazekit?
//
//   - Deterministic – one seeded RNG per maze; (seed, algorithm, dimensions)
//     fully determine the output
//   - Compact – two bit-per-cell arrays store every wall, canonicalized so
//     each physical wall has exactly one bit
//   - Extensible – plug in a Pen observer to draw, pace, or trace algorithms
//     without touching their logic
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	grid/      — Side, Cell, Wall, CellSet, Maze, the Pen observer contract
//	unionfind/ — index-arena disjoint set (path compression + union by rank)
//	mazegen/   — the seven generation algorithms behind one Generate call
//	mazesolve/ — the five solver algorithms behind one Solve call
//
// Quick ASCII example (a generated 3×3 maze, start <>, end ><):
//
//	   +--+--+--+
//	   |<>      |
//	   +--+  +  +
//	   |     |  |
//	   +  +--+  +
//	   |  |   ><|
//	   +--+--+--+
//
// Dive deeper in each package's doc.go.
package mazekit
