// Package mazesolve defines the solver Algorithm enum, the junction
// Heuristic and Handedness strategies, configuration options, and sentinel
// errors.
package mazesolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/mazekit/mazekit/grid"
)

// Sentinel errors for maze solving.
var (
	// ErrNilMaze indicates Solve was called with a nil maze.
	ErrNilMaze = errors.New("mazesolve: maze is nil")
	// ErrUnknownAlgorithm indicates an Algorithm value outside the known set.
	ErrUnknownAlgorithm = errors.New("mazesolve: unknown algorithm")
	// ErrUnknownHeuristic indicates a Heuristic value outside the known set.
	ErrUnknownHeuristic = errors.New("mazesolve: unknown heuristic")
	// ErrUnreachableEnd indicates the end cell cannot be reached from the
	// start cell. A generated maze is always fully connected, so this is an
	// internal invariant violation — a bug, not a recoverable condition.
	ErrUnreachableEnd = errors.New("mazesolve: unreachable end cell")
)

// Algorithm selects one of the five solver strategies.
// The set is closed; Solve dispatches over it with a switch.
type Algorithm int

const (
	// DfsBacktracker searches depth-first over open passages, choosing at
	// each junction with the configured Heuristic.
	DfsBacktracker Algorithm = iota
	// Bfs expands the frontier one graph layer per tick. By contract it
	// marks no path; Result.Order and Result.Depth expose the layering.
	Bfs
	// AStar runs A* with the Manhattan heuristic (admissible: every open
	// edge has unit cost) and reconstructs the path from a parent map.
	AStar
	// WallFollower walks the hand rule. Precondition (unchecked): the maze
	// is simply connected, which every generator in mazegen guarantees.
	WallFollower
	// DeadEndFilling repeatedly fills dead-end corridors; the unfilled
	// remainder is the unique path, traced with the no-heuristic DFS.
	DeadEndFilling

	numAlgorithms
)

// algoNames maps an Algorithm to its display name.
var algoNames = [numAlgorithms]string{
	"DfsBacktracker", "Bfs", "AStar", "WallFollower", "DeadEndFilling",
}

// String returns the algorithm's display name.
func (a Algorithm) String() string {
	if a < 0 || a >= numAlgorithms {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algoNames[a]
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < numAlgorithms
}

// Heuristic selects how the DFS backtracker picks the next passage at a
// junction.
type Heuristic int

const (
	// HeuristicManhattan tries the passage whose far cell has the lowest
	// Manhattan distance to the end cell; ties go to the first seen.
	HeuristicManhattan Heuristic = iota
	// HeuristicNone tries the last enumerated passage (arbitrary order).
	HeuristicNone
	// HeuristicShuffle tries a uniformly random passage, drawn from the
	// maze's seeded RNG.
	HeuristicShuffle

	numHeuristics
)

// heuristicNames maps a Heuristic to its display name.
var heuristicNames = [numHeuristics]string{"Manhattan", "None", "Shuffle"}

// String returns the heuristic's display name.
func (h Heuristic) String() string {
	if h < 0 || h >= numHeuristics {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}

	return heuristicNames[h]
}

// Valid reports whether h names a known heuristic.
func (h Heuristic) Valid() bool {
	return h >= 0 && h < numHeuristics
}

// Handedness selects which hand the wall follower keeps on the wall.
type Handedness int

const (
	// RightHand prefers right, then straight, then left, then back.
	RightHand Handedness = iota
	// LeftHand is the mirror image.
	LeftHand
)

// String returns the handedness display name.
func (h Handedness) String() string {
	if h == LeftHand {
		return "LeftHand"
	}

	return "RightHand"
}

// Result holds the outcome of one solve run.
type Result struct {
	// Path is the traced cell sequence from start to end, both inclusive;
	// consecutive cells are always joined by an open passage. A 1×1 maze
	// yields a single-cell path. Nil for Bfs, which marks no path.
	Path []grid.Cell

	// Order is the sequence of cells the solver visited, in visit order.
	// For Bfs the order is layer by layer; for WallFollower it is every
	// step of the walk including revisits.
	Order []grid.Cell

	// Depth maps cell → graph distance from the start cell. Populated by
	// Bfs only.
	Depth map[grid.Cell]int

	// Filled is the set of cells eliminated by DeadEndFilling; the
	// complement is exactly the surviving path. Nil for other solvers.
	Filled *grid.CellSet
}

// Options holds configurable parameters for Solve.
// Use DefaultOptions and the With* Option functions.
type Options struct {
	// Algorithm is the solver strategy to run. Default DfsBacktracker.
	Algorithm Algorithm

	// Heuristic steers the DFS backtracker's junction choice; ignored by
	// the other solvers. Default HeuristicManhattan.
	Heuristic Heuristic

	// Hand selects the wall follower's hand rule; ignored by the other
	// solvers. Default RightHand.
	Hand Handedness

	// Pen observes path paints, cell state changes, and algorithm ticks.
	// Default grid.NopPen; a no-op pen never changes solver output.
	Pen grid.Pen

	// Ctx allows cooperative cancellation; checked at tick points.
	// Defaults to context.Background().
	Ctx context.Context
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns Options with the DfsBacktracker algorithm, the
// Manhattan heuristic, the right-hand rule, a no-op pen, and a background
// context.
func DefaultOptions() Options {
	return Options{
		Algorithm: DfsBacktracker,
		Heuristic: HeuristicManhattan,
		Hand:      RightHand,
		Pen:       grid.NopPen{},
		Ctx:       context.Background(),
	}
}

// WithAlgorithm returns an Option selecting the solver algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithHeuristic returns an Option selecting the DFS junction heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithHandedness returns an Option selecting the wall follower's hand.
func WithHandedness(h Handedness) Option {
	return func(o *Options) {
		o.Hand = h
	}
}

// WithPen returns an Option installing p as the observer.
// A nil p has no effect (the no-op pen is retained).
func WithPen(p grid.Pen) Option {
	return func(o *Options) {
		if p != nil {
			o.Pen = p
		}
	}
}

// WithContext returns an Option that sets the cancellation context.
// A nil ctx has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
