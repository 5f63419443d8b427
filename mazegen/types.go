// Package mazegen defines the generation Algorithm enum, configuration
// options, and sentinel errors for maze generation.
package mazegen

import (
	"context"
	"errors"
	"fmt"

	"github.com/mazekit/mazekit/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrNilMaze indicates Generate was called with a nil maze.
	ErrNilMaze = errors.New("mazegen: maze is nil")
	// ErrUnknownAlgorithm indicates an Algorithm value outside the known set.
	ErrUnknownAlgorithm = errors.New("mazegen: unknown algorithm")
	// ErrNoReachableNeighbor indicates a cell with no in-grid neighbor was
	// reached mid-walk. This is an internal invariant violation — a bug in
	// the algorithm or the wall store — and is not recoverable.
	ErrNoReachableNeighbor = errors.New("mazegen: no reachable neighbor")
)

// Algorithm selects one of the seven generation strategies.
// The set is closed; Generate dispatches over it with a switch.
type Algorithm int

const (
	// Dfs is the iterative recursive backtracker.
	Dfs Algorithm = iota
	// Wilson runs loop-erased random walks, yielding uniformly random
	// spanning trees.
	Wilson
	// Prim grows a visited region by carving random frontier walls.
	Prim
	// Kruskal carves shuffled edges joining distinct union-find components.
	Kruskal
	// Eller builds the maze row by row with per-row components.
	Eller
	// RecursiveDivision erects walls, splitting chambers recursively.
	// It is the only algorithm starting from a clear (wall-less) maze.
	RecursiveDivision
	// Sidewinder carves eastward runs closed by random north passages.
	Sidewinder

	numAlgorithms
)

// algoNames maps an Algorithm to its display name.
var algoNames = [numAlgorithms]string{
	"Dfs", "Wilson", "Prim", "Kruskal", "Eller", "RecursiveDivision", "Sidewinder",
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

// StartWalled reports the declared start state of the algorithm: true means
// the maze is reset with every wall present and the algorithm breaks walls;
// false (RecursiveDivision only) means the maze is reset clear and the
// algorithm erects walls.
func (a Algorithm) StartWalled() bool {
	return a != RecursiveDivision
}

// Options holds configurable parameters for Generate.
// Use DefaultOptions and the With* Option functions.
type Options struct {
	// Algorithm is the generation strategy to run. Default Dfs.
	Algorithm Algorithm

	// Pen observes wall carves, cell state changes, and algorithm ticks.
	// Default grid.NopPen; a no-op pen never changes algorithm output.
	Pen grid.Pen

	// Ctx allows cooperative cancellation; checked at tick points.
	// Defaults to context.Background().
	Ctx context.Context
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns Options with the Dfs algorithm, a no-op pen, and a
// background context.
func DefaultOptions() Options {
	return Options{
		Algorithm: Dfs,
		Pen:       grid.NopPen{},
		Ctx:       context.Background(),
	}
}

// WithAlgorithm returns an Option selecting the generation algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
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
