// Package grid defines core types and sentinel errors for the maze model.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a maze was requested with nrows <= 0 or ncols <= 0.
	ErrBadDimensions = errors.New("grid: dimensions must be positive")
	// ErrCellOutOfBounds indicates a cell outside the grid was passed to an
	// operation that requires an in-grid cell.
	ErrCellOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrSizeMismatch indicates a bulk CellSet operation between sets of
	// different dimensions.
	ErrSizeMismatch = errors.New("grid: cell sets cover different grids")
)

// Side identifies one of the four sides of a cell.
type Side int

const (
	// North is the side towards row-1.
	North Side = iota
	// East is the side towards col+1.
	East
	// South is the side towards row+1.
	South
	// West is the side towards col-1.
	West

	// NumSides is the number of distinct sides.
	NumSides = 4
)

// sideDeltas maps a Side to its (dRow, dCol) displacement.
var sideDeltas = [NumSides][2]int{
	North: {-1, 0},
	East:  {0, +1},
	South: {+1, 0},
	West:  {0, -1},
}

// sideNames maps a Side to its display name.
var sideNames = [NumSides]string{"North", "East", "South", "West"}

// Sides lists all four sides in North, East, South, West order.
// The slice is shared; callers must not mutate it.
var Sides = []Side{North, East, South, West}

// Delta returns the (dRow, dCol) displacement of s.
func (s Side) Delta() (dRow, dCol int) {
	return sideDeltas[s][0], sideDeltas[s][1]
}

// Opposite returns the opposing side: North↔South, East↔West.
func (s Side) Opposite() Side {
	return (s + 2) % NumSides
}

// String returns the side's display name.
func (s Side) String() string {
	if s < 0 || s >= NumSides {
		return fmt.Sprintf("Side(%d)", int(s))
	}

	return sideNames[s]
}

// Cell is a position in a maze. Mazes are row-major: Row selects the row,
// Col the column. The zero value is the top-left cell.
type Cell struct {
	Row, Col int
}

// Next returns the neighboring cell on side s. The result may lie outside
// the grid; callers check with Maze.Contains.
func (c Cell) Next(s Side) Cell {
	dr, dc := s.Delta()

	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Wall returns the wall on side s of c.
func (c Cell) Wall(s Side) Wall {
	return Wall{Cell: c, Side: s}
}

// String formats the cell as (row,col).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Wall identifies the boundary segment on Side of Cell.
//
// Two Wall values denote the same physical wall when one is (c, s) and the
// other is (c.Next(s), s.Opposite()). Maze canonicalizes both onto a single
// North/West bit.
type Wall struct {
	Cell Cell
	Side Side
}

// NextCell returns the cell on the other side of the wall.
func (w Wall) NextCell() Cell {
	return w.Cell.Next(w.Side)
}

// String formats the wall as (row,col)/Side.
func (w Wall) String() string {
	return fmt.Sprintf("%s/%s", w.Cell, w.Side)
}
