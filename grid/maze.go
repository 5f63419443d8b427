package grid

import (
	"fmt"
	"math/rand"
	"strings"
)

// Maze is a rectangular maze with fixed dimensions.
//
// Walls are stored in exactly two CellSets: one for North walls, one for
// West walls. An East or South wall is the West or North wall of the
// neighboring cell; HasWall and SetWalls canonicalize accordingly, so each
// physical wall has exactly one bit. Walls on the grid boundary are always
// present and cannot be cleared.
//
// The maze owns a seeded RNG from which every generation and solve run
// draws, making output fully reproducible from (seed, algorithm,
// dimensions). A Maze is not safe for concurrent mutation: exactly one
// generator may carve at a time, and solvers treat the maze as read-only.
type Maze struct {
	nrows int
	ncols int

	start Cell
	end   Cell

	north *CellSet
	west  *CellSet

	rng  *rand.Rand
	seed int64

	// modCount counts wall mutations since construction; observers use it
	// to detect whether any passage exists yet.
	modCount int
}

// NewMaze constructs a fully walled nrows×ncols maze whose RNG is seeded
// with seed. Start and end cells default to the top-left and bottom-right
// corners. Returns ErrBadDimensions unless both dimensions are positive.
// Complexity: O(cells/64) time and memory.
func NewMaze(nrows, ncols int, seed int64) (*Maze, error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, nrows, ncols)
	}

	north, err := NewCellSet(nrows, ncols)
	if err != nil {
		return nil, err
	}
	west, err := NewCellSet(nrows, ncols)
	if err != nil {
		return nil, err
	}
	north.Fill(true)
	west.Fill(true)

	return &Maze{
		nrows: nrows,
		ncols: ncols,
		start: Cell{Row: 0, Col: 0},
		end:   Cell{Row: nrows - 1, Col: ncols - 1},
		north: north,
		west:  west,
		rng:   rand.New(rand.NewSource(seed)),
		seed:  seed,
	}, nil
}

// Rows returns the number of rows (the maze height).
func (m *Maze) Rows() int { return m.nrows }

// Cols returns the number of columns (the maze width).
func (m *Maze) Cols() int { return m.ncols }

// NumCells returns the number of cells in the maze.
func (m *Maze) NumCells() int { return m.nrows * m.ncols }

// Seed returns the seed the maze RNG was created with.
func (m *Maze) Seed() int64 { return m.seed }

// Start returns the designated start cell.
func (m *Maze) Start() Cell { return m.start }

// End returns the designated end cell.
func (m *Maze) End() Cell { return m.end }

// SetStart moves the start cell. Returns ErrCellOutOfBounds for cells
// outside the grid.
func (m *Maze) SetStart(c Cell) error {
	if !m.Contains(c) {
		return fmt.Errorf("%w: %s", ErrCellOutOfBounds, c)
	}
	m.start = c

	return nil
}

// SetEnd moves the end cell. Returns ErrCellOutOfBounds for cells outside
// the grid.
func (m *Maze) SetEnd(c Cell) error {
	if !m.Contains(c) {
		return fmt.Errorf("%w: %s", ErrCellOutOfBounds, c)
	}
	m.end = c

	return nil
}

// Contains reports whether c lies within the grid.
func (m *Maze) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < m.nrows && c.Col >= 0 && c.Col < m.ncols
}

// ModCount returns the number of wall mutations applied since construction.
func (m *Maze) ModCount() int { return m.modCount }

// Rand returns the maze's seeded RNG. Algorithms must draw randomness from
// here and nowhere else.
func (m *Maze) Rand() *rand.Rand { return m.rng }

// RandCell returns a uniformly random in-grid cell from the maze's RNG.
func (m *Maze) RandCell() Cell {
	return Cell{
		Row: m.rng.Intn(m.nrows),
		Col: m.rng.Intn(m.ncols),
	}
}

// NewCellSet returns an empty CellSet covering this maze's grid.
func (m *Maze) NewCellSet() *CellSet {
	s, _ := NewCellSet(m.nrows, m.ncols) // dimensions already validated

	return s
}

// Reset reinitializes both wall bitsets to all-present (walled=true) or
// all-absent (walled=false). Every generation run starts with a Reset.
// Complexity: O(cells/64).
func (m *Maze) Reset(walled bool) {
	m.north.Fill(walled)
	m.west.Fill(walled)
	m.modCount++
}

// canonical maps w onto its storage bit: the owning cell and whether the
// bit lives in the North set (otherwise West). East and South walls
// delegate to the neighbor's West/North bit.
func canonical(w Wall) (owner Cell, isNorth bool) {
	switch w.Side {
	case East:
		return w.NextCell(), false
	case South:
		return w.NextCell(), true
	case North:
		return w.Cell, true
	default: // West
		return w.Cell, false
	}
}

// HasWall reports whether the wall is present. Walls whose neighbor lies
// outside the grid are boundary walls and are always present; a wall whose
// own cell is out of the grid also reports present, so out-of-grid probes
// behave as solid rock. Complexity: O(1).
func (m *Maze) HasWall(w Wall) bool {
	if !m.Contains(w.Cell) {
		return true
	}
	if !m.Contains(w.NextCell()) {
		return true
	}
	owner, isNorth := canonical(w)
	if isNorth {
		return m.north.Contains(owner)
	}

	return m.west.Contains(owner)
}

// SetWalls sets every given wall present or absent. Walls whose neighbor
// lies outside the grid are silently skipped: the border cannot be
// unwalled. Each call increments the modification counter by the number of
// walls passed. Complexity: O(1) per wall.
func (m *Maze) SetWalls(present bool, walls ...Wall) {
	for _, w := range walls {
		if !m.Contains(w.Cell) || !m.Contains(w.NextCell()) {
			continue
		}
		owner, isNorth := canonical(w)
		if isNorth {
			m.north.Set(owner, present)
		} else {
			m.west.Set(owner, present)
		}
	}
	m.modCount += len(walls)
}

// Filter narrows WallsAround. The zero value selects every wall of the cell
// whose neighbor lies in-grid.
type Filter struct {
	// ExceptSides drops walls on the listed sides.
	ExceptSides []Side
	// OnlyPassages keeps only open walls (passages).
	OnlyPassages bool
	// Blacklist drops walls whose neighbor is a member of the set.
	Blacklist *CellSet
}

// WallsAround returns the walls of c whose neighbor lies in the grid,
// narrowed by f. The result is freshly allocated in N, E, S, W order.
// Complexity: O(1) (at most four walls).
func (m *Maze) WallsAround(c Cell, f Filter) []Wall {
	out := make([]Wall, 0, NumSides)
sides:
	for _, s := range Sides {
		for _, ex := range f.ExceptSides {
			if s == ex {
				continue sides
			}
		}
		w := c.Wall(s)
		next := w.NextCell()
		if !m.Contains(next) {
			continue
		}
		if f.OnlyPassages && m.HasWall(w) {
			continue
		}
		if f.Blacklist != nil && f.Blacklist.Contains(next) {
			continue
		}
		out = append(out, w)
	}

	return out
}

// DistinctWalls returns every canonical (North/West) wall currently in the
// given state: present walls for on=true, passages for on=false. Boundary
// bits are included for on=true. Intended for debugging and tests.
// Complexity: O(cells).
func (m *Maze) DistinctWalls(on bool) []Wall {
	var out []Wall
	for r := 0; r < m.nrows; r++ {
		for c := 0; c < m.ncols; c++ {
			cell := Cell{Row: r, Col: c}
			if on == m.north.Contains(cell) {
				out = append(out, cell.Wall(North))
			}
			if on == m.west.Contains(cell) {
				out = append(out, cell.Wall(West))
			}
		}
	}

	return out
}

// CountPassages returns the number of open internal passages.
// A perfect maze has exactly NumCells()-1. Complexity: O(cells).
func (m *Maze) CountPassages() int {
	count := 0
	for r := 0; r < m.nrows; r++ {
		for c := 0; c < m.ncols; c++ {
			cell := Cell{Row: r, Col: c}
			if r > 0 && !m.north.Contains(cell) {
				count++
			}
			if c > 0 && !m.west.Contains(cell) {
				count++
			}
		}
	}

	return count
}

// WallBits returns copies of the North and West wall bitsets. Useful for
// bit-exact comparisons in determinism tests.
func (m *Maze) WallBits() (north, west *CellSet) {
	return m.north.Clone(), m.west.Clone()
}

// String renders the maze in a fixed ASCII format: per maze row, one line
// of `+--`/`+  ` segments for North walls and one line of `|`/` ` segments
// for West walls, with `<>` marking the start cell and `><` the end cell.
// The format is bit-exact and suits golden-file tests.
func (m *Maze) String() string {
	var b strings.Builder
	for r := 0; r < m.nrows; r++ {
		hline := "   "
		vline := "   "
		for c := 0; c < m.ncols; c++ {
			cell := Cell{Row: r, Col: c}
			if m.north.Contains(cell) {
				hline += "+--"
			} else {
				hline += "+  "
			}
			if m.west.Contains(cell) {
				vline += "|"
			} else {
				vline += " "
			}
			switch cell {
			case m.start:
				vline += "<>"
			case m.end:
				vline += "><"
			default:
				vline += "  "
			}
		}
		b.WriteString(hline + "+\n")
		b.WriteString(vline + "|\n")
	}
	b.WriteString("   " + strings.Repeat("+--", m.ncols) + "+")

	return b.String()
}
