package grid

import (
	"math/bits"
	"strings"
)

const wordBits = 64

// CellSet is a fixed-size set of cells over an nrows×ncols grid, one bit per
// cell, addressed row-major (row*ncols+col). The zero value is unusable; use
// NewCellSet.
//
// Invariant: capacity is always exactly nrows*ncols; bits beyond it in the
// last word stay zero so bulk operations and scans never see phantom cells.
type CellSet struct {
	words []uint64
	nrows int
	ncols int
}

// NewCellSet returns an empty set covering an nrows×ncols grid.
// Returns ErrBadDimensions if either dimension is not positive.
// Complexity: O(cells/64) time and memory.
func NewCellSet(nrows, ncols int) (*CellSet, error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, ErrBadDimensions
	}
	n := nrows * ncols

	return &CellSet{
		words: make([]uint64, (n+wordBits-1)/wordBits),
		nrows: nrows,
		ncols: ncols,
	}, nil
}

// Len returns the capacity of the set: nrows*ncols.
func (s *CellSet) Len() int { return s.nrows * s.ncols }

// Rows returns the number of grid rows covered.
func (s *CellSet) Rows() int { return s.nrows }

// Cols returns the number of grid columns covered.
func (s *CellSet) Cols() int { return s.ncols }

// index maps a cell to its bit position, or -1 if out of the grid.
func (s *CellSet) index(c Cell) int {
	if c.Row < 0 || c.Row >= s.nrows || c.Col < 0 || c.Col >= s.ncols {
		return -1
	}

	return c.Row*s.ncols + c.Col
}

// cellAt maps a bit position back to its cell.
func (s *CellSet) cellAt(idx int) Cell {
	return Cell{Row: idx / s.ncols, Col: idx % s.ncols}
}

// Contains reports whether c is in the set. Out-of-grid cells are never
// members. Complexity: O(1).
func (s *CellSet) Contains(c Cell) bool {
	i := s.index(c)
	if i < 0 {
		return false
	}

	return s.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

// Add inserts c into the set. Out-of-grid cells are ignored.
// Complexity: O(1).
func (s *CellSet) Add(c Cell) {
	if i := s.index(c); i >= 0 {
		s.words[i/wordBits] |= 1 << (i % wordBits)
	}
}

// Remove deletes c from the set. Out-of-grid cells are ignored.
// Complexity: O(1).
func (s *CellSet) Remove(c Cell) {
	if i := s.index(c); i >= 0 {
		s.words[i/wordBits] &^= 1 << (i % wordBits)
	}
}

// Set adds c when present is true and removes it otherwise.
func (s *CellSet) Set(c Cell, present bool) {
	if present {
		s.Add(c)
	} else {
		s.Remove(c)
	}
}

// Fill sets every cell to present (true) or absent (false).
// Complexity: O(cells/64).
func (s *CellSet) Fill(present bool) {
	var w uint64
	if present {
		w = ^uint64(0)
	}
	for i := range s.words {
		s.words[i] = w
	}
	if present {
		s.clearTail()
	}
}

// clearTail zeroes the unused bits of the last word.
func (s *CellSet) clearTail() {
	n := s.Len()
	if rem := n % wordBits; rem != 0 {
		s.words[len(s.words)-1] &= (1 << rem) - 1
	}
}

// UnionWith adds every member of other to s, in place.
// Returns ErrSizeMismatch if the sets cover different grids.
// Complexity: O(cells/64).
func (s *CellSet) UnionWith(other *CellSet) error {
	if s.nrows != other.nrows || s.ncols != other.ncols {
		return ErrSizeMismatch
	}
	for i := range s.words {
		s.words[i] |= other.words[i]
	}

	return nil
}

// IntersectWith removes every member of s absent from other, in place.
// Returns ErrSizeMismatch if the sets cover different grids.
// Complexity: O(cells/64).
func (s *CellSet) IntersectWith(other *CellSet) error {
	if s.nrows != other.nrows || s.ncols != other.ncols {
		return ErrSizeMismatch
	}
	for i := range s.words {
		s.words[i] &= other.words[i]
	}

	return nil
}

// Invert flips the membership of every cell, in place.
// Complexity: O(cells/64).
func (s *CellSet) Invert() {
	for i := range s.words {
		s.words[i] = ^s.words[i]
	}
	s.clearTail()
}

// Inverted returns a flipped copy, leaving s untouched.
// Complexity: O(cells/64).
func (s *CellSet) Inverted() *CellSet {
	cp := s.Clone()
	cp.Invert()

	return cp
}

// Clone returns an independent copy of s.
func (s *CellSet) Clone() *CellSet {
	cp := &CellSet{
		words: make([]uint64, len(s.words)),
		nrows: s.nrows,
		ncols: s.ncols,
	}
	copy(cp.words, s.words)

	return cp
}

// Equal reports whether s and other cover the same grid with the same
// members. Complexity: O(cells/64).
func (s *CellSet) Equal(other *CellSet) bool {
	if s.nrows != other.nrows || s.ncols != other.ncols {
		return false
	}
	for i := range s.words {
		if s.words[i] != other.words[i] {
			return false
		}
	}

	return true
}

// Count returns the number of cells in the set.
// Complexity: O(cells/64).
func (s *CellSet) Count() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// NextUnset returns the first absent cell at or after the linear scan
// position hint, together with the position to pass as the next hint.
// ok is false when every cell from hint onward is present.
//
// Passing back the returned hint amortizes a full-grid sweep to O(cells)
// total across all calls, instead of restarting at zero each time.
func (s *CellSet) NextUnset(hint int) (c Cell, next int, ok bool) {
	n := s.Len()
	if hint < 0 {
		hint = 0
	}
	for i := hint; i < n; {
		w := ^s.words[i/wordBits]
		// mask off bits below i within the word
		w &= ^uint64(0) << (i % wordBits)
		if w == 0 {
			i = (i/wordBits + 1) * wordBits

			continue
		}
		i = (i / wordBits * wordBits) + bits.TrailingZeros64(w)
		if i >= n {
			break
		}

		return s.cellAt(i), i, true
	}

	return Cell{}, n, false
}

// String renders the set as rows of 0/1 digits, one line per grid row.
func (s *CellSet) String() string {
	var b strings.Builder
	for r := 0; r < s.nrows; r++ {
		for c := 0; c < s.ncols; c++ {
			if s.Contains(Cell{Row: r, Col: c}) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		if r != s.nrows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
