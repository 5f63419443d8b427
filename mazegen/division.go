package mazegen

import "github.com/mazekit/mazekit/grid"

// chamber is a rectangular region of the maze, both corners inclusive.
type chamber struct {
	topLeft  grid.Cell
	botRight grid.Cell
}

func (ch chamber) width() int  { return ch.botRight.Col - ch.topLeft.Col + 1 }
func (ch chamber) height() int { return ch.botRight.Row - ch.topLeft.Row + 1 }

// isUnit reports whether the chamber is too thin to subdivide.
func (ch chamber) isUnit() bool {
	return ch.height() < 2 || ch.width() < 2
}

// borderWalls returns the wall segments bordering the chamber on side s.
func (ch chamber) borderWalls(s grid.Side) []grid.Wall {
	if s == grid.East || s == grid.West {
		col := ch.topLeft.Col
		if s == grid.East {
			col = ch.botRight.Col
		}
		walls := make([]grid.Wall, 0, ch.height())
		for row := ch.topLeft.Row; row <= ch.botRight.Row; row++ {
			walls = append(walls, grid.Cell{Row: row, Col: col}.Wall(s))
		}

		return walls
	}

	row := ch.topLeft.Row
	if s == grid.South {
		row = ch.botRight.Row
	}
	walls := make([]grid.Wall, 0, ch.width())
	for col := ch.topLeft.Col; col <= ch.botRight.Col; col++ {
		walls = append(walls, grid.Cell{Row: row, Col: col}.Wall(s))
	}

	return walls
}

// division generates by recursive space partitioning. The maze starts CLEAR
// (one chamber spanning the grid, no walls); each chamber with both
// dimensions >= 2 is split at its midpoints into four sub-chambers by four
// border-wall segments, of which exactly three are re-opened at one
// independently random position each. Chambers with any dimension < 2 are
// left alone.
func (cv *carver) division() error {
	m := cv.maze

	stack := []chamber{{
		topLeft:  grid.Cell{Row: 0, Col: 0},
		botRight: grid.Cell{Row: m.Rows() - 1, Col: m.Cols() - 1},
	}}

	for len(stack) > 0 {
		ch := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if ch.isUnit() {
			continue
		}

		hDiv := (ch.topLeft.Row + ch.botRight.Row) / 2
		vDiv := (ch.topLeft.Col + ch.botRight.Col) / 2

		subs, err := cv.divide(ch, hDiv, vDiv)
		if err != nil {
			return err
		}
		stack = append(stack, subs...)
	}

	return nil
}

// divide erects the two dividing walls of a chamber (as four segments
// shared by the four sub-chambers), re-opens three of the four segments at
// one random position each, and returns the sub-chambers.
func (cv *carver) divide(ch chamber, hDiv, vDiv int) ([]chamber, error) {
	m := cv.maze

	topLeft := chamber{ch.topLeft, grid.Cell{Row: hDiv, Col: vDiv}}
	topRight := chamber{grid.Cell{Row: ch.topLeft.Row, Col: vDiv + 1}, grid.Cell{Row: hDiv, Col: ch.botRight.Col}}
	botRight := chamber{grid.Cell{Row: hDiv + 1, Col: vDiv + 1}, ch.botRight}
	botLeft := chamber{grid.Cell{Row: hDiv + 1, Col: ch.topLeft.Col}, grid.Cell{Row: ch.botRight.Row, Col: vDiv}}

	segments := [][]grid.Wall{
		topRight.borderWalls(grid.West),
		botRight.borderWalls(grid.West),
		botLeft.borderWalls(grid.North),
		botRight.borderWalls(grid.North),
	}

	rng := m.Rand()
	// cut one passage out of 3 of the 4 segments; exactly one stays closed
	for _, si := range rng.Perm(len(segments))[:3] {
		seg := segments[si]
		j := rng.Intn(len(seg))
		segments[si] = append(seg[:j], seg[j+1:]...)
	}

	for _, seg := range segments {
		m.SetWalls(true, seg...)
		cv.pen.UpdateWalls(grid.StateNormal, seg...)
		if err := cv.tick(); err != nil {
			return nil, err
		}
	}

	return []chamber{topLeft, topRight, botRight, botLeft}, nil
}
