package mazesolve

import "github.com/mazekit/mazekit/grid"

// wallFollower walks the hand rule: a single facing value, and at each cell
// the sides are tried in a fixed rotational order anchored to the facing —
// right, straight, left, back for the right hand; mirrored for the left.
// The first open side is taken and the facing updated to match.
//
// The rule is correct only on simply-connected (tree) mazes; that
// precondition is the caller's, not checked here. The raw walk, revisits
// included, lands in Result.Order; Result.Path is the walk with its
// excursions erased (loop erasure), which on a tree is the unique simple
// path.
func (sv *solver) wallFollower(hand Handedness) error {
	m := sv.maze

	// The preference order depends on the last turn taken. If you face side
	// s, orientation[s] is the index of your preferred side in sides; the
	// following entries, wrapping around, are the fallbacks in order.
	var sides [grid.NumSides]grid.Side
	var orientation [grid.NumSides]int
	if hand == RightHand {
		sides = [grid.NumSides]grid.Side{grid.East, grid.North, grid.West, grid.South} // counter-clockwise
		orientation[grid.North], orientation[grid.East] = 0, 3
		orientation[grid.South], orientation[grid.West] = 2, 1
	} else {
		sides = [grid.NumSides]grid.Side{grid.West, grid.North, grid.East, grid.South} // clockwise
		orientation[grid.North], orientation[grid.East] = 0, 1
		orientation[grid.South], orientation[grid.West] = 2, 3
	}

	cell := m.Start()
	sv.pen.UpdateCells(grid.StateActive, cell)
	sv.res.Order = append(sv.res.Order, cell)

	// walk with loop erasure; walkIndex[c] is c's position in walk
	walk := []grid.Cell{cell}
	walkIndex := map[grid.Cell]int{cell: 0}

	facing := 0
	for cell != m.End() {
		found := false
		var nextWall grid.Wall
		for i := 0; i < grid.NumSides; i++ {
			side := sides[(facing+i)%grid.NumSides]
			if w := cell.Wall(side); !m.HasWall(w) {
				facing = orientation[side]
				nextWall = w
				found = true

				break
			}
		}
		if !found {
			// every side walled: the start cell is sealed off
			return ErrUnreachableEnd
		}

		cell = nextWall.NextCell()
		sv.res.Order = append(sv.res.Order, cell)

		if at, seen := walkIndex[cell]; seen {
			// stepping back onto the walk: the excursion is abandoned
			for _, c := range walk[at+1:] {
				delete(walkIndex, c)
			}
			walk = walk[:at+1]
			grid.PaintWallPath(sv.pen, grid.StateIgnored, nextWall)
		} else {
			walkIndex[cell] = len(walk)
			walk = append(walk, cell)
			grid.PaintWallPath(sv.pen, grid.StateBestPath, nextWall)
		}
		if err := sv.tick(); err != nil {
			return err
		}
	}

	sv.res.Path = walk

	return nil
}
