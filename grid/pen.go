package grid

// CellState is the logical display state of a cell or wall, as reported to
// the Pen observer. States carry no meaning for the algorithms themselves;
// they exist so a rendering layer can animate progress.
type CellState int

const (
	// StateNormal marks a cell or passage that is part of the maze.
	StateNormal CellState = iota
	// StateActive marks the frontier or currently explored element.
	StateActive
	// StateBestPath marks an element on the path being traced.
	StateBestPath
	// StateIgnored marks an abandoned or filled element.
	StateIgnored
	// StateUndiscovered marks an element not yet reached.
	StateUndiscovered
)

// stateNames maps a CellState to its display name.
var stateNames = [...]string{"Normal", "Active", "BestPath", "Ignored", "Undiscovered"}

// String returns the state's display name.
func (s CellState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "CellState(?)"
	}

	return stateNames[s]
}

// Pen is the notification contract between the algorithms and an external
// rendering layer. Generators and solvers call it at well-defined points —
// every wall carve, every path paint, every algorithmic step — and must not
// depend on any side effect of the calls: substituting NopPen never changes
// algorithm behavior or output. Implementations are expected to return
// promptly; pacing and throttling belong to the renderer.
type Pen interface {
	// UpdateWalls reports one or more walls changing display state.
	UpdateWalls(state CellState, walls ...Wall)
	// UpdateCells reports one or more cells changing display state.
	UpdateCells(state CellState, cells ...Cell)
	// Tick marks one discrete algorithmic step.
	Tick()
	// Reset reports that the maze was replaced or resized and should be
	// repainted from scratch.
	Reset(m *Maze)
}

// PaintWallPath reports a set of walls together with the cells on their far
// side, the common stroke when extending or retracting a path.
func PaintWallPath(p Pen, state CellState, walls ...Wall) {
	for _, w := range walls {
		p.UpdateCells(state, w.NextCell())
	}
	p.UpdateWalls(state, walls...)
}

// NopPen is the default Pen: it ignores every notification.
type NopPen struct{}

// UpdateWalls implements Pen.
func (NopPen) UpdateWalls(CellState, ...Wall) {}

// UpdateCells implements Pen.
func (NopPen) UpdateCells(CellState, ...Cell) {}

// Tick implements Pen.
func (NopPen) Tick() {}

// Reset implements Pen.
func (NopPen) Reset(*Maze) {}
