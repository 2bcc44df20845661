package core

import "image/color"

// Size describes the dimensions of a grid in cells or a window in pixels.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is not positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Pos is a logical cell coordinate. Sparse automata may use any integer
// coordinates, including negative ones.
type Pos struct {
	X int
	Y int
}

// ExecutionState reports whether an automaton can keep stepping.
type ExecutionState int

const (
	// Running means further generations can be computed.
	Running ExecutionState = iota
	// Finished means the automaton will not change anymore.
	Finished
)

func (s ExecutionState) String() string {
	if s == Finished {
		return "finished"
	}
	return "running"
}

// Cell is the only capability the renderer needs from a cell value.
type Cell interface {
	RenderCell() color.RGBA
}

// Automaton is the stepping half of every automaton contract.
type Automaton interface {
	Step() ExecutionState
	IsFinished() bool
}

// DenseAutomaton holds exactly one cell at every coordinate inside Size.
type DenseAutomaton[C Cell] interface {
	Automaton
	Size() Size
	// At returns the cell at column x, row y.
	At(x, y int) C
}

// SparseAutomaton only stores populated coordinates on an unbounded plane.
type SparseAutomaton[C Cell] interface {
	Automaton
	Cells() map[Pos]C
}

// Toggler is implemented by automata that accept interactive cell edits.
type Toggler interface {
	Toggle(p Pos)
}
