package frontend

import (
	"gridview/internal/core"
	"gridview/internal/input"
	"gridview/internal/render"
)

// Dense displays an automaton that has a cell at every grid coordinate.
type Dense[C core.Cell] struct {
	controls
	automaton core.DenseAutomaton[C]
}

// NewDense validates cfg and computes the layout for the automaton's size.
func NewDense[C core.Cell](automaton core.DenseAutomaton[C], cfg Config) (*Dense[C], error) {
	c, err := newControls(cfg, automaton.Size())
	if err != nil {
		return nil, err
	}
	return &Dense[C]{controls: c, automaton: automaton}, nil
}

// Tick advances one generation if the update period elapsed.
func (f *Dense[C]) Tick() (core.ExecutionState, bool) { return f.tick(f.automaton) }

// Step advances one generation immediately.
func (f *Dense[C]) Step() core.ExecutionState { return f.step(f.automaton) }

// Render draws the whole grid onto dst.
func (f *Dense[C]) Render(dst render.Canvas) {
	render.DrawDense[C](dst, f.layout, f.automaton, f.cfg.Background)
}

// ShouldClose reports whether a close was requested or the automaton finished.
func (f *Dense[C]) ShouldClose() bool {
	return f.closing || f.automaton.IsFinished()
}

// DispatchInput applies this frame's input from p.
func (f *Dense[C]) DispatchInput(p input.Poller) { f.dispatcher.Dispatch(p, f) }

// ToggleAt toggles the cell under pixel (px, py) if the automaton accepts
// edits.
func (f *Dense[C]) ToggleAt(px, py float32) bool { return f.toggleAt(f.automaton, px, py) }

// Status summarizes the frontend state.
func (f *Dense[C]) Status() Status { return f.status(f.automaton.IsFinished()) }

// Automaton returns the driven automaton.
func (f *Dense[C]) Automaton() core.DenseAutomaton[C] { return f.automaton }
