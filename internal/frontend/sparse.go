package frontend

import (
	"fmt"

	"gridview/internal/core"
	"gridview/internal/geometry"
	"gridview/internal/input"
	"gridview/internal/render"
)

// Sparse displays an automaton on an unbounded plane through a fixed
// viewport anchored at the origin. The viewport size is independent of the
// automaton's live extent and can change at runtime.
type Sparse[C core.Cell] struct {
	controls
	automaton core.SparseAutomaton[C]
}

// NewSparse validates cfg and computes the layout for cfg.GridSize.
func NewSparse[C core.Cell](automaton core.SparseAutomaton[C], cfg Config) (*Sparse[C], error) {
	c, err := newControls(cfg, cfg.GridSize)
	if err != nil {
		return nil, err
	}
	return &Sparse[C]{controls: c, automaton: automaton}, nil
}

// GridSize returns the viewport size in cells.
func (f *Sparse[C]) GridSize() core.Size { return f.layout.Grid() }

// SetGridSize resizes the viewport and recomputes the layout. On error the
// previous viewport is kept.
func (f *Sparse[C]) SetGridSize(size core.Size) error {
	layout, err := geometry.NewLayout(f.cfg.WindowSize, size, f.cfg.CellMargin)
	if err != nil {
		return fmt.Errorf("set grid size: %w", err)
	}
	f.layout = layout
	return nil
}

// Tick advances one generation if the update period elapsed.
func (f *Sparse[C]) Tick() (core.ExecutionState, bool) { return f.tick(f.automaton) }

// Step advances one generation immediately.
func (f *Sparse[C]) Step() core.ExecutionState { return f.step(f.automaton) }

// Render draws every viewport cell onto dst, using the default color where
// the automaton has no cell.
func (f *Sparse[C]) Render(dst render.Canvas) {
	render.DrawSparse[C](dst, f.layout, f.automaton.Cells(), f.cfg.DefaultColor, f.cfg.Background)
}

// ShouldClose reports whether a close was requested or the automaton finished.
func (f *Sparse[C]) ShouldClose() bool {
	return f.closing || f.automaton.IsFinished()
}

// DispatchInput applies this frame's input from p.
func (f *Sparse[C]) DispatchInput(p input.Poller) { f.dispatcher.Dispatch(p, f) }

// ToggleAt toggles the viewport cell under pixel (px, py) if the automaton
// accepts edits.
func (f *Sparse[C]) ToggleAt(px, py float32) bool { return f.toggleAt(f.automaton, px, py) }

// Status summarizes the frontend state.
func (f *Sparse[C]) Status() Status { return f.status(f.automaton.IsFinished()) }

// Automaton returns the driven automaton.
func (f *Sparse[C]) Automaton() core.SparseAutomaton[C] { return f.automaton }
