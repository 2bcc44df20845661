// Package frontend drives an automaton from a caller's event loop: it paces
// generations with a RepeatingTimer, maps the grid onto the window and
// applies the fixed input bindings.
//
// A loop iteration typically renders, dispatches input and ticks:
//
//	for !f.ShouldClose() {
//		f.Render(canvas)
//		f.DispatchInput(poller)
//		f.Tick()
//	}
package frontend

import (
	"fmt"
	"time"

	"gridview/internal/core"
	"gridview/internal/geometry"
	"gridview/internal/input"
)

// Status summarizes the frontend state for display.
type Status struct {
	Generation int
	Rate       time.Duration
	Paused     bool
	Finished   bool
}

// controls is the state shared by the dense and sparse frontends.
type controls struct {
	cfg        Config
	timer      *core.RepeatingTimer
	dispatcher input.Dispatcher
	layout     geometry.Layout
	generation int
	closing    bool
}

func newControls(cfg Config, grid core.Size) (controls, error) {
	if err := cfg.Validate(); err != nil {
		return controls{}, fmt.Errorf("frontend config: %w", err)
	}
	layout, err := geometry.NewLayout(cfg.WindowSize, grid, cfg.CellMargin)
	if err != nil {
		return controls{}, fmt.Errorf("frontend config: %w", err)
	}
	return controls{
		cfg:        cfg,
		timer:      core.NewRepeatingTimerWithClock(cfg.UpdateRate, cfg.Clock),
		dispatcher: input.NewDispatcher(cfg.RateStep),
		layout:     layout,
	}, nil
}

// TogglePause pauses or resumes timed generations. Step still works while
// paused.
func (c *controls) TogglePause() { c.timer.TogglePause() }

// Paused reports whether timed generations are paused.
func (c *controls) Paused() bool { return c.timer.Paused() }

// Rate returns the time between generations.
func (c *controls) Rate() time.Duration { return c.timer.Rate() }

// SetRate changes the time between generations and restarts the current
// period.
func (c *controls) SetRate(d time.Duration) { c.timer.SetPeriod(d) }

// RequestClose makes ShouldClose report true.
func (c *controls) RequestClose() { c.closing = true }

// Generation returns the number of generations advanced so far.
func (c *controls) Generation() int { return c.generation }

// Layout returns the current screen geometry.
func (c *controls) Layout() geometry.Layout { return c.layout }

// WindowSize returns the configured window size in pixels.
func (c *controls) WindowSize() core.Size { return c.cfg.WindowSize }

func (c *controls) status(finished bool) Status {
	return Status{
		Generation: c.generation,
		Rate:       c.timer.Rate(),
		Paused:     c.timer.Paused(),
		Finished:   finished,
	}
}

// step advances a once unless it already finished.
func (c *controls) step(a core.Automaton) core.ExecutionState {
	if a.IsFinished() {
		return core.Finished
	}
	c.generation++
	return a.Step()
}

// tick steps a if the current period elapsed. The bool reports whether a
// step was attempted.
func (c *controls) tick(a core.Automaton) (core.ExecutionState, bool) {
	if c.timer.Update() != core.TimerFinished {
		return stateOf(a), false
	}
	return c.step(a), true
}

// toggleAt forwards a click at pixel (px, py) to a if it accepts edits.
func (c *controls) toggleAt(a core.Automaton, px, py float32) bool {
	toggler, ok := a.(core.Toggler)
	if !ok {
		return false
	}
	x, y, ok := c.layout.CellAt(px, py)
	if !ok {
		return false
	}
	toggler.Toggle(core.Pos{X: x, Y: y})
	return true
}

func stateOf(a core.Automaton) core.ExecutionState {
	if a.IsFinished() {
		return core.Finished
	}
	return core.Running
}
