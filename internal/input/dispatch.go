// Package input translates per-frame key and mouse events into frontend
// controls. The bindings are fixed:
//
//	Space       pause / resume
//	Minus       slower (period + RateStep)
//	Equal       faster (period - RateStep, floored at zero)
//	N           advance one generation now
//	Escape, Q   close
//	left click  toggle the cell under the cursor
package input

import (
	"time"

	"gridview/internal/core"
)

// Key is a recognized control key.
type Key int

const (
	KeyNone Key = iota
	KeyPause
	KeySlower
	KeyFaster
	KeyStep
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyPause:
		return "pause"
	case KeySlower:
		return "slower"
	case KeyFaster:
		return "faster"
	case KeyStep:
		return "step"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// DefaultRateStep is the period change applied by one rate key press.
const DefaultRateStep = 10 * time.Millisecond

// Poller reports the input collected for the current frame.
type Poller interface {
	// LastKey returns the last key pressed this frame. An unbound key is
	// reported as no key. Keys pressed within the same frame are not
	// ordered by press time; the last one by key code wins.
	LastKey() (Key, bool)
	// Click returns the cursor position of a left click made this frame.
	Click() (x, y float32, ok bool)
}

// Target receives the controls a Dispatcher decodes.
type Target interface {
	TogglePause()
	Rate() time.Duration
	SetRate(d time.Duration)
	Step() core.ExecutionState
	RequestClose()
	ToggleAt(x, y float32) bool
}

// Dispatcher applies the fixed key bindings to a Target.
type Dispatcher struct {
	RateStep time.Duration
}

// NewDispatcher returns a Dispatcher changing the rate by step per key press.
// A non-positive step falls back to DefaultRateStep.
func NewDispatcher(step time.Duration) Dispatcher {
	if step <= 0 {
		step = DefaultRateStep
	}
	return Dispatcher{RateStep: step}
}

// LastOf returns the last key of a frame's presses. An unbound final key
// yields no key, even if an earlier press was bound.
func LastOf(keys []Key) (Key, bool) {
	if len(keys) == 0 {
		return KeyNone, false
	}
	last := keys[len(keys)-1]
	return last, last != KeyNone
}

// Dispatch handles at most one key and one click from p.
func (d Dispatcher) Dispatch(p Poller, t Target) {
	if key, ok := p.LastKey(); ok {
		d.HandleKey(key, t)
	}
	if x, y, ok := p.Click(); ok {
		t.ToggleAt(x, y)
	}
}

// HandleKey applies a single key to t. Unrecognized keys are ignored.
func (d Dispatcher) HandleKey(key Key, t Target) {
	switch key {
	case KeyPause:
		t.TogglePause()
	case KeySlower:
		t.SetRate(t.Rate() + d.RateStep)
	case KeyFaster:
		rate := t.Rate() - d.RateStep
		if rate < 0 {
			rate = 0
		}
		t.SetRate(rate)
	case KeyStep:
		t.Step()
	case KeyQuit:
		t.RequestClose()
	}
}
