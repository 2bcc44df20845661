package frontend

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"gridview/internal/core"
	"gridview/internal/input"
)

// ErrNegativeDuration is returned when a configured period or step is below zero.
var ErrNegativeDuration = errors.New("duration must not be negative")

// Config holds the frontend settings. Zero values are not defaults; start
// from DefaultConfig and override fields.
type Config struct {
	// WindowSize is the drawable area in pixels.
	WindowSize core.Size
	// CellMargin is the gap in pixels around every cell. Purely visual.
	CellMargin int
	// UpdateRate is the wall-clock time between generations.
	UpdateRate time.Duration
	// RateStep is how much one rate key press changes UpdateRate.
	RateStep time.Duration
	// GridSize is the viewport of a sparse automaton in cells. Dense
	// automata use their own size.
	GridSize core.Size
	// DefaultColor paints viewport cells a sparse automaton leaves empty.
	DefaultColor color.RGBA
	// Background is the canvas color behind the cells.
	Background color.RGBA
	// Clock drives the update timer; nil means the system clock.
	Clock core.Clock
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		WindowSize:   core.Size{W: 1024, H: 768},
		CellMargin:   5,
		UpdateRate:   100 * time.Millisecond,
		RateStep:     input.DefaultRateStep,
		GridSize:     core.Size{W: 10, H: 10},
		DefaultColor: color.RGBA{A: 255},
		Background:   color.RGBA{R: 130, G: 130, B: 130, A: 255},
	}
}

// Validate checks the settings that do not depend on the grid. Geometry is
// validated when the layout is computed.
func (c Config) Validate() error {
	if c.UpdateRate < 0 {
		return fmt.Errorf("update rate %v: %w", c.UpdateRate, ErrNegativeDuration)
	}
	if c.RateStep < 0 {
		return fmt.Errorf("rate step %v: %w", c.RateStep, ErrNegativeDuration)
	}
	return nil
}
