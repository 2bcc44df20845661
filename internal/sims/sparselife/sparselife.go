// Package sparselife runs a life-like automaton on an unbounded plane,
// storing only live cells.
package sparselife

import (
	"image/color"
	"strconv"

	"gridview/internal/app"
	"gridview/internal/core"
	"gridview/internal/frontend"
	rng "gridview/pkg/core"
	"gridview/pkg/sims/life"
)

// Cell is a live cell. Dead cells are absent from the map.
type Cell struct{}

// RenderCell draws live cells white.
func (Cell) RenderCell() color.RGBA {
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// Config controls the sparse simulation.
type Config struct {
	// Width and Height bound the area the initial cells are scattered in.
	Width  int
	Height int
	// Count is the number of random placements; duplicates collapse.
	Count       int
	Rule        life.Rule
	Generations int
}

// DefaultConfig returns Conway's rules with a 10x10 seed area.
func DefaultConfig() Config {
	return Config{Width: 10, Height: 10, Count: 40, Rule: life.Conway}
}

// FromMap populates a Config from a string map. Invalid values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Count = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := life.ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["gens"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	return c
}

// Plane is the sparse automaton.
type Plane struct {
	cfg        Config
	cells      map[core.Pos]Cell
	counts     map[core.Pos]int
	generation int
}

// New returns an empty plane.
func New(cfg Config) *Plane {
	return &Plane{
		cfg:    cfg,
		cells:  map[core.Pos]Cell{},
		counts: map[core.Pos]int{},
	}
}

// Cells returns the live cells. The map must not be modified.
func (p *Plane) Cells() map[core.Pos]Cell { return p.cells }

// Population returns the number of live cells.
func (p *Plane) Population() int { return len(p.cells) }

// Toggle adds or removes a live cell at pos.
func (p *Plane) Toggle(pos core.Pos) {
	if _, ok := p.cells[pos]; ok {
		delete(p.cells, pos)
		return
	}
	p.cells[pos] = Cell{}
}

// Reset scatters Count cells over the seed area.
func (p *Plane) Reset(seed int64) {
	r := rng.NewRNG(seed)
	clear(p.cells)
	for i := 0; i < p.cfg.Count; i++ {
		pos := core.Pos{X: r.IntN(p.cfg.Width), Y: r.IntN(p.cfg.Height)}
		p.cells[pos] = Cell{}
	}
	p.generation = 0
}

// IsFinished reports whether every cell died or the generation limit was
// reached.
func (p *Plane) IsFinished() bool {
	if p.cfg.Generations > 0 && p.generation >= p.cfg.Generations {
		return true
	}
	return len(p.cells) == 0
}

// Step advances one generation. Only live cells and their neighbors are
// visited.
func (p *Plane) Step() core.ExecutionState {
	clear(p.counts)
	for pos := range p.cells {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				p.counts[core.Pos{X: pos.X + dx, Y: pos.Y + dy}]++
			}
		}
	}

	next := make(map[core.Pos]Cell, len(p.cells))
	for pos := range p.cells {
		if p.cfg.Rule.Next(true, p.counts[pos]) {
			next[pos] = Cell{}
		}
	}
	for pos, n := range p.counts {
		if _, alive := p.cells[pos]; alive {
			continue
		}
		if p.cfg.Rule.Next(false, n) {
			next[pos] = Cell{}
		}
	}
	p.cells = next
	p.generation++

	if p.IsFinished() {
		return core.Finished
	}
	return core.Running
}

func init() {
	app.Register("sparse", func(params map[string]string, cfg frontend.Config, seed int64) (app.Scene, error) {
		p := New(FromMap(params))
		p.Reset(seed)
		f, err := frontend.NewSparse[Cell](p, cfg)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}
