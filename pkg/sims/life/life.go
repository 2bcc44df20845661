package life

import (
	"image/color"

	"gridview/internal/core"
	rng "gridview/pkg/core"
)

// Kind selects which rule a cell follows.
type Kind uint8

const (
	// KindNormal cells follow Config.Rule.
	KindNormal Kind = iota
	// KindAlt cells follow Config.AltRule.
	KindAlt
)

// Cell is a single life cell.
type Cell struct {
	Alive bool
	Kind  Kind
}

var (
	deadColor   = color.RGBA{A: 255}
	normalColor = color.RGBA{R: 255, G: 109, B: 194, A: 255}
	altColor    = color.RGBA{R: 173, G: 255, B: 47, A: 255}
)

// RenderCell colors live cells by kind and dead cells black.
func (c Cell) RenderCell() color.RGBA {
	if !c.Alive {
		return deadColor
	}
	if c.Kind == KindAlt {
		return altColor
	}
	return normalColor
}

// Life implements a life-like automaton on a dense grid.
type Life struct {
	cfg   Config
	w, h  int
	rules [2]Rule
	cur   []Cell
	nxt   []Cell

	generation int
	stable     bool
}

// New returns a Conway simulation with the provided dimensions.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation for cfg with every cell dead.
func NewWithConfig(cfg Config) *Life {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	l := &Life{
		cfg:   cfg,
		w:     cfg.Width,
		h:     cfg.Height,
		rules: [2]Rule{cfg.Rule, cfg.AltRule},
		cur:   make([]Cell, cfg.Width*cfg.Height),
		nxt:   make([]Cell, cfg.Width*cfg.Height),
	}
	l.assignKinds()
	return l
}

func (l *Life) assignKinds() {
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			kind := KindNormal
			if l.cfg.Split && x+y >= l.w {
				kind = KindAlt
			}
			l.cur[y*l.w+x].Kind = kind
			l.nxt[y*l.w+x].Kind = kind
		}
	}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// At returns the cell at (x, y).
func (l *Life) At(x, y int) Cell { return l.cur[y*l.w+x] }

// Set changes whether the cell at (x, y) is alive.
func (l *Life) Set(x, y int, alive bool) {
	l.cur[y*l.w+x].Alive = alive
	l.stable = false
}

// Toggle flips the cell at p. Positions outside the grid are ignored.
func (l *Life) Toggle(p core.Pos) {
	if p.X < 0 || p.Y < 0 || p.X >= l.w || p.Y >= l.h {
		return
	}
	idx := p.Y*l.w + p.X
	l.cur[idx].Alive = !l.cur[idx].Alive
	l.stable = false
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	r := rng.NewRNG(seed)
	for i := range l.cur {
		l.cur[i].Alive = r.Chance(l.cfg.Density)
	}
	l.generation = 0
	l.stable = false
}

// IsFinished reports whether the generation limit was reached or, with
// StopWhenStable, the last step changed nothing.
func (l *Life) IsFinished() bool {
	if l.cfg.Generations > 0 && l.generation >= l.cfg.Generations {
		return true
	}
	return l.cfg.StopWhenStable && l.stable
}

// Step advances the simulation by one generation.
func (l *Life) Step() core.ExecutionState {
	w, h := l.w, l.h
	changed := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			cell := l.cur[idx]
			alive := l.rules[cell.Kind].Next(cell.Alive, l.neighbors(x, y))
			if alive != cell.Alive {
				changed = true
			}
			l.nxt[idx] = Cell{Alive: alive, Kind: cell.Kind}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	l.stable = !changed

	if l.IsFinished() {
		return core.Finished
	}
	return core.Running
}

func (l *Life) neighbors(x, y int) int {
	w, h := l.w, l.h
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if l.cfg.Wrap {
				nx = (nx + w) % w
				ny = (ny + h) % h
			} else if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			if l.cur[ny*w+nx].Alive {
				n++
			}
		}
	}
	return n
}
