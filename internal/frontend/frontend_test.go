package frontend

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"gridview/internal/core"
	"gridview/internal/geometry"
	"gridview/internal/input"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type bit bool

func (b bit) RenderCell() color.RGBA {
	if b {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

// counter is a dense automaton that records steps and toggles.
type counter struct {
	size    core.Size
	steps   int
	limit   int
	toggled []core.Pos
}

func (c *counter) Size() core.Size   { return c.size }
func (c *counter) At(x, y int) bit   { return bit((x+y+c.steps)%2 == 0) }
func (c *counter) IsFinished() bool  { return c.limit > 0 && c.steps >= c.limit }
func (c *counter) Toggle(p core.Pos) { c.toggled = append(c.toggled, p) }
func (c *counter) Step() core.ExecutionState {
	c.steps++
	if c.IsFinished() {
		return core.Finished
	}
	return core.Running
}

type plane struct {
	cells map[core.Pos]bit
	steps int
}

func (p *plane) Cells() map[core.Pos]bit { return p.cells }
func (p *plane) IsFinished() bool        { return false }
func (p *plane) Step() core.ExecutionState {
	p.steps++
	return core.Running
}

type keyPoller struct {
	key  input.Key
	x, y float32
	ok   bool
}

func (k keyPoller) LastKey() (input.Key, bool)      { return k.key, k.key != input.KeyNone }
func (k keyPoller) Click() (float32, float32, bool) { return k.x, k.y, k.ok }

type countingCanvas struct {
	clears int
	rects  map[color.RGBA]int
}

func (c *countingCanvas) Clear(color.RGBA) { c.clears++ }
func (c *countingCanvas) FillRect(_, _, _, _ float32, col color.RGBA) {
	if c.rects == nil {
		c.rects = map[color.RGBA]int{}
	}
	c.rects[col]++
}

func testConfig(clock core.Clock) Config {
	cfg := DefaultConfig()
	cfg.WindowSize = core.Size{W: 200, H: 200}
	cfg.CellMargin = 1
	cfg.UpdateRate = 100 * time.Millisecond
	cfg.Clock = clock
	return cfg
}

func TestNewDenseRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(nil)
	cfg.CellMargin = 50
	if _, err := NewDense[bit](&counter{size: core.Size{W: 4, H: 4}}, cfg); !errors.Is(err, geometry.ErrGridTooLarge) {
		t.Fatalf("err = %v, want ErrGridTooLarge", err)
	}

	cfg = testConfig(nil)
	if _, err := NewDense[bit](&counter{size: core.Size{W: 0, H: 4}}, cfg); !errors.Is(err, geometry.ErrEmptyGrid) {
		t.Fatalf("err = %v, want ErrEmptyGrid", err)
	}

	cfg.UpdateRate = -time.Second
	if _, err := NewDense[bit](&counter{size: core.Size{W: 4, H: 4}}, cfg); !errors.Is(err, ErrNegativeDuration) {
		t.Fatalf("err = %v, want ErrNegativeDuration", err)
	}
}

func TestDenseTickFollowsTimer(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	automaton := &counter{size: core.Size{W: 4, H: 4}}
	f, err := NewDense[bit](automaton, testConfig(clock))
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}

	clock.Advance(60 * time.Millisecond)
	if _, stepped := f.Tick(); stepped {
		t.Fatal("tick before the period elapsed must not step")
	}
	clock.Advance(40 * time.Millisecond)
	if state, stepped := f.Tick(); !stepped || state != core.Running {
		t.Fatalf("Tick() = %v, %v; want running, true", state, stepped)
	}
	if automaton.steps != 1 || f.Generation() != 1 {
		t.Fatalf("steps = %d, generation = %d; want 1, 1", automaton.steps, f.Generation())
	}

	f.DispatchInput(keyPoller{key: input.KeyPause})
	clock.Advance(time.Second)
	if _, stepped := f.Tick(); stepped {
		t.Fatal("paused frontend must not step on tick")
	}
	if !f.Status().Paused {
		t.Fatal("status should report paused")
	}

	f.DispatchInput(keyPoller{key: input.KeyStep})
	if automaton.steps != 2 {
		t.Fatalf("step key while paused: steps = %d, want 2", automaton.steps)
	}

	f.DispatchInput(keyPoller{key: input.KeyPause})
	clock.Advance(50 * time.Millisecond)
	if _, stepped := f.Tick(); stepped {
		t.Fatal("time spent paused must not count after resuming")
	}
}

func TestDenseRateKeysResetPeriod(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	f, err := NewDense[bit](&counter{size: core.Size{W: 2, H: 2}}, testConfig(clock))
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}

	f.DispatchInput(keyPoller{key: input.KeySlower})
	if f.Rate() != 110*time.Millisecond {
		t.Fatalf("Rate() = %v, want 110ms", f.Rate())
	}
	for i := 0; i < 20; i++ {
		f.DispatchInput(keyPoller{key: input.KeyFaster})
	}
	if f.Rate() != 0 {
		t.Fatalf("Rate() = %v, want 0", f.Rate())
	}
	clock.Advance(time.Millisecond)
	if _, stepped := f.Tick(); !stepped {
		t.Fatal("zero rate should step on every tick")
	}
}

func TestDenseRateKeyResumes(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	automaton := &counter{size: core.Size{W: 2, H: 2}}
	f, err := NewDense[bit](automaton, testConfig(clock))
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}

	f.DispatchInput(keyPoller{key: input.KeyPause})
	f.DispatchInput(keyPoller{key: input.KeySlower})
	if f.Paused() {
		t.Fatal("rate key should restart a paused frontend")
	}
	clock.Advance(110 * time.Millisecond)
	if _, stepped := f.Tick(); !stepped || automaton.steps != 1 {
		t.Fatalf("tick after rate key: stepped %v, steps %d", stepped, automaton.steps)
	}
}

func TestDenseTickAfterFinish(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	automaton := &counter{size: core.Size{W: 2, H: 2}, limit: 1}
	f, err := NewDense[bit](automaton, testConfig(clock))
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if state := f.Step(); state != core.Finished {
		t.Fatalf("Step() = %v, want finished", state)
	}

	clock.Advance(50 * time.Millisecond)
	if state, stepped := f.Tick(); stepped || state != core.Finished {
		t.Fatalf("Tick() = %v, %v; want finished, false", state, stepped)
	}
	clock.Advance(60 * time.Millisecond)
	if state, stepped := f.Tick(); !stepped || state != core.Finished {
		t.Fatalf("Tick() = %v, %v; want finished, true", state, stepped)
	}
	if automaton.steps != 1 || f.Generation() != 1 {
		t.Fatalf("steps = %d, generation = %d; want 1, 1", automaton.steps, f.Generation())
	}
}

func TestDenseClosesWhenFinishedOrRequested(t *testing.T) {
	automaton := &counter{size: core.Size{W: 3, H: 3}, limit: 2}
	f, err := NewDense[bit](automaton, testConfig(nil))
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}

	if f.ShouldClose() {
		t.Fatal("fresh frontend should not close")
	}
	f.Step()
	if state := f.Step(); state != core.Finished {
		t.Fatalf("Step() = %v, want finished", state)
	}
	if !f.ShouldClose() || !f.Status().Finished {
		t.Fatal("finished automaton should close the frontend")
	}
	if state := f.Step(); state != core.Finished || automaton.steps != 2 || f.Generation() != 2 {
		t.Fatalf("step after finish: state %v, steps %d, generation %d", state, automaton.steps, f.Generation())
	}

	other, err := NewDense[bit](&counter{size: core.Size{W: 3, H: 3}}, testConfig(nil))
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	other.DispatchInput(keyPoller{key: input.KeyQuit})
	if !other.ShouldClose() {
		t.Fatal("quit key should close the frontend")
	}
}

func TestDenseRenderAndToggle(t *testing.T) {
	automaton := &counter{size: core.Size{W: 5, H: 5}}
	f, err := NewDense[bit](automaton, testConfig(nil))
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}

	canvas := &countingCanvas{}
	f.Render(canvas)
	if canvas.clears != 1 {
		t.Fatalf("clears = %d, want 1", canvas.clears)
	}
	total := 0
	for _, n := range canvas.rects {
		total += n
	}
	if total != 25 {
		t.Fatalf("draws = %d, want 25", total)
	}

	px, py := f.Layout().CellPos(3, 1)
	half := f.Layout().Side() / 2
	f.DispatchInput(keyPoller{x: px + half, y: py + half, ok: true})
	if len(automaton.toggled) != 1 || automaton.toggled[0] != (core.Pos{X: 3, Y: 1}) {
		t.Fatalf("toggled = %v, want [(3,1)]", automaton.toggled)
	}
	if f.ToggleAt(0, 0) {
		t.Fatal("click in the window corner should not toggle")
	}
}

func TestSparseViewport(t *testing.T) {
	p := &plane{cells: map[core.Pos]bit{{X: 1, Y: 1}: true, {X: 40, Y: -3}: true}}
	cfg := testConfig(nil)
	cfg.GridSize = core.Size{W: 3, H: 3}
	cfg.DefaultColor = color.RGBA{B: 200, A: 255}
	f, err := NewSparse[bit](p, cfg)
	if err != nil {
		t.Fatalf("NewSparse: %v", err)
	}

	canvas := &countingCanvas{}
	f.Render(canvas)
	if canvas.rects[cfg.DefaultColor] != 8 || canvas.rects[bit(true).RenderCell()] != 1 {
		t.Fatalf("draws = %v, want 8 default and 1 live", canvas.rects)
	}

	if err := f.SetGridSize(core.Size{W: 0, H: 3}); !errors.Is(err, geometry.ErrEmptyGrid) {
		t.Fatalf("SetGridSize(0x3) err = %v, want ErrEmptyGrid", err)
	}
	if f.GridSize() != (core.Size{W: 3, H: 3}) {
		t.Fatalf("invalid resize changed the viewport to %v", f.GridSize())
	}

	if err := f.SetGridSize(core.Size{W: 6, H: 4}); err != nil {
		t.Fatalf("SetGridSize: %v", err)
	}
	canvas = &countingCanvas{}
	f.Render(canvas)
	if canvas.rects[cfg.DefaultColor] != 23 || canvas.rects[bit(true).RenderCell()] != 1 {
		t.Fatalf("draws after resize = %v, want 23 default and 1 live", canvas.rects)
	}

	if f.ToggleAt(100, 100) {
		t.Fatal("automaton without Toggle must not accept edits")
	}
	f.Step()
	if p.steps != 1 || f.Status().Generation != 1 {
		t.Fatalf("steps = %d, generation = %d", p.steps, f.Status().Generation)
	}
}
