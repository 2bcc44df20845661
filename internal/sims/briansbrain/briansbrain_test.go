package briansbrain

import (
	"testing"

	"gridview/internal/core"
)

func TestFiringCellsDecay(t *testing.T) {
	b := New(6, 6)
	b.Toggle(core.Pos{X: 2, Y: 2})
	b.Toggle(core.Pos{X: 3, Y: 2})

	b.Step()
	if b.At(2, 2) != StateDying || b.At(3, 2) != StateDying {
		t.Fatalf("firing cells should start dying, got %v %v", b.At(2, 2), b.At(3, 2))
	}
	// Cells touching exactly two firing cells ignite.
	for _, p := range []core.Pos{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 3}, {X: 3, Y: 3}} {
		if b.At(p.X, p.Y) != StateOn {
			t.Fatalf("cell %v = %v, want on", p, b.At(p.X, p.Y))
		}
	}
	if b.At(1, 2) != StateDead {
		t.Fatalf("cell with one firing neighbor = %v, want dead", b.At(1, 2))
	}

	b.Step()
	if b.At(2, 2) != StateDead {
		t.Fatalf("dying cell = %v, want dead", b.At(2, 2))
	}
}

func TestGenerationLimit(t *testing.T) {
	b := NewWithConfig(FromMap(map[string]string{"w": "8", "h": "8", "gens": "2"}))
	b.Reset(3)
	if b.Step() != core.Running || b.IsFinished() {
		t.Fatal("finished too early")
	}
	if b.Step() != core.Finished || !b.IsFinished() {
		t.Fatal("should finish after two generations")
	}
}
