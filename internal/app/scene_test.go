package app_test

import (
	"errors"
	"flag"
	"image/color"
	"testing"
	"time"

	"gridview/internal/app"
	"gridview/internal/core"
	"gridview/internal/geometry"
	_ "gridview/internal/sims/briansbrain"
	_ "gridview/internal/sims/elementary"
	_ "gridview/internal/sims/life"
	_ "gridview/internal/sims/sparselife"
)

func TestConfigBind(t *testing.T) {
	cfg := app.NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-sim", "sparse",
		"-width", "640", "-height", "480",
		"-margin", "2",
		"-rate", "250ms",
		"-grid-w", "32", "-grid-h", "24",
		"-set", "count=100",
		"-set", "rule=B36/S23",
		"-set", "broken",
		"-set", "count=120",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	fc := cfg.Frontend()
	if fc.WindowSize != (core.Size{W: 640, H: 480}) || fc.CellMargin != 2 || fc.UpdateRate != 250*time.Millisecond {
		t.Fatalf("Frontend() = %+v", fc)
	}
	if fc.GridSize != (core.Size{W: 32, H: 24}) {
		t.Fatalf("GridSize = %v, want 32x24", fc.GridSize)
	}
	params := cfg.SceneParams()
	if len(params) != 2 || params["count"] != "120" || params["rule"] != "B36/S23" {
		t.Fatalf("SceneParams() = %v", params)
	}
}

func TestWindowTitle(t *testing.T) {
	if got := app.WindowTitle("life"); got != "gridview - life" {
		t.Fatalf("WindowTitle() = %q", got)
	}
}

func TestRegisteredScenes(t *testing.T) {
	want := []string{"briansbrain", "elementary", "life", "mixed", "sparse"}
	got := app.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}

	cfg := app.NewConfig()
	for _, name := range want {
		scene, err := app.NewScene(name, nil, cfg.Frontend(), 1)
		if err != nil {
			t.Fatalf("NewScene(%s): %v", name, err)
		}
		if scene.ShouldClose() {
			t.Fatalf("%s closes before running", name)
		}
	}

	if _, err := app.NewScene("nope", nil, cfg.Frontend(), 1); !errors.Is(err, app.ErrUnknownScene) {
		t.Fatalf("err = %v, want ErrUnknownScene", err)
	}

	bad := cfg.Frontend()
	bad.CellMargin = 500
	if _, err := app.NewScene("life", nil, bad, 1); !errors.Is(err, geometry.ErrGridTooLarge) {
		t.Fatalf("err = %v, want ErrGridTooLarge", err)
	}
}

func TestSnapshotStopsAtFinish(t *testing.T) {
	cfg := app.NewConfig()
	fc := cfg.Frontend()
	fc.WindowSize = core.Size{W: 64, H: 48}
	fc.CellMargin = 0

	scene, err := app.NewScene("elementary", map[string]string{"w": "16", "h": "12", "gens": "5"}, fc, 1)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	canvas, ran := app.Snapshot(scene, 50)
	if ran != 5 {
		t.Fatalf("ran %d generations, want 5", ran)
	}
	if !scene.ShouldClose() || scene.Status().Generation != 5 {
		t.Fatalf("status after snapshot = %+v", scene.Status())
	}

	img := canvas.Image()
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Fatalf("canvas bounds = %v", img.Bounds())
	}
	// 16x12 cells of side 4 fill the window exactly; the seed cell is the
	// middle of the oldest visible row that still holds it.
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := img.RGBAAt(8*4+1, 5*4+1); got != white {
		t.Fatalf("seed cell pixel = %v, want white", got)
	}
}
