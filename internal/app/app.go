//go:build ebiten

package app

import (
	"errors"

	"gridview/internal/input"
	"gridview/internal/render"
	"gridview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Scene to the ebiten.Game interface.
type Game struct {
	scene  Scene
	poller *input.EbitenPoller
	hud    *ui.HUD
}

// New constructs a Game for the provided scene.
func New(name string, scene Scene) *Game {
	return &Game{
		scene:  scene,
		poller: input.NewEbitenPoller(),
		hud:    ui.NewHUD(name),
	}
}

// Update handles input and advances the scene when its period elapsed.
func (g *Game) Update() error {
	g.scene.DispatchInput(g.poller)
	if g.scene.ShouldClose() {
		return ebiten.Termination
	}
	g.scene.Tick()
	g.hud.Update(g.scene.Status())
	return nil
}

// Draw renders the current scene state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Render(render.NewScreenCanvas(screen))
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.scene.WindowSize()
	return s.W, s.H
}

// Run opens the window and blocks until the scene closes or the window is
// closed.
func Run(name string, scene Scene, tps int) error {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	size := scene.WindowSize()
	ebiten.SetWindowTitle(WindowTitle(name))
	ebiten.SetWindowSize(size.W, size.H)
	ebiten.SetTPS(tps)

	err := ebiten.RunGame(New(name, scene))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
