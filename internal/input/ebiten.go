//go:build ebiten

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeySpace:  KeyPause,
	ebiten.KeyMinus:  KeySlower,
	ebiten.KeyEqual:  KeyFaster,
	ebiten.KeyN:      KeyStep,
	ebiten.KeyEscape: KeyQuit,
	ebiten.KeyQ:      KeyQuit,
}

// EbitenPoller reads just-pressed keys and mouse clicks from ebiten. It must
// be polled from the game's Update.
type EbitenPoller struct {
	raw  []ebiten.Key
	keys []Key
}

// NewEbitenPoller constructs a poller.
func NewEbitenPoller() *EbitenPoller {
	return &EbitenPoller{}
}

// LastKey returns the last key pressed during this tick. ebiten lists
// just-pressed keys in key code order.
func (p *EbitenPoller) LastKey() (Key, bool) {
	p.raw = inpututil.AppendJustPressedKeys(p.raw[:0])
	p.keys = p.keys[:0]
	for _, k := range p.raw {
		p.keys = append(p.keys, ebitenKeys[k])
	}
	return LastOf(p.keys)
}

// Click reports a left click made during this tick.
func (p *EbitenPoller) Click() (float32, float32, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return float32(x), float32(y), true
}
