//go:build !ebiten

package app

import "errors"

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("app.Run requires building with the 'ebiten' tag")

// Run reports that the GUI build tag is missing.
func Run(string, Scene, int) error {
	return ErrNoGUI
}
