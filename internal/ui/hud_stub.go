//go:build !ebiten

package ui

import "gridview/internal/frontend"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(string) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(frontend.Status) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
