package app

import (
	"errors"
	"fmt"
	"sort"

	"gridview/internal/core"
	"gridview/internal/frontend"
	"gridview/internal/input"
	"gridview/internal/render"
)

// ErrUnknownScene is returned by NewScene for unregistered names.
var ErrUnknownScene = errors.New("unknown scene")

// Scene is the cell-type independent surface of a frontend. Both
// frontend.Dense and frontend.Sparse satisfy it.
type Scene interface {
	Tick() (core.ExecutionState, bool)
	Step() core.ExecutionState
	Render(dst render.Canvas)
	ShouldClose() bool
	DispatchInput(p input.Poller)
	Status() frontend.Status
	WindowSize() core.Size
}

// Factory builds a scene from per-scene parameters (flag-style key/value
// pairs), the frontend configuration and a seed.
type Factory func(params map[string]string, cfg frontend.Config, seed int64) (Scene, error)

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// WindowTitle returns the title of the window showing the named scene.
func WindowTitle(name string) string {
	return "gridview - " + name
}

// Names returns the registered scene names in order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScene looks up name and builds the scene.
func NewScene(name string, params map[string]string, cfg frontend.Config, seed int64) (Scene, error) {
	factory, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	scene, err := factory(params, cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	return scene, nil
}
