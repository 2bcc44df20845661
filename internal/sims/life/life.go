// Package life registers the dense life scenes.
package life

import (
	"gridview/internal/app"
	"gridview/internal/frontend"
	"gridview/pkg/sims/life"
)

// mixedDefaults runs Conway above the anti-diagonal and Life without Death
// below it.
var mixedDefaults = map[string]string{"w": "100", "h": "100", "split": "true"}

func init() {
	app.Register("life", func(params map[string]string, cfg frontend.Config, seed int64) (app.Scene, error) {
		return newScene(life.FromMap(params), cfg, seed)
	})
	app.Register("mixed", func(params map[string]string, cfg frontend.Config, seed int64) (app.Scene, error) {
		merged := make(map[string]string, len(mixedDefaults)+len(params))
		for k, v := range mixedDefaults {
			merged[k] = v
		}
		for k, v := range params {
			merged[k] = v
		}
		return newScene(life.FromMap(merged), cfg, seed)
	})
}

func newScene(c life.Config, cfg frontend.Config, seed int64) (app.Scene, error) {
	l := life.NewWithConfig(c)
	l.Reset(seed)
	f, err := frontend.NewDense[life.Cell](l, cfg)
	if err != nil {
		return nil, err
	}
	return f, nil
}
