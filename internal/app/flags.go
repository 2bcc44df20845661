package app

import (
	"flag"
	"strings"
	"time"

	"gridview/internal/core"
	"gridview/internal/frontend"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Sim    string
	Seed   int64
	TPS    int
	Width  int
	Height int
	Margin int
	Rate   time.Duration
	Step   time.Duration
	GridW  int
	GridH  int
	Params kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := frontend.DefaultConfig()
	return &Config{
		Sim:    "life",
		Seed:   42,
		TPS:    60,
		Width:  d.WindowSize.W,
		Height: d.WindowSize.H,
		Margin: d.CellMargin,
		Rate:   d.UpdateRate,
		Step:   d.RateStep,
		GridW:  d.GridSize.W,
		GridH:  d.GridSize.H,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "scene to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial state")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Margin, "margin", c.Margin, "gap between cells in pixels")
	fs.DurationVar(&c.Rate, "rate", c.Rate, "time between generations")
	fs.DurationVar(&c.Step, "rate-step", c.Step, "rate change per key press")
	fs.IntVar(&c.GridW, "grid-w", c.GridW, "viewport width in cells (sparse scenes)")
	fs.IntVar(&c.GridH, "grid-h", c.GridH, "viewport height in cells (sparse scenes)")
	fs.Var(&c.Params, "set", "scene parameter in key=value form (repeatable)")
}

// Frontend converts the flags into a frontend configuration.
func (c *Config) Frontend() frontend.Config {
	fc := frontend.DefaultConfig()
	fc.WindowSize = core.Size{W: c.Width, H: c.Height}
	fc.CellMargin = c.Margin
	fc.UpdateRate = c.Rate
	fc.RateStep = c.Step
	fc.GridSize = core.Size{W: c.GridW, H: c.GridH}
	return fc
}

// SceneParams returns the -set pairs as a map. Later pairs win; malformed
// pairs are skipped.
func (c *Config) SceneParams() map[string]string {
	params := make(map[string]string, len(c.Params))
	for _, kv := range c.Params {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		params[parts[0]] = parts[1]
	}
	return params
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
