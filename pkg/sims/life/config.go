package life

import "strconv"

// Config controls the dense life simulation.
type Config struct {
	Width  int
	Height int

	// Rule applies to normal cells.
	Rule Rule
	// AltRule applies to alternate cells when Split is set.
	AltRule Rule
	// Split makes cells on and below the anti-diagonal (x+y >= Width)
	// alternate cells.
	Split bool

	// Density is the chance of a cell starting alive.
	Density float64
	// Wrap joins opposite edges.
	Wrap bool
	// Generations stops the simulation after that many steps; 0 runs forever.
	Generations int
	// StopWhenStable stops the simulation once a step changes nothing.
	StopWhenStable bool
}

// DefaultConfig returns Conway's Game of Life on a 20x20 torus.
func DefaultConfig() Config {
	return Config{
		Width:   20,
		Height:  20,
		Rule:    Conway,
		AltRule: WithoutDeath,
		Density: 0.5,
		Wrap:    true,
	}
}

// FromMap populates a Config from a string map. Invalid values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["alt_rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.AltRule = parsed
		}
	}
	if v, ok := cfg["split"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Split = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	if v, ok := cfg["gens"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["stop_when_stable"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.StopWhenStable = parsed
		}
	}
	return c
}
