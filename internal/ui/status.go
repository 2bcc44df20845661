package ui

import (
	"fmt"
	"strings"
	"time"

	"gridview/internal/frontend"
)

// FormatStatus renders the one-line HUD text for s.
func FormatStatus(name string, s frontend.Status) string {
	var b strings.Builder
	if name != "" {
		b.WriteString(name)
		b.WriteString("  ")
	}
	fmt.Fprintf(&b, "gen %d  every %s", s.Generation, formatRate(s.Rate))
	switch {
	case s.Finished:
		b.WriteString("  [finished]")
	case s.Paused:
		b.WriteString("  [paused]")
	}
	return b.String()
}

func formatRate(d time.Duration) string {
	if d <= 0 {
		return "frame"
	}
	return d.Round(time.Millisecond).String()
}
