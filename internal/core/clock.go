package core

import "time"

// Clock supplies the current instant to time-driven components. Production
// code uses SystemClock; tests substitute a controllable clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the monotonic system clock.
var SystemClock Clock = systemClock{}
