package core

import "time"

// TimerState is the outcome of a RepeatingTimer update.
type TimerState int

const (
	// TimerOngoing means the current period has not completed yet.
	TimerOngoing TimerState = iota
	// TimerFinished means a period boundary was crossed during the update.
	TimerFinished
	// TimerPaused means the timer is paused and did not advance.
	TimerPaused
)

func (s TimerState) String() string {
	switch s {
	case TimerOngoing:
		return "ongoing"
	case TimerFinished:
		return "finished"
	case TimerPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// RepeatingTimer reports when a fixed period of wall-clock time has passed.
// It is driven by polling: every Update reads the clock and accounts for the
// time elapsed since the previous call.
//
// A stall longer than one period completes exactly one period; missed periods
// are not replayed.
type RepeatingTimer struct {
	clock       Clock
	period      time.Duration
	timeLeft    time.Duration
	lastChecked time.Time
	paused      bool
}

// NewRepeatingTimer constructs a timer using the system clock.
func NewRepeatingTimer(period time.Duration) *RepeatingTimer {
	return NewRepeatingTimerWithClock(period, SystemClock)
}

// NewRepeatingTimerWithClock constructs a timer reading time from clock.
func NewRepeatingTimerWithClock(period time.Duration, clock Clock) *RepeatingTimer {
	if clock == nil {
		clock = SystemClock
	}
	t := &RepeatingTimer{clock: clock}
	t.SetPeriod(period)
	return t
}

// Update reads the clock and advances the timer.
//
// The last checked instant is refreshed even while paused so that resuming
// does not account for the time spent paused.
func (t *RepeatingTimer) Update() TimerState {
	now := t.clock.Now()
	elapsed := now.Sub(t.lastChecked)
	t.lastChecked = now
	if elapsed < 0 {
		elapsed = 0
	}

	if t.paused {
		return TimerPaused
	}
	return t.updateState(elapsed)
}

// CheckedUpdate behaves like Update but reports false without touching the
// remaining time when the clock went backwards since the previous check.
// A paused timer reports TimerPaused, as Update does.
func (t *RepeatingTimer) CheckedUpdate() (TimerState, bool) {
	now := t.clock.Now()
	elapsed := now.Sub(t.lastChecked)
	t.lastChecked = now
	if elapsed < 0 {
		return TimerOngoing, false
	}

	if t.paused {
		return TimerPaused, true
	}
	return t.updateState(elapsed), true
}

func (t *RepeatingTimer) updateState(elapsed time.Duration) TimerState {
	if elapsed < t.timeLeft {
		t.timeLeft -= elapsed
		return TimerOngoing
	}

	overshoot := elapsed - t.timeLeft
	if overshoot > t.period {
		t.timeLeft = t.period
	} else {
		t.timeLeft = saturatingSub(t.period, overshoot)
	}
	return TimerFinished
}

// TogglePause pauses a running timer or resumes a paused one.
func (t *RepeatingTimer) TogglePause() {
	t.paused = !t.paused
}

// Paused reports whether the timer is paused.
func (t *RepeatingTimer) Paused() bool { return t.paused }

// SetPeriod restarts the timer with a new period as if it were freshly
// constructed: the remaining time is the full period and the timer runs.
// Negative periods are treated as 0.
func (t *RepeatingTimer) SetPeriod(period time.Duration) {
	if period < 0 {
		period = 0
	}
	t.period = period
	t.timeLeft = period
	t.lastChecked = t.clock.Now()
	t.paused = false
}

// Rate returns the period of one cycle.
func (t *RepeatingTimer) Rate() time.Duration { return t.period }

// TimeLeft returns the time remaining in the current period.
func (t *RepeatingTimer) TimeLeft() time.Duration { return t.timeLeft }

func saturatingSub(a, b time.Duration) time.Duration {
	if b >= a {
		return 0
	}
	return a - b
}
