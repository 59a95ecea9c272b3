package components

import "time"

// RepeatingTimer counts elapsed time toward Duration and wraps around every
// time it is reached. Overflow carries into the next period.
type RepeatingTimer struct {
	Duration time.Duration // period, always > 0
	Elapsed  time.Duration // time accumulated in the current period

	finished      bool
	timesFinished uint32
}

// NewRepeatingTimer creates a timer with the given period. Non-positive
// periods are raised to 1ns.
func NewRepeatingTimer(d time.Duration) RepeatingTimer {
	return RepeatingTimer{Duration: clampPeriod(d)}
}

// Tick advances the timer by dt and reports whether it finished during this
// call. Negative dt is treated as zero.
func (t *RepeatingTimer) Tick(dt time.Duration) bool {
	t.finished = false
	t.timesFinished = 0
	if dt <= 0 {
		return false
	}

	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.finished = true
		t.timesFinished = uint32(t.Elapsed / t.Duration)
		t.Elapsed %= t.Duration
	}
	return t.finished
}

// Finished reports whether the last Tick crossed a period boundary.
func (t *RepeatingTimer) Finished() bool {
	return t.finished
}

// TimesFinishedThisTick returns how many period boundaries the last Tick
// crossed.
func (t *RepeatingTimer) TimesFinishedThisTick() uint32 {
	return t.timesFinished
}

// SetDuration changes the period without touching Elapsed.
func (t *RepeatingTimer) SetDuration(d time.Duration) {
	t.Duration = clampPeriod(d)
}

// Reset clears the accumulated time and the finished state.
func (t *RepeatingTimer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// Fraction returns progress through the current period in [0, 1).
func (t *RepeatingTimer) Fraction() float64 {
	return float64(t.Elapsed) / float64(t.Duration)
}

func clampPeriod(d time.Duration) time.Duration {
	if d < time.Nanosecond {
		return time.Nanosecond
	}
	return d
}
