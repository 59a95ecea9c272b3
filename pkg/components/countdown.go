package components

import "time"

// Countdown is the state driven by the countdown system: a repeating timer,
// the number of times it has fired, and the period restored on reset.
//
// It is owned by the scene and handed to the system by pointer.
type Countdown struct {
	Timer           RepeatingTimer
	Counter         uint32
	DefaultDuration time.Duration
}

// NewCountdown creates a countdown whose timer starts at period.
func NewCountdown(period time.Duration) *Countdown {
	timer := NewRepeatingTimer(period)
	return &Countdown{
		Timer:           timer,
		DefaultDuration: timer.Duration,
	}
}

// Period returns the current timer period.
func (c *Countdown) Period() time.Duration {
	return c.Timer.Duration
}
