package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepeatingTimerFiresAndCarries(t *testing.T) {
	timer := NewRepeatingTimer(2 * time.Second)

	assert.False(t, timer.Tick(1500*time.Millisecond))
	assert.True(t, timer.Tick(700*time.Millisecond))
	assert.Equal(t, 200*time.Millisecond, timer.Elapsed, "overflow carries into the next period")
	assert.Equal(t, uint32(1), timer.TimesFinishedThisTick())

	assert.False(t, timer.Tick(time.Second))
	assert.False(t, timer.Finished())
}

func TestRepeatingTimerExactBoundary(t *testing.T) {
	timer := NewRepeatingTimer(time.Second)
	assert.True(t, timer.Tick(time.Second))
	assert.Equal(t, time.Duration(0), timer.Elapsed)
}

func TestRepeatingTimerMultiplePeriodsInOneTick(t *testing.T) {
	timer := NewRepeatingTimer(time.Second)
	assert.True(t, timer.Tick(3500*time.Millisecond))
	assert.Equal(t, uint32(3), timer.TimesFinishedThisTick())
	assert.Equal(t, 500*time.Millisecond, timer.Elapsed)
}

func TestRepeatingTimerZeroAndNegativeTick(t *testing.T) {
	timer := NewRepeatingTimer(time.Second)
	timer.Tick(300 * time.Millisecond)

	before := timer
	assert.False(t, timer.Tick(0))
	assert.False(t, timer.Tick(-time.Second))
	assert.Equal(t, before.Elapsed, timer.Elapsed)
	assert.Equal(t, before.Duration, timer.Duration)
}

func TestRepeatingTimerSetDurationKeepsElapsed(t *testing.T) {
	timer := NewRepeatingTimer(2 * time.Second)
	timer.Tick(1200 * time.Millisecond)

	timer.SetDuration(time.Second)
	assert.Equal(t, 1200*time.Millisecond, timer.Elapsed)

	// already past the shorter period: the next tick fires
	assert.True(t, timer.Tick(time.Millisecond))
	assert.Equal(t, 201*time.Millisecond, timer.Elapsed)
}

func TestRepeatingTimerPeriodStaysPositive(t *testing.T) {
	timer := NewRepeatingTimer(0)
	assert.Equal(t, time.Nanosecond, timer.Duration)

	timer.SetDuration(-5 * time.Second)
	assert.Equal(t, time.Nanosecond, timer.Duration)
}

func TestRepeatingTimerResetAndFraction(t *testing.T) {
	timer := NewRepeatingTimer(2 * time.Second)
	timer.Tick(500 * time.Millisecond)
	assert.InDelta(t, 0.25, timer.Fraction(), 1e-9)

	timer.Reset()
	assert.Equal(t, time.Duration(0), timer.Elapsed)
	assert.Equal(t, 0.0, timer.Fraction())
}
