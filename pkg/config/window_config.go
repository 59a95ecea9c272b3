package config

import "time"

// Built-in defaults. data/countdown.yaml carries the same values.
const (
	// GameWindowWidth is the logical screen width; ebiten scales it to the window.
	GameWindowWidth = 800
	// GameWindowHeight is the logical screen height.
	GameWindowHeight = 600
	// WindowTitle is the default window title.
	WindowTitle = "countdown"

	// DefaultCountdownPeriod is the timer period at startup and after a reset.
	DefaultCountdownPeriod = 2 * time.Second
	// DefaultSpeedUpEvery halves the period every N fires.
	DefaultSpeedUpEvery = 10
	// DefaultResetAbove resets counter and period once the counter exceeds it.
	DefaultResetAbove = 100

	// DefaultTweenDuration is the length of the black-to-red fade.
	DefaultTweenDuration = 500 * time.Millisecond
	// DefaultTweenEase names the fade's easing curve.
	DefaultTweenEase = "quadraticIn"

	// DefaultSpriteSize is the side length of the square sprite.
	DefaultSpriteSize = 200.0

	// TicksPerSecond is the fixed update rate of the game loop.
	TicksPerSecond = 60
)

// FrameDelta is the simulated time per update tick.
const FrameDelta = time.Second / TicksPerSecond
