package components

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/countdown/pkg/utils"
)

// ColorTweenComponent animates SpriteComponent.Color from From to To over
// Duration along Ease. A completed tween stays attached and holds To.
type ColorTweenComponent struct {
	From     colorful.Color
	To       colorful.Color
	Duration time.Duration
	Ease     utils.EaseFunc

	Elapsed   time.Duration
	Completed bool

	started bool
}

// NewColorTween creates a tween starting at zero elapsed time. A nil ease
// falls back to linear.
func NewColorTween(from, to colorful.Color, d time.Duration, ease utils.EaseFunc) *ColorTweenComponent {
	if ease == nil {
		ease = utils.EaseLinear
	}
	return &ColorTweenComponent{
		From:     from,
		To:       to,
		Duration: d,
		Ease:     ease,
	}
}

// Progress returns the linear progress in [0, 1].
func (c *ColorTweenComponent) Progress() float64 {
	if c.Duration <= 0 {
		return 1
	}
	return utils.Clamp01(float64(c.Elapsed) / float64(c.Duration))
}

// Value returns the eased color at the current progress.
func (c *ColorTweenComponent) Value() colorful.Color {
	return c.From.BlendRgb(c.To, c.Ease(c.Progress()))
}

// Advance moves the tween forward by dt and returns the color to display.
// The first call after creation does not advance, so a freshly attached tween
// is shown at From on the frame it was attached.
func (c *ColorTweenComponent) Advance(dt time.Duration) colorful.Color {
	if !c.started {
		c.started = true
		c.Completed = c.Duration <= 0
		return c.Value()
	}
	if c.Completed {
		return c.To
	}
	if dt > 0 {
		c.Elapsed += dt
	}
	if c.Elapsed >= c.Duration {
		c.Elapsed = c.Duration
		c.Completed = true
	}
	return c.Value()
}
