package components

import "github.com/lucasb-eyer/go-colorful"

// SpriteComponent is a solid-colored rectangle drawn centered on the entity's
// transform.
type SpriteComponent struct {
	Width  float64
	Height float64
	Color  colorful.Color
}

// SpriteMarkerComponent tags the sprite the countdown animates.
type SpriteMarkerComponent struct{}
