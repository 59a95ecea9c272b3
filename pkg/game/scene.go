package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the program.
type Scene interface {
	// Update advances the scene by dt of simulated time.
	Update(dt time.Duration)

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}
