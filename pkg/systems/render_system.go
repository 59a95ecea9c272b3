package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/ecs"
)

// RenderSystem draws every sprite relative to the 2D camera.
type RenderSystem struct {
	entityManager *ecs.EntityManager
	background    color.Color
	overlay       string
}

// NewRenderSystem creates the render system with the given clear color.
func NewRenderSystem(em *ecs.EntityManager, background color.Color) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		background:    background,
	}
}

// SetOverlay sets the debug text drawn in the top-left corner. Empty hides it.
func (s *RenderSystem) SetOverlay(text string) {
	s.overlay = text
}

// Camera returns the camera position and zoom. Without a camera entity the
// world origin sits at the screen center with zoom 1.
func (s *RenderSystem) Camera() (x, y, zoom float64) {
	cameras := ecs.GetEntitiesWith2[*components.CameraComponent, *components.TransformComponent](s.entityManager)
	if len(cameras) == 0 {
		return 0, 0, 1
	}
	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, cameras[0])
	tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, cameras[0])
	zoom = cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return tr.X, tr.Y, zoom
}

// Draw clears the screen and draws all sprites.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	bounds := screen.Bounds()
	camX, camY, zoom := s.Camera()

	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.TransformComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		x, y, w, h := SpriteRect(tr, sprite, camX, camY, zoom, bounds.Dx(), bounds.Dy())
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), sprite.Color.Clamped(), false)
	}

	if s.overlay != "" {
		ebitenutil.DebugPrint(screen, s.overlay)
	}
}

// WorldToScreen converts world coordinates (origin at the camera, +Y up) to
// screen pixels (origin top-left, +Y down).
func WorldToScreen(wx, wy, camX, camY, zoom float64, screenW, screenH int) (float64, float64) {
	sx := float64(screenW)/2 + (wx-camX)*zoom
	sy := float64(screenH)/2 - (wy-camY)*zoom
	return sx, sy
}

// SpriteRect returns the top-left corner and size of a sprite on screen.
func SpriteRect(tr *components.TransformComponent, sprite *components.SpriteComponent, camX, camY, zoom float64, screenW, screenH int) (x, y, w, h float64) {
	cx, cy := WorldToScreen(tr.X, tr.Y, camX, camY, zoom, screenW, screenH)
	w = sprite.Width * zoom
	h = sprite.Height * zoom
	return cx - w/2, cy - h/2, w, h
}
