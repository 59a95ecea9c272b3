package entities

import (
	"fmt"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/ecs"
)

// NewCameraEntity creates the 2D camera looking at the world origin.
func NewCameraEntity(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{})
	em.AddComponent(id, &components.CameraComponent{Zoom: 1})
	return id, nil
}

// NewSpriteEntity creates the square sprite animated by the countdown.
//
// Parameters:
//   - em: entity manager
//   - cfg: sprite position, size and initial color
//
// Returns:
//   - ecs.EntityID: the new sprite, 0 on error
//   - error: nil entity manager or non-positive size
func NewSpriteEntity(em *ecs.EntityManager, cfg config.SpriteConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.Size <= 0 {
		return 0, fmt.Errorf("invalid sprite size %v, must be positive", cfg.Size)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{X: cfg.X, Y: cfg.Y})
	em.AddComponent(id, &components.SpriteComponent{
		Width:  cfg.Size,
		Height: cfg.Size,
		Color:  cfg.InitialColor,
	})
	em.AddComponent(id, &components.SpriteMarkerComponent{})
	return id, nil
}
