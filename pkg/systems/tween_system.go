package systems

import (
	"time"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/ecs"
)

// TweenSystem drives ColorTweenComponent and writes the result into the
// entity's SpriteComponent.
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem creates the tween system.
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{
		entityManager: em,
	}
}

// Update advances every tween by dt.
func (s *TweenSystem) Update(dt time.Duration) {
	entities := ecs.GetEntitiesWith2[*components.ColorTweenComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range entities {
		tween, ok := ecs.GetComponent[*components.ColorTweenComponent](s.entityManager, id)
		if !ok {
			continue
		}
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}

		wasCompleted := tween.Completed
		color := tween.Advance(dt)
		if wasCompleted {
			// leave the sprite alone once the final color has been written
			continue
		}
		sprite.Color = color
	}
}
