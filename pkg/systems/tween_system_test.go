package systems

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/ecs"
	"github.com/decker502/countdown/pkg/utils"
)

func TestTweenSystemAppliesColor(t *testing.T) {
	em := ecs.NewEntityManager()
	id := createTestSprite(em)
	em.AddComponent(id, components.NewColorTween(
		colorful.Color{}, colorful.Color{R: 1}, 500*time.Millisecond, utils.EaseInQuad))

	s := NewTweenSystem(em)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)

	s.Update(16 * time.Millisecond)
	assert.Equal(t, colorful.Color{}, sprite.Color, "attach frame starts at black")

	s.Update(250 * time.Millisecond)
	assert.InDelta(t, 0.25, sprite.Color.R, 1e-9)
	assert.InDelta(t, 0.0, sprite.Color.G, 1e-9)

	s.Update(time.Second)
	assert.InDelta(t, 1.0, sprite.Color.R, 1e-9)

	tween, _ := ecs.GetComponent[*components.ColorTweenComponent](em, id)
	require.True(t, tween.Completed)
	assert.True(t, ecs.HasComponent[*components.ColorTweenComponent](em, id), "completed tween stays attached")
}

func TestTweenSystemLeavesSpriteAfterCompletion(t *testing.T) {
	em := ecs.NewEntityManager()
	id := createTestSprite(em)
	em.AddComponent(id, components.NewColorTween(colorful.Color{}, colorful.Color{R: 1}, 0, nil))

	s := NewTweenSystem(em)
	s.Update(0)

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	assert.InDelta(t, 1.0, sprite.Color.R, 1e-9)

	sprite.Color = colorful.Color{B: 1}
	s.Update(time.Second)
	assert.Equal(t, colorful.Color{B: 1}, sprite.Color)
}

func TestTweenSystemIgnoresEntitiesWithoutSprite(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	tween := components.NewColorTween(colorful.Color{}, colorful.Color{R: 1}, time.Second, nil)
	em.AddComponent(id, tween)

	NewTweenSystem(em).Update(time.Second)
	assert.Equal(t, time.Duration(0), tween.Elapsed)
}

func TestCountdownAndTweenTogether(t *testing.T) {
	f := newCountdownFixture(2 * time.Second)
	tweens := NewTweenSystem(f.em)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](f.em, f.sprite)

	step := func(dt time.Duration) {
		f.system.Update(dt)
		f.cmds.Apply(f.em)
		tweens.Update(dt)
	}

	step(2 * time.Second)
	assert.Equal(t, colorful.Color{}, sprite.Color, "fade restarts from black on the fire frame")

	step(250 * time.Millisecond)
	assert.InDelta(t, 0.25, sprite.Color.R, 1e-9)

	step(250 * time.Millisecond)
	assert.InDelta(t, 1.0, sprite.Color.R, 1e-9)
}
