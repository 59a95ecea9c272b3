package scenes

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/ecs"
	"github.com/decker502/countdown/pkg/game"
)

var _ game.Scene = (*CountdownScene)(nil)

func newTestScene(t *testing.T) (*CountdownScene, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	scene, err := NewCountdownScene(config.DefaultConfig(), log.New(logs))
	require.NoError(t, err)
	return scene, logs
}

func TestNewCountdownSceneSetup(t *testing.T) {
	scene, _ := newTestScene(t)
	em := scene.EntityManager()

	assert.Equal(t, 2, em.EntityCount(), "camera and sprite")
	assert.Len(t, ecs.GetEntitiesWith1[*components.CameraComponent](em), 1)
	assert.Equal(t, []ecs.EntityID{scene.Sprite()}, ecs.GetEntitiesWith1[*components.SpriteMarkerComponent](em))

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, scene.Sprite())
	require.True(t, ok)
	assert.Equal(t, colorful.Color{R: 1, G: 1, B: 1}, sprite.Color)

	assert.Equal(t, 2*time.Second, scene.Countdown().Period())
	assert.Equal(t, uint32(0), scene.Countdown().Counter)
}

func TestNewCountdownSceneNilConfig(t *testing.T) {
	scene, err := NewCountdownScene(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultCountdownPeriod, scene.Countdown().Period())
}

func TestNewCountdownSceneBadSprite(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sprite.Size = 0
	_, err := NewCountdownScene(cfg, log.New(&bytes.Buffer{}))
	assert.ErrorContains(t, err, "failed to create sprite")
}

func TestCountdownSceneFadeCycle(t *testing.T) {
	scene, logs := newTestScene(t)
	em := scene.EntityManager()
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, scene.Sprite())

	// 2s at 60 TPS plus the frame that crosses the boundary
	for i := 0; i < 121; i++ {
		scene.Update(config.FrameDelta)
	}
	require.Equal(t, uint32(1), scene.Countdown().Counter)
	assert.Equal(t, colorful.Color{}, sprite.Color, "fade starts at black")

	// 500ms later the sprite is red
	for i := 0; i < 31; i++ {
		scene.Update(config.FrameDelta)
	}
	assert.InDelta(t, 1.0, sprite.Color.R, 1e-9)
	assert.InDelta(t, 0.0, sprite.Color.G, 1e-9)

	assert.Contains(t, logs.String(), "timer already finished 1 times")
	assert.Equal(t, uint64(152), scene.Frames())
	assert.Equal(t, 152*config.FrameDelta, scene.Simulated())
}

func TestCountdownSceneSpeedsUp(t *testing.T) {
	scene, logs := newTestScene(t)

	for i := 0; i < 10; i++ {
		scene.Update(scene.Countdown().Period())
	}

	assert.Equal(t, time.Second, scene.Countdown().Period())
	assert.Equal(t, 1, strings.Count(logs.String(), "increasing speed"))
	assert.Equal(t, uint64(10), scene.TotalFires())
}

func TestCountdownSceneOverlay(t *testing.T) {
	scene, _ := newTestScene(t)
	assert.False(t, scene.DebugOverlay())

	scene.SetDebugOverlay(true)
	assert.True(t, scene.DebugOverlay())

	scene.Update(500 * time.Millisecond)
	text := scene.OverlayText()
	assert.Contains(t, text, "fires: 0")
	assert.Contains(t, text, "period: 2s")
	assert.Contains(t, text, "next in: 1.5s")
}
