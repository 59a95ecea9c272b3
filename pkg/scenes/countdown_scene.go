package scenes

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/ecs"
	"github.com/decker502/countdown/pkg/entities"
	"github.com/decker502/countdown/pkg/systems"
)

// CountdownScene owns the world, the countdown state and the systems, and
// runs them in a fixed order every frame.
type CountdownScene struct {
	entityManager *ecs.EntityManager
	commands      *ecs.Commands
	countdown     *components.Countdown

	countdownSystem *systems.CountdownSystem
	tweenSystem     *systems.TweenSystem
	renderSystem    *systems.RenderSystem

	logger       *log.Logger
	sprite       ecs.EntityID
	frames       uint64
	simulated    time.Duration
	debugOverlay bool
}

// NewCountdownScene builds the scene and runs setup: a camera and one sprite.
func NewCountdownScene(cfg *config.Config, logger *log.Logger) (*CountdownScene, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}

	em := ecs.NewEntityManager()
	cmds := ecs.NewCommands()
	cd := components.NewCountdown(cfg.Countdown.Period)

	s := &CountdownScene{
		entityManager:   em,
		commands:        cmds,
		countdown:       cd,
		countdownSystem: systems.NewCountdownSystem(em, cmds, cd, systems.RulesFromConfig(cfg), logger),
		tweenSystem:     systems.NewTweenSystem(em),
		renderSystem:    systems.NewRenderSystem(em, cfg.Window.Background),
		logger:          logger,
	}

	if err := s.setup(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CountdownScene) setup(cfg *config.Config) error {
	if _, err := entities.NewCameraEntity(s.entityManager); err != nil {
		return fmt.Errorf("failed to create camera: %w", err)
	}
	sprite, err := entities.NewSpriteEntity(s.entityManager, cfg.Sprite)
	if err != nil {
		return fmt.Errorf("failed to create sprite: %w", err)
	}
	s.sprite = sprite

	s.logger.Debug("scene ready", "period", cfg.Countdown.Period, "sprite", sprite)
	return nil
}

// Update runs one frame: countdown, queued commands, tweens, then cleanup.
func (s *CountdownScene) Update(dt time.Duration) {
	s.frames++
	if dt > 0 {
		s.simulated += dt
	}

	s.countdownSystem.Update(dt)
	s.commands.Apply(s.entityManager)
	s.tweenSystem.Update(dt)
	s.entityManager.RemoveMarkedEntities()
}

// Draw renders the scene.
func (s *CountdownScene) Draw(screen *ebiten.Image) {
	if s.debugOverlay {
		s.renderSystem.SetOverlay(s.OverlayText())
	} else {
		s.renderSystem.SetOverlay("")
	}
	s.renderSystem.Draw(screen)
}

// OverlayText is the debug overlay content.
func (s *CountdownScene) OverlayText() string {
	return fmt.Sprintf("fires: %d (total %d)\nperiod: %v\nnext in: %v\nTPS: %0.1f",
		s.countdown.Counter,
		s.countdownSystem.TotalFires(),
		s.countdown.Period(),
		(s.countdown.Period() - s.countdown.Timer.Elapsed).Round(time.Millisecond),
		ebiten.ActualTPS(),
	)
}

// SetDebugOverlay shows or hides the debug overlay.
func (s *CountdownScene) SetDebugOverlay(enabled bool) {
	s.debugOverlay = enabled
}

// DebugOverlay reports whether the debug overlay is shown.
func (s *CountdownScene) DebugOverlay() bool {
	return s.debugOverlay
}

// Countdown returns the countdown state.
func (s *CountdownScene) Countdown() *components.Countdown {
	return s.countdown
}

// TotalFires returns how many times the countdown fired, ignoring resets.
func (s *CountdownScene) TotalFires() uint64 {
	return s.countdownSystem.TotalFires()
}

// Frames returns how many times Update ran.
func (s *CountdownScene) Frames() uint64 {
	return s.frames
}

// Simulated returns the total simulated time passed to Update.
func (s *CountdownScene) Simulated() time.Duration {
	return s.simulated
}

// EntityManager exposes the world, mainly for tests and tools.
func (s *CountdownScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Sprite returns the animated sprite entity.
func (s *CountdownScene) Sprite() ecs.EntityID {
	return s.sprite
}
