package systems

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/ecs"
	"github.com/decker502/countdown/pkg/utils"
)

// CountdownRules are the tunables of the countdown system.
type CountdownRules struct {
	SpeedUpEvery uint32 // halve the period when Counter is a multiple of this
	ResetAbove   uint32 // reset Counter and period once Counter exceeds this

	TweenFrom     colorful.Color
	TweenTo       colorful.Color
	TweenDuration time.Duration
	TweenEase     utils.EaseFunc
}

// RulesFromConfig builds the rules from a loaded config.
func RulesFromConfig(cfg *config.Config) CountdownRules {
	return CountdownRules{
		SpeedUpEvery:  cfg.Countdown.SpeedUpEvery,
		ResetAbove:    cfg.Countdown.ResetAbove,
		TweenFrom:     cfg.Tween.FromColor,
		TweenTo:       cfg.Tween.ToColor,
		TweenDuration: cfg.Tween.Duration,
		TweenEase:     cfg.Tween.EaseFunc,
	}
}

// CountdownSystem ticks the countdown and, every time it fires, restarts the
// sprite's color fade and applies the speed-up and reset rules.
type CountdownSystem struct {
	entityManager *ecs.EntityManager
	commands      *ecs.Commands
	countdown     *components.Countdown
	rules         CountdownRules
	logger        *log.Logger

	totalFires      uint64
	lastWarnedCount int
}

// NewCountdownSystem creates the system. logger may be nil.
func NewCountdownSystem(em *ecs.EntityManager, cmds *ecs.Commands, cd *components.Countdown, rules CountdownRules, logger *log.Logger) *CountdownSystem {
	if logger == nil {
		logger = log.Default()
	}
	if rules.SpeedUpEvery == 0 {
		rules.SpeedUpEvery = config.DefaultSpeedUpEvery
	}
	return &CountdownSystem{
		entityManager:   em,
		commands:        cmds,
		countdown:       cd,
		rules:           rules,
		logger:          logger,
		lastWarnedCount: 1,
	}
}

// Update advances the countdown by dt. At most one fire is handled per call.
func (s *CountdownSystem) Update(dt time.Duration) {
	cd := s.countdown
	if !cd.Timer.Tick(dt) {
		return
	}

	s.totalFires++
	cd.Counter++
	s.logger.Infof("timer already finished %d times", cd.Counter)

	s.restartFade()

	// halve first, then reset: a reset in the same fire wins
	if cd.Counter%s.rules.SpeedUpEvery == 0 {
		s.logger.Info("increasing speed")
		cd.Timer.SetDuration(cd.Timer.Duration / 2)
	}
	if cd.Counter > s.rules.ResetAbove {
		cd.Counter = 0
		cd.Timer.SetDuration(cd.DefaultDuration)
		s.logger.Debug("countdown reset", "period", cd.DefaultDuration)
	}
}

// restartFade replaces the sprite's color tween. Exactly one sprite is
// expected; otherwise the fade is skipped and a warning is logged each time
// the number of matching entities changes.
func (s *CountdownSystem) restartFade() {
	sprites := ecs.GetEntitiesWith2[*components.SpriteMarkerComponent, *components.SpriteComponent](s.entityManager)
	if len(sprites) != 1 {
		if len(sprites) != s.lastWarnedCount {
			s.logger.Warn("expected exactly one sprite, skipping fade", "found", len(sprites))
		}
		s.lastWarnedCount = len(sprites)
		return
	}
	s.lastWarnedCount = 1

	ec := s.commands.Entity(sprites[0])
	ecs.Remove[*components.ColorTweenComponent](ec)
	ec.Insert(components.NewColorTween(
		s.rules.TweenFrom,
		s.rules.TweenTo,
		s.rules.TweenDuration,
		s.rules.TweenEase,
	))
}

// Countdown returns the state driven by the system.
func (s *CountdownSystem) Countdown() *components.Countdown {
	return s.countdown
}

// TotalFires returns how many times the timer fired since creation,
// unaffected by resets.
func (s *CountdownSystem) TotalFires() uint64 {
	return s.totalFires
}
