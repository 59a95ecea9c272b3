package systems

import (
	"bytes"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/ecs"
)

// countdownFixture bundles a countdown system with its world for tests.
type countdownFixture struct {
	em        *ecs.EntityManager
	cmds      *ecs.Commands
	countdown *components.Countdown
	system    *CountdownSystem
	sprite    ecs.EntityID
	logs      *bytes.Buffer
}

func newCountdownFixture(period time.Duration) *countdownFixture {
	em := ecs.NewEntityManager()
	cmds := ecs.NewCommands()
	cd := components.NewCountdown(period)
	logs := &bytes.Buffer{}
	logger := log.NewWithOptions(logs, log.Options{Level: log.InfoLevel})

	sprite := createTestSprite(em)
	rules := RulesFromConfig(config.DefaultConfig())

	return &countdownFixture{
		em:        em,
		cmds:      cmds,
		countdown: cd,
		system:    NewCountdownSystem(em, cmds, cd, rules, logger),
		sprite:    sprite,
		logs:      logs,
	}
}

// fire ticks exactly one full period and applies the queued commands.
func (f *countdownFixture) fire() {
	f.system.Update(f.countdown.Period())
	f.cmds.Apply(f.em)
}

func createTestSprite(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{})
	em.AddComponent(id, &components.SpriteComponent{
		Width:  200,
		Height: 200,
		Color:  colorful.Color{R: 1, G: 1, B: 1},
	})
	em.AddComponent(id, &components.SpriteMarkerComponent{})
	return id
}
