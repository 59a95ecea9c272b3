// ease_showcase shows every easing curve side by side: one square per curve,
// each repeating the black-to-red fade used by the countdown.
//
// Usage:
//
//	go run ./cmd/ease_showcase [--config path] [--hold 300ms]
//
// Controls:
//
//	Space       restart all fades
//	Q/Escape    quit
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/decker502/countdown/pkg/app"
	"github.com/decker502/countdown/pkg/components"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/ecs"
	"github.com/decker502/countdown/pkg/entities"
	"github.com/decker502/countdown/pkg/systems"
	"github.com/decker502/countdown/pkg/utils"
)

var errQuit = errors.New("quit")

var (
	flagConfig  string
	flagHold    time.Duration
	flagVerbose bool
)

type showcaseCell struct {
	name   string
	ease   utils.EaseFunc
	entity ecs.EntityID
	labelX int
	labelY int
	held   time.Duration
}

// ShowcaseGame implements ebiten.Game.
type ShowcaseGame struct {
	cfg           *config.Config
	entityManager *ecs.EntityManager
	tweenSystem   *systems.TweenSystem
	renderSystem  *systems.RenderSystem
	cells         []*showcaseCell
	hold          time.Duration
	logger        *log.Logger
}

func newShowcaseGame(cfg *config.Config, hold time.Duration, logger *log.Logger) (*ShowcaseGame, error) {
	em := ecs.NewEntityManager()
	if _, err := entities.NewCameraEntity(em); err != nil {
		return nil, err
	}

	names := utils.EaseNames()
	layout := GridLayout{
		Columns:      FitColumns(len(names)),
		CellSize:     120,
		Padding:      40,
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
	}

	g := &ShowcaseGame{
		cfg:           cfg,
		entityManager: em,
		tweenSystem:   systems.NewTweenSystem(em),
		renderSystem:  systems.NewRenderSystem(em, cfg.Window.Background),
		hold:          hold,
		logger:        logger,
	}

	for i, name := range names {
		ease, err := utils.EaseByName(name)
		if err != nil {
			return nil, err
		}
		sx, sy := layout.CellCenter(i, len(names))
		wx, wy := layout.ScreenToWorld(sx, sy)

		spriteCfg := cfg.Sprite
		spriteCfg.X, spriteCfg.Y = wx, wy
		spriteCfg.Size = layout.CellSize
		id, err := entities.NewSpriteEntity(em, spriteCfg)
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", name, err)
		}

		cell := &showcaseCell{
			name:   name,
			ease:   ease,
			entity: id,
			labelX: int(sx - layout.CellSize/2),
			labelY: int(sy + layout.CellSize/2 + 4),
		}
		g.cells = append(g.cells, cell)
		g.restart(cell)
	}

	logger.Debug("showcase ready", "curves", len(g.cells))
	return g, nil
}

func (g *ShowcaseGame) restart(cell *showcaseCell) {
	cell.held = 0
	g.entityManager.AddComponent(cell.entity, components.NewColorTween(
		g.cfg.Tween.FromColor, g.cfg.Tween.ToColor, g.cfg.Tween.Duration, cell.ease))
}

// Update advances all fades and restarts each one after it held its end
// color for the hold time.
func (g *ShowcaseGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	restartAll := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	g.tweenSystem.Update(config.FrameDelta)

	for _, cell := range g.cells {
		tween, ok := ecs.GetComponent[*components.ColorTweenComponent](g.entityManager, cell.entity)
		if restartAll || !ok {
			g.restart(cell)
			continue
		}
		if tween.Completed {
			cell.held += config.FrameDelta
			if cell.held >= g.hold {
				g.restart(cell)
			}
		}
	}
	return nil
}

// Draw renders the squares and their labels.
func (g *ShowcaseGame) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen)
	for _, cell := range g.cells {
		ebitenutil.DebugPrintAt(screen, cell.name, cell.labelX, cell.labelY)
	}
}

// Layout returns the configured logical size.
func (g *ShowcaseGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

var rootCmd = &cobra.Command{
	Use:          "ease_showcase",
	Short:        "Show every easing curve with the countdown fade",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := app.NewLogger(flagVerbose, cmd.ErrOrStderr())

		cfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return err
		}

		g, err := newShowcaseGame(cfg, flagHold, logger)
		if err != nil {
			return err
		}

		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle("easing showcase")
		ebiten.SetTPS(config.TicksPerSecond)
		if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().DurationVar(&flagHold, "hold", 300*time.Millisecond, "How long each square holds its end color before restarting")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
