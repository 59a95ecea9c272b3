// Package app wires configuration, settings, logging and the countdown scene
// into an ebiten.Game, and offers a headless runner driving the same scene
// without a window.
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/game"
	"github.com/decker502/countdown/pkg/scenes"
	"github.com/decker502/countdown/pkg/utils"
)

// AppName is the gdata application name used for persisted settings.
const AppName = "countdown"

// Config is the startup configuration.
type Config struct {
	// Verbose enables debug logging.
	Verbose bool
	// ConfigPath overrides the config search order when set.
	ConfigPath string
	// Headless skips persisted settings; the caller drives the scene via RunHeadless.
	Headless bool
}

// App implements ebiten.Game around a single CountdownScene.
type App struct {
	cfg      *config.Config
	scene    *scenes.CountdownScene
	settings *game.SettingsManager
	logger   *log.Logger

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
	touchIDs                 []ebiten.TouchID
}

// NewApp loads the configuration and settings and builds the scene.
//
// Embedded resources (embedded.Init) must be initialized before calling it.
func NewApp(appCfg Config, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = NewLogger(appCfg.Verbose, nil)
	}

	cfg, err := config.LoadConfig(appCfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	logger.Debug("config loaded", "source", cfg.Source, "period", cfg.Countdown.Period)

	var gdataManager *gdata.Manager
	if !appCfg.Headless {
		gdataManager = openStorage(logger)
	}
	settings := game.NewSettingsManager(gdataManager, logger.WithPrefix("settings"))

	scene, err := scenes.NewCountdownScene(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("scene setup failed: %w", err)
	}
	scene.SetDebugOverlay(settings.GetSettings().DebugOverlay)

	return &App{
		cfg:      cfg,
		scene:    scene,
		settings: settings,
		logger:   logger,
	}, nil
}

// openStorage opens the gdata store, or returns nil when persistence is
// unavailable.
func openStorage(logger *log.Logger) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		logger.Warn("settings directory unavailable, settings will not persist", "err", err)
		return nil
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Warn("settings storage unavailable, settings will not persist", "err", err)
		return nil
	}
	return m
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() error {
	s := a.settings.GetSettings()
	ebiten.SetWindowSize(a.windowSize(s.WindowScale))
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(s.Fullscreen)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

func (a *App) windowSize(scale float64) (int, int) {
	return int(float64(a.cfg.Window.Width) * scale), int(float64(a.cfg.Window.Height) * scale)
}

// Update is called once per tick by ebiten.
func (a *App) Update() error {
	// leaving fullscreen needs a few frames before the window size sticks
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowSize(a.settings.GetSettings().WindowScale))
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		a.toggleOverlay()
	}
	if utils.IsMobile() {
		a.touchIDs = inpututil.AppendJustPressedTouchIDs(a.touchIDs[:0])
		if len(a.touchIDs) > 0 {
			a.toggleOverlay()
		}
	}

	a.scene.Update(config.FrameDelta)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	a.saveSettings()
}

func (a *App) toggleOverlay() {
	enabled := !a.scene.DebugOverlay()
	a.scene.SetDebugOverlay(enabled)
	a.settings.SetDebugOverlay(enabled)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("failed to save settings", "err", err)
	}
}

// Draw renders the scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen letterboxes the logical screen with the clear color when
// the window aspect ratio differs.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(a.background())
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

func (a *App) background() color.Color {
	return a.cfg.Window.Background.Clamped()
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Scene returns the countdown scene.
func (a *App) Scene() *scenes.CountdownScene {
	return a.scene
}

// Settings returns the settings manager.
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// FrameDelta is the simulated time per tick.
func (a *App) FrameDelta() time.Duration {
	return config.FrameDelta
}
