package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the user's window preferences, persisted between runs.
type Settings struct {
	Fullscreen   bool    `yaml:"fullscreen"`   // start in fullscreen
	DebugOverlay bool    `yaml:"debugOverlay"` // show counter/period text
	WindowScale  float64 `yaml:"windowScale"`  // window size = logical size * scale
}

// Window scale limits.
const (
	MinWindowScale = 0.5
	MaxWindowScale = 3.0
)

// DefaultSettings returns the settings used when nothing is stored.
func DefaultSettings() *Settings {
	return &Settings{
		Fullscreen:   false,
		DebugOverlay: false,
		WindowScale:  1.0,
	}
}

// SettingsManager loads, holds and saves Settings.
type SettingsManager struct {
	gdataManager *gdata.Manager // nil means in-memory only
	settings     *Settings
	logger       *log.Logger
}

// storage location inside gdata
const (
	settingsObject   = "settings"
	settingsProperty = "window"
)

// NewSettingsManager creates a settings manager and loads stored settings.
//
// gdataManager may be nil, in which case settings live in memory only. A
// failed load is logged and falls back to defaults; it never fails creation.
func NewSettingsManager(gdataManager *gdata.Manager, logger *log.Logger) *SettingsManager {
	if logger == nil {
		logger = log.Default()
	}
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		logger:       logger,
	}

	if err := sm.Load(); err != nil {
		logger.Warn("failed to load settings, using defaults", "err", err)
	}

	return sm
}

// Load reads the settings from gdata. Missing data yields defaults.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.WindowScale = clampScale(loaded.WindowScale)

	sm.settings = loaded
	sm.logger.Debug("settings loaded", "fullscreen", loaded.Fullscreen, "overlay", loaded.DebugOverlay)
	return nil
}

// Save writes the settings to gdata. Without a gdata manager it is a no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.logger.Debug("settings saved")
	return nil
}

// GetSettings returns the live settings instance.
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetFullscreen changes the fullscreen preference (in memory; call Save).
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetDebugOverlay changes the overlay preference (in memory; call Save).
func (sm *SettingsManager) SetDebugOverlay(enabled bool) {
	sm.settings.DebugOverlay = enabled
}

// SetWindowScale changes the window scale, clamped to
// [MinWindowScale, MaxWindowScale] (in memory; call Save).
func (sm *SettingsManager) SetWindowScale(scale float64) {
	sm.settings.WindowScale = clampScale(scale)
}

func clampScale(scale float64) float64 {
	if scale < MinWindowScale {
		return MinWindowScale
	}
	if scale > MaxWindowScale {
		return MaxWindowScale
	}
	return scale
}
