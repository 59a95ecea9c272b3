package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/decker502/countdown/pkg/embedded"
	"github.com/decker502/countdown/pkg/utils"
)

// EmbeddedConfigPath is the embedded default config file.
const EmbeddedConfigPath = "data/countdown.yaml"

// LocalConfigPath is checked when no --config path is given.
const LocalConfigPath = "configs/countdown.yaml"

// WindowConfig describes the window and background.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	ClearColor string `yaml:"clearColor"` // hex, e.g. "#000000"

	Background colorful.Color `yaml:"-"`
}

// SpriteConfig describes the animated square.
type SpriteConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"` // initial color, hex

	InitialColor colorful.Color `yaml:"-"`
}

// CountdownConfig drives the repeating timer and its speed-up/reset rule.
type CountdownConfig struct {
	Period       time.Duration `yaml:"period"`
	SpeedUpEvery uint32        `yaml:"speedUpEvery"`
	ResetAbove   uint32        `yaml:"resetAbove"`
}

// TweenConfig describes the color fade started on every fire.
type TweenConfig struct {
	Duration time.Duration `yaml:"duration"`
	Ease     string        `yaml:"ease"`
	From     string        `yaml:"from"`
	To       string        `yaml:"to"`

	EaseFunc  utils.EaseFunc `yaml:"-"`
	FromColor colorful.Color `yaml:"-"`
	ToColor   colorful.Color `yaml:"-"`
}

// Config is the complete program configuration.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Sprite    SpriteConfig    `yaml:"sprite"`
	Countdown CountdownConfig `yaml:"countdown"`
	Tween     TweenConfig     `yaml:"tween"`

	// Source records where the config was loaded from.
	Source string `yaml:"-"`
}

// DefaultConfig returns the built-in configuration, already resolved.
func DefaultConfig() *Config {
	cfg := &Config{
		Window: WindowConfig{
			Title:      WindowTitle,
			Width:      GameWindowWidth,
			Height:     GameWindowHeight,
			ClearColor: "#000000",
		},
		Sprite: SpriteConfig{
			Size:  DefaultSpriteSize,
			Color: "#ffffff",
		},
		Countdown: CountdownConfig{
			Period:       DefaultCountdownPeriod,
			SpeedUpEvery: DefaultSpeedUpEvery,
			ResetAbove:   DefaultResetAbove,
		},
		Tween: TweenConfig{
			Duration: DefaultTweenDuration,
			Ease:     DefaultTweenEase,
			From:     "#000000",
			To:       "#ff0000",
		},
		Source: "defaults",
	}
	if err := cfg.resolve(); err != nil {
		panic(fmt.Sprintf("built-in config is invalid: %v", err))
	}
	return cfg
}

// LoadConfig loads the configuration.
//
// Search order: customPath -> ./configs/countdown.yaml -> embedded default ->
// built-in defaults. A customPath that cannot be read or parsed is an error;
// the fallbacks are silently skipped when absent.
func LoadConfig(customPath string) (*Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return ParseConfig(data, customPath)
	}

	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		return ParseConfig(data, LocalConfigPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", LocalConfigPath, err)
	}

	if embedded.Exists(EmbeddedConfigPath) {
		data, err := embedded.ReadFile(EmbeddedConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config: %w", err)
		}
		return ParseConfig(data, "embedded:"+EmbeddedConfigPath)
	}

	return DefaultConfig(), nil
}

// ParseConfig decodes YAML on top of the defaults and validates the result.
// source is only used in error messages and Config.Source.
func ParseConfig(data []byte, source string) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", source, err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// resolve validates the raw values and fills the derived fields.
func (c *Config) resolve() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Background, err = parseColor("window.clearColor", c.Window.ClearColor); err != nil {
		return err
	}

	if c.Sprite.Size <= 0 {
		return fmt.Errorf("sprite: size must be positive, got %v", c.Sprite.Size)
	}
	if c.Sprite.InitialColor, err = parseColor("sprite.color", c.Sprite.Color); err != nil {
		return err
	}

	if c.Countdown.Period <= 0 {
		return fmt.Errorf("countdown: period must be positive, got %v", c.Countdown.Period)
	}
	if c.Countdown.SpeedUpEvery == 0 {
		return fmt.Errorf("countdown: speedUpEvery must be at least 1")
	}

	if c.Tween.Duration < 0 {
		return fmt.Errorf("tween: duration cannot be negative, got %v", c.Tween.Duration)
	}
	if c.Tween.EaseFunc, err = utils.EaseByName(c.Tween.Ease); err != nil {
		return fmt.Errorf("tween: %w", err)
	}
	if c.Tween.FromColor, err = parseColor("tween.from", c.Tween.From); err != nil {
		return err
	}
	if c.Tween.ToColor, err = parseColor("tween.to", c.Tween.To); err != nil {
		return err
	}

	return nil
}

func parseColor(field, hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%s: invalid color %q: %w", field, hex, err)
	}
	return c, nil
}
