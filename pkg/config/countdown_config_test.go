package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/countdown/pkg/embedded"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 2*time.Second, cfg.Countdown.Period)
	assert.Equal(t, uint32(10), cfg.Countdown.SpeedUpEvery)
	assert.Equal(t, uint32(100), cfg.Countdown.ResetAbove)
	assert.Equal(t, 500*time.Millisecond, cfg.Tween.Duration)
	assert.InDelta(t, 0.25, cfg.Tween.EaseFunc(0.5), 1e-9, "quadratic ease-in")
	assert.Equal(t, 1.0, cfg.Tween.ToColor.R)
	assert.Equal(t, 0.0, cfg.Tween.FromColor.R)
	assert.Equal(t, 1.0, cfg.Sprite.InitialColor.G, "sprite starts white")
	assert.Equal(t, 0.0, cfg.Window.Background.B)
}

func TestParseConfigOverridesOnTopOfDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
countdown:
  period: 750ms
tween:
  ease: linear
  to: "#00ff00"
`), "test")
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.Countdown.Period)
	assert.Equal(t, uint32(10), cfg.Countdown.SpeedUpEvery, "unset fields keep defaults")
	assert.InDelta(t, 0.5, cfg.Tween.EaseFunc(0.5), 1e-9)
	assert.Equal(t, 1.0, cfg.Tween.ToColor.G)
	assert.Equal(t, "test", cfg.Source)
}

func TestParseConfigEmbeddedFileMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", EmbeddedConfigPath))
	require.NoError(t, err)

	cfg, err := ParseConfig(data, "file")
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Window.Title, cfg.Window.Title)
	assert.Equal(t, def.Countdown, cfg.Countdown)
	assert.Equal(t, def.Tween.Duration, cfg.Tween.Duration)
	assert.Equal(t, def.Tween.ToColor, cfg.Tween.ToColor)
	assert.Equal(t, def.Sprite.Size, cfg.Sprite.Size)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "countdown: [", "failed to parse"},
		{"zero period", "countdown:\n  period: 0s\n", "period must be positive"},
		{"negative period", "countdown:\n  period: -1s\n", "period must be positive"},
		{"zero speed-up", "countdown:\n  speedUpEvery: 0\n", "speedUpEvery"},
		{"unknown ease", "tween:\n  ease: elastic\n", "unknown easing"},
		{"bad color", "tween:\n  to: red\n", "tween.to"},
		{"bad window", "window:\n  width: 0\n", "window"},
		{"bad sprite", "sprite:\n  size: -3\n", "sprite"},
		{"negative tween", "tween:\n  duration: -5ms\n", "tween: duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml), "test")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("countdown:\n  period: 3s\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Countdown.Period)
	assert.Equal(t, path, cfg.Source)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigSearchOrder(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(func() { embedded.Init(nil) })

	// nothing anywhere: built-in defaults
	embedded.Init(nil)
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "defaults", cfg.Source)

	// embedded default
	embedded.Init(fstest.MapFS{
		EmbeddedConfigPath: {Data: []byte("countdown:\n  period: 4s\n")},
	})
	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, cfg.Countdown.Period)

	// local file wins over embedded
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(LocalConfigPath, []byte("countdown:\n  period: 5s\n"), 0o644))
	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Countdown.Period)
	assert.Equal(t, LocalConfigPath, cfg.Source)
}
