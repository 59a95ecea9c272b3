package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	m, err := gdata.Open(gdata.Config{AppName: appName})
	require.NoError(t, err)
	return m
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.False(t, s.Fullscreen)
	assert.False(t, s.DebugOverlay)
	assert.Equal(t, 1.0, s.WindowScale)
}

func TestSettingsNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil, quietLogger())
	require.NotNil(t, sm.GetSettings())

	sm.SetFullscreen(true)
	assert.NoError(t, sm.Save(), "in-memory mode never fails to save")

	require.NoError(t, sm.Load())
	assert.False(t, sm.GetSettings().Fullscreen, "reload in memory mode restores defaults")
}

func TestSettingsLoadSave(t *testing.T) {
	m := openTestGdata(t, "countdown_test_settings")

	sm1 := NewSettingsManager(m, quietLogger())
	sm1.SetFullscreen(true)
	sm1.SetDebugOverlay(true)
	sm1.SetWindowScale(2)
	require.NoError(t, sm1.Save())

	sm2 := NewSettingsManager(m, quietLogger())
	s := sm2.GetSettings()
	assert.True(t, s.Fullscreen)
	assert.True(t, s.DebugOverlay)
	assert.Equal(t, 2.0, s.WindowScale)
}

func TestSettingsCorruptDataFallsBack(t *testing.T) {
	m := openTestGdata(t, "countdown_test_corrupt")
	require.NoError(t, m.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [oops")))

	sm := &SettingsManager{gdataManager: m, settings: DefaultSettings(), logger: quietLogger()}
	err := sm.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
	assert.Equal(t, DefaultSettings(), sm.GetSettings())
}

func TestSetWindowScaleClamp(t *testing.T) {
	sm := NewSettingsManager(nil, quietLogger())

	tests := []struct {
		input    float64
		expected float64
	}{
		{1.5, 1.5},
		{0.5, 0.5},
		{3.0, 3.0},
		{0.1, 0.5},
		{-2, 0.5},
		{10, 3.0},
	}

	for _, tt := range tests {
		sm.SetWindowScale(tt.input)
		assert.Equal(t, tt.expected, sm.GetSettings().WindowScale, "input %v", tt.input)
	}
}

func TestGetSettingsSameInstance(t *testing.T) {
	sm := NewSettingsManager(nil, nil)
	assert.Same(t, sm.GetSettings(), sm.GetSettings())
}
