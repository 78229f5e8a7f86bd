package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "../data/gapminder.CSV", cfg.Data)
	assert.Equal(t, 200*time.Millisecond, cfg.Interval())
	assert.Equal(t, 950, cfg.Plot.Width)
	assert.Equal(t, 450, cfg.Plot.Height)
	assert.Equal(t, "Set1", cfg.Plot.Cmap)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "gapminder.yaml")
	want := DefaultConfig()
	want.Data = "/tmp/gapminder.csv"
	want.Playback.IntervalMs = 120
	want.Plot.Theme = "ocean"
	want.Log.Dir = "/tmp/logs"

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plot:\n  width: 600\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Plot.Width)
	assert.Equal(t, 450, cfg.Plot.Height)
	assert.Equal(t, 200, cfg.Playback.IntervalMs)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GAPMINDER_PLAYBACK_INTERVAL_MS", "75")
	t.Setenv("GAPMINDER_DATA", "env.csv")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 75*time.Millisecond, cfg.Interval())
	assert.Equal(t, "env.csv", cfg.Data)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("playback:\n  interval_ms: 0\n"), 0644))
	_, err = Load(path)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestValidateThemeAndCmap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Plot.Theme = "neon"
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "cyberpunk")

	cfg = DefaultConfig()
	cfg.Plot.Cmap = "Viridis"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	for _, name := range []string{"classic", "retro", "sunset"} {
		cfg = DefaultConfig()
		cfg.Plot.Theme = name
		assert.NoError(t, cfg.Validate(), name)
	}

	t.Setenv("GAPMINDER_PLOT_THEME", "neon")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestGetPreset(t *testing.T) {
	p, ok := GetPreset("slow")
	require.True(t, ok)
	assert.Equal(t, 1000, p.IntervalMs)

	_, ok = GetPreset("nonexistent")
	assert.False(t, ok)
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"compact", "demo", "fast", "slow"}, ListPresets())
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   string
		interval time.Duration
		width    int
		theme    string
		autoplay bool
	}{
		{"demo", 200 * time.Millisecond, 950, DefaultTheme, true},
		{"compact", 200 * time.Millisecond, 600, DefaultTheme, false},
		{"slow", time.Second, 950, DefaultTheme, true},
		{"fast", 50 * time.Millisecond, 950, "cyberpunk", true},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		p, _ := GetPreset(tt.preset)
		cfg.Apply(p)
		assert.Equal(t, tt.interval, cfg.Interval(), tt.preset)
		assert.Equal(t, tt.width, cfg.Plot.Width, tt.preset)
		assert.Equal(t, tt.theme, cfg.Plot.Theme, tt.preset)
		assert.Equal(t, tt.autoplay, cfg.Playback.Autoplay, tt.preset)
	}
}

func TestApplyPresetKeepsAutoplayFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gapminder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("playback:\n  autoplay: true\n"), 0644))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Playback.Autoplay)

	compact, _ := GetPreset("compact")
	assert.Nil(t, compact.Autoplay)
	cfg.Apply(compact)
	assert.True(t, cfg.Playback.Autoplay)
	assert.Equal(t, 600, cfg.Plot.Width)

	cfg.Apply(Preset{Autoplay: enabled(false)})
	assert.False(t, cfg.Playback.Autoplay)
}
