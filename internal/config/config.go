package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gapminder/internal/style"
	"github.com/san-kum/gapminder/internal/viz"
)

const (
	DefaultDataPath   = "../data/gapminder.CSV"
	DefaultIntervalMs = 200
	DefaultWidth      = 950
	DefaultHeight     = 450
	DefaultTitle      = "Gapminder Demo"
	DefaultCmap       = "Set1"
	DefaultTheme      = "classic"
	DefaultLogLevel   = "INFO"

	// EnvPrefix prefixes environment overrides, e.g. GAPMINDER_PLAYBACK_INTERVAL_MS.
	EnvPrefix = "GAPMINDER"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Data     string         `yaml:"data" mapstructure:"data"`
	Playback PlaybackConfig `yaml:"playback" mapstructure:"playback"`
	Plot     PlotConfig     `yaml:"plot" mapstructure:"plot"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

type PlaybackConfig struct {
	IntervalMs int  `yaml:"interval_ms" mapstructure:"interval_ms"`
	Autoplay   bool `yaml:"autoplay" mapstructure:"autoplay"`
}

type PlotConfig struct {
	Title  string `yaml:"title" mapstructure:"title"`
	Width  int    `yaml:"width" mapstructure:"width"`
	Height int    `yaml:"height" mapstructure:"height"`
	Cmap   string `yaml:"cmap" mapstructure:"cmap"`
	Theme  string `yaml:"theme" mapstructure:"theme"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	Dir   string `yaml:"dir" mapstructure:"dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Data: DefaultDataPath,
		Playback: PlaybackConfig{
			IntervalMs: DefaultIntervalMs,
		},
		Plot: PlotConfig{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Cmap:   DefaultCmap,
			Theme:  DefaultTheme,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("data", d.Data)
	v.SetDefault("playback.interval_ms", d.Playback.IntervalMs)
	v.SetDefault("playback.autoplay", d.Playback.Autoplay)
	v.SetDefault("plot.title", d.Plot.Title)
	v.SetDefault("plot.width", d.Plot.Width)
	v.SetDefault("plot.height", d.Plot.Height)
	v.SetDefault("plot.cmap", d.Plot.Cmap)
	v.SetDefault("plot.theme", d.Plot.Theme)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.dir", d.Log.Dir)
}

// Load reads defaults, then the YAML file at path if one is given, then
// GAPMINDER_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the chart cannot use.
func (c *Config) Validate() error {
	if c.Playback.IntervalMs <= 0 {
		return fmt.Errorf("%w: playback.interval_ms must be positive, got %d", ErrInvalid, c.Playback.IntervalMs)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalid, c.Plot.Width, c.Plot.Height)
	}
	if !slices.Contains(viz.ThemeNames(), c.Plot.Theme) {
		return fmt.Errorf("%w: plot.theme %q (available: %s)", ErrInvalid, c.Plot.Theme, strings.Join(viz.ThemeNames(), ", "))
	}
	if !slices.Contains(style.Palettes(), c.Plot.Cmap) {
		return fmt.Errorf("%w: plot.cmap %q (available: %s)", ErrInvalid, c.Plot.Cmap, strings.Join(style.Palettes(), ", "))
	}
	return nil
}

// Interval returns the animation period.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Playback.IntervalMs) * time.Millisecond
}

// Apply overlays a preset on the configuration.
func (c *Config) Apply(p Preset) {
	if p.IntervalMs > 0 {
		c.Playback.IntervalMs = p.IntervalMs
	}
	if p.Width > 0 {
		c.Plot.Width = p.Width
	}
	if p.Height > 0 {
		c.Plot.Height = p.Height
	}
	if p.Theme != "" {
		c.Plot.Theme = p.Theme
	}
	if p.Autoplay != nil {
		c.Playback.Autoplay = *p.Autoplay
	}
}
