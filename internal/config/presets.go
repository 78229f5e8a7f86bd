package config

import "sort"

// Preset is a named playback configuration. Zero numbers, empty strings and a
// nil Autoplay keep the current value.
type Preset struct {
	Description string
	IntervalMs  int
	Width       int
	Height      int
	Theme       string
	Autoplay    *bool
}

func enabled(on bool) *bool { return &on }

var Presets = map[string]Preset{
	"demo": {
		Description: "the stock chart, starts playing",
		IntervalMs:  200,
		Width:       950,
		Height:      450,
		Autoplay:    enabled(true),
	},
	"compact": {
		Description: "small plot for narrow terminals",
		IntervalMs:  200,
		Width:       600,
		Height:      300,
	},
	"slow": {
		Description: "one year per second",
		IntervalMs:  1000,
		Autoplay:    enabled(true),
	},
	"fast": {
		Description: "one year every 50ms",
		IntervalMs:  50,
		Theme:       "cyberpunk",
		Autoplay:    enabled(true),
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
