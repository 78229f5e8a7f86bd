package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCmap indicates a colormap name with no palette.
var ErrUnknownCmap = errors.New("style: unknown colormap")

var palettes = map[string][]string{
	"Set1": {
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00",
		"#ffff33", "#a65628", "#f781bf", "#999999",
	},
	"Dark2": {
		"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e",
		"#e6ab02", "#a6761d", "#666666",
	},
	"Category10": {
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	},
}

var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"lightgray": "#d3d3d3",
	"gray":      "#808080",
	"darkgray":  "#a9a9a9",
}

// Palette returns the hex colours of a named colormap.
func Palette(name string) ([]string, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCmap, name)
	}
	out := make([]string, len(p))
	copy(out, p)
	return out, nil
}

// Palettes lists the available colormap names.
func Palettes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hex resolves a named colour or passes a hex colour through.
func Hex(color string) string {
	if strings.HasPrefix(color, "#") {
		return strings.ToLower(color)
	}
	if hex, ok := namedColors[strings.ToLower(color)]; ok {
		return hex
	}
	return "#000000"
}

// ColorIndex maps categories onto a palette. Categories are sorted so the
// assignment is stable across frames and runs.
type ColorIndex struct {
	categories []string
	index      map[string]int
	palette    []string
}

// NewColorIndex builds a mapping for the given categories.
func NewColorIndex(categories []string, palette []string) *ColorIndex {
	uniq := make(map[string]int)
	for _, c := range categories {
		uniq[c] = 0
	}
	sorted := make([]string, 0, len(uniq))
	for c := range uniq {
		sorted = append(sorted, c)
	}
	sort.Strings(sorted)
	for i, c := range sorted {
		uniq[c] = i
	}
	return &ColorIndex{categories: sorted, index: uniq, palette: palette}
}

// Color returns the hex colour of a category. Unknown categories get the last palette entry.
func (ci *ColorIndex) Color(category string) string {
	if len(ci.palette) == 0 {
		return "#000000"
	}
	i, ok := ci.index[category]
	if !ok {
		return ci.palette[len(ci.palette)-1]
	}
	return ci.palette[i%len(ci.palette)]
}

// Categories returns the sorted categories.
func (ci *ColorIndex) Categories() []string {
	out := make([]string, len(ci.categories))
	copy(out, ci.categories)
	return out
}
