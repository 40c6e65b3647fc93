// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Palette maps colour names, as stored on nodes and edges, to hex colours.
type Palette map[string]string

// DefaultPalette covers the colour names the editor offers.
func DefaultPalette() Palette {
	return Palette{
		"black":   "#808080", // rendered grey
		"white":   "#ffffff",
		"red":     "#ff5f5f",
		"green":   "#5fd75f",
		"blue":    "#5f87ff",
		"yellow":  "#ffd75f",
		"orange":  "#ffaf5f",
		"purple":  "#af87ff",
		"cyan":    "#5fd7d7",
		"magenta": "#ff5fd7",
		"gray":    "#a8a8a8",
		"grey":    "#a8a8a8",

		HighlightColor: "#ffcc00",
	}
}

// HighlightColor is the style name used for highlighted edges.
const HighlightColor = "highlight"

// Resolve returns the lipgloss colour for name. Names are matched
// case-insensitively; "#rrggbb" values are accepted as-is.
func (p Palette) Resolve(name string) (color.Color, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, false
	}
	if hex, ok := p[key]; ok {
		return lipgloss.Color(hex), true
	}
	if strings.HasPrefix(key, "#") {
		return lipgloss.Color(key), true
	}

	return nil, false
}
