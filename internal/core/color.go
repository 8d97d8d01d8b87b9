package core

import "strings"

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Colors available to games. The first block of six is the classic
// piece palette; the rest are used for chrome and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorCyan
	ColorYellow
	ColorOrange
	ColorGreen
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorGray
	ColorGold
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorCyan:    "cyan",
	ColorYellow:  "yellow",
	ColorOrange:  "orange",
	ColorGreen:   "green",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorWhite:   "white",
	ColorGray:    "gray",
	ColorGold:    "gold",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor looks up a color by name (case-insensitive).
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}
