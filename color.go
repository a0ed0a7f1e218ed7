package stationicon

import (
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Default label and badge colors.
var (
	DefaultTextColor    = gg.Black
	DefaultOutlineColor = gg.White
	DefaultRingColor    = gg.Black
	DefaultFillColor    = gg.White
)

// ParseColor converts a color string to gg.RGBA.
// Supports "RGB", "RGBA", "RRGGBB" and "RRGGBBAA", each with an optional
// leading '#', and SVG color names such as "black" or "steelblue".
func ParseColor(s string) (gg.RGBA, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return gg.RGBA{}, &InvalidColorError{Value: s}
	}
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return gg.FromColor(c), nil
	}

	hex := strings.TrimPrefix(v, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, &InvalidColorError{Value: s}
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return gg.RGBA{}, &InvalidColorError{Value: s}
		}
	}
	return gg.Hex(hex), nil
}

// colorOr parses s, falling back to def when s is empty.
func colorOr(s string, def gg.RGBA) (gg.RGBA, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return ParseColor(s)
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
