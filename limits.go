package stationicon

import "unicode/utf8"

// Upper bounds on descriptor fields. Outline cost grows with the square of
// the thickness and canvas size with the line and entry counts.
const (
	MaxThickness      = 8
	MaxLineCount      = 16
	MaxClusterEntries = 32
	MaxNameRunes      = 128
)

// checkThickness validates an outline thickness.
func checkThickness(t int) error {
	if t < 0 {
		return ErrNegativeThickness
	}
	if t > MaxThickness {
		return &LimitExceededError{Field: "thickness", Value: t, Max: MaxThickness}
	}
	return nil
}

// checkNames validates the length of label names.
func checkNames(names ...string) error {
	for _, s := range names {
		if n := utf8.RuneCountInString(s); n > MaxNameRunes {
			return &LimitExceededError{Field: "name", Value: n, Max: MaxNameRunes}
		}
	}
	return nil
}
