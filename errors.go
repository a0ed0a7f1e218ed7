package stationicon

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrEmptyCluster is returned when a cluster has no entries.
	ErrEmptyCluster = errors.New("stationicon: cluster has no entries")

	// ErrInvalidKey is returned when a station key is empty or cannot be
	// used as a file name.
	ErrInvalidKey = errors.New("stationicon: station key is empty or not a plain file name")

	// ErrNegativeThickness is returned for a negative outline thickness.
	ErrNegativeThickness = errors.New("stationicon: outline thickness is negative")

	errMissingImage = errors.New("nil image")
)

// InvalidGeometryError reports a badge angle or line count outside the
// supported range.
type InvalidGeometryError struct {
	Angle     float64
	LineCount int
	Reason    string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("stationicon: invalid geometry (angle=%v, lines=%d): %s", e.Angle, e.LineCount, e.Reason)
}

// InvalidPlacementError reports a contradictory or unknown label placement.
type InvalidPlacementError struct {
	Placement string
}

func (e *InvalidPlacementError) Error() string {
	return fmt.Sprintf("stationicon: invalid placement %q", e.Placement)
}

// UnsupportedDirectionError is returned for cluster directions that are not
// rendered. Only N and S stacks are drawn.
type UnsupportedDirectionError struct {
	Direction string
}

func (e *UnsupportedDirectionError) Error() string {
	return fmt.Sprintf("stationicon: unsupported cluster direction %q", e.Direction)
}

// InvalidColorError reports a color string that is neither hex nor a known name.
type InvalidColorError struct {
	Value string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("stationicon: invalid color %q", e.Value)
}

// LimitExceededError reports a descriptor field above its upper bound.
type LimitExceededError struct {
	Field string
	Value int
	Max   int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("stationicon: %s %d exceeds the limit of %d", e.Field, e.Value, e.Max)
}

// RasterBackendError wraps a failure from the drawing, font or encoding
// collaborators.
type RasterBackendError struct {
	Op  string
	Err error
}

func (e *RasterBackendError) Error() string {
	return "stationicon: " + e.Op + ": " + e.Err.Error()
}

func (e *RasterBackendError) Unwrap() error { return e.Err }

func backendErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RasterBackendError{Op: op, Err: err}
}
