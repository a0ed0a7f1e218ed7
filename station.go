package stationicon

import (
	"context"
	"image"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// Station describes one station icon. Names may contain line breaks.
// Colors are hex strings or SVG color names; empty means the default
// (black text, white outline).
type Station struct {
	Key        string    `json:"key"`
	NativeName string    `json:"nativeName"`
	LatinName  string    `json:"latinName"`
	Placement  Placement `json:"placement"`
	Angle      float64   `json:"angle"`
	LineCount  int       `json:"lineCount"`
	Color      string    `json:"color,omitempty"`
	Outline    string    `json:"outline,omitempty"`
	Thickness  int       `json:"thickness,omitempty"`
}

// labelStyle validates the label fields of s and resolves its colors.
func (s Station) labelStyle() (LabelStyle, error) {
	if err := s.Placement.validate(); err != nil {
		return LabelStyle{}, err
	}
	if err := checkThickness(s.Thickness); err != nil {
		return LabelStyle{}, err
	}
	if err := checkNames(s.NativeName, s.LatinName); err != nil {
		return LabelStyle{}, err
	}
	fill, err := colorOr(s.Color, DefaultTextColor)
	if err != nil {
		return LabelStyle{}, err
	}
	outline, err := colorOr(s.Outline, DefaultOutlineColor)
	if err != nil {
		return LabelStyle{}, err
	}
	return LabelStyle{Color: fill, Outline: outline, Thickness: s.Thickness}, nil
}

// validKey reports whether key can name an output file.
func validKey(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, `/\`)
}

// StationImage renders s in memory. The returned Shape carries the badge
// and its line anchor points; the image is the composed icon.
func (r *Renderer) StationImage(ctx context.Context, s Station) (img image.Image, shape Shape, err error) {
	_, done := r.startRender(ctx, "station",
		attribute.String("stationicon.key", s.Key),
		attribute.Int("stationicon.lines", s.LineCount),
		attribute.String("stationicon.placement", s.Placement.String()))
	defer func() { done(err) }()

	style, err := s.labelStyle()
	if err != nil {
		return nil, Shape{}, err
	}
	if _, err := computeGeometry(s.Angle, s.LineCount); err != nil {
		return nil, Shape{}, err
	}

	shape, err = ComputeShape(s.Angle, s.LineCount, r.shapeOpts...)
	if err != nil {
		return nil, Shape{}, err
	}
	labels, err := r.RenderLabels(s.NativeName, s.LatinName, s.Placement, style)
	if err != nil {
		return nil, Shape{}, err
	}
	img, err = Merge(shape.Image, labels, s.Placement)
	if err != nil {
		return nil, Shape{}, err
	}
	return img, shape, nil
}

// GenerateStation renders s and writes it to the result directory as
// __station__<key>.png. It returns the badge shape so callers can anchor
// line segments on Shape.Centers.
func (r *Renderer) GenerateStation(ctx context.Context, s Station) (shape Shape, err error) {
	ctx, end := r.startSpan(ctx, "stationicon.generate.station",
		attribute.String("stationicon.key", s.Key))
	defer func() { end(err) }()

	if !validKey(s.Key) {
		return Shape{}, ErrInvalidKey
	}

	img, shape, err := r.StationImage(ctx, s)
	if err != nil {
		return Shape{}, err
	}
	path, err := writePNG(r.resultDir, StationFileName(s.Key), img)
	if err != nil {
		return Shape{}, err
	}

	Logger().Info("station icon written", "key", s.Key, "path", path)
	return shape, nil
}
