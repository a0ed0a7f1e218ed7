package stationicon

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Badge geometry constants, in pixels.
const (
	badgeSize   = 205   // canvas side of a single-line badge
	badgeOrigin = 102.5 // center of the first circle
	ringRadius  = 102.5 // outer layer, drawn in the ring color
	fillRadius  = 77.5  // inner layer, drawn in the fill color
	lineSpacing = 115.0 // distance between parallel line anchors
)

// Shape is a rendered station badge.
type Shape struct {
	// Image holds the badge on a transparent background.
	Image image.Image

	Width, Height int

	// Centers are the anchor points of the lines passing through the
	// station, one per line, spaced lineSpacing apart along the badge axis.
	Centers []Point
}

// shapeGeometry is the drawing plan for a badge.
type shapeGeometry struct {
	width, height int
	// from and to are the ends of the elongation segment. They coincide
	// for a single-line badge.
	from, to Point
	centers  []Point
}

// computeGeometry validates the inputs and lays out the badge.
func computeGeometry(angle float64, lineCount int) (shapeGeometry, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return shapeGeometry{}, &InvalidGeometryError{Angle: angle, LineCount: lineCount, Reason: "angle is not a finite number"}
	}
	if lineCount < 1 {
		return shapeGeometry{}, &InvalidGeometryError{Angle: angle, LineCount: lineCount, Reason: "line count must be at least 1"}
	}
	if angle < 0 || angle >= 180 {
		return shapeGeometry{}, &InvalidGeometryError{Angle: angle, LineCount: lineCount, Reason: "angle must be in [0, 180)"}
	}
	if lineCount > MaxLineCount {
		return shapeGeometry{}, &LimitExceededError{Field: "line count", Value: lineCount, Max: MaxLineCount}
	}

	rad := angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	// Rounded so cos(90°) and similar residues do not widen the canvas.
	dx := roundNano(lineSpacing * float64(lineCount-1) * cos)
	dy := roundNano(lineSpacing * float64(lineCount-1) * sin)

	// Past 90 degrees dx is negative; shift the segment right so the badge
	// still starts inside the canvas.
	var shift float64
	if angle > 90 {
		shift = dx
	}

	g := shapeGeometry{
		width:  badgeSize + int(math.Ceil(math.Abs(dx))),
		height: badgeSize + int(math.Ceil(math.Abs(dy))),
		from:   Pt(badgeOrigin-shift, badgeOrigin),
	}
	g.to = g.from.Add(Pt(dx, dy))

	step := Pt(lineSpacing*cos, lineSpacing*sin)
	centers := make([]Point, lineCount)
	for i := 0; i < lineCount; i++ {
		k := float64(i)
		centers[lineCount-1-i] = g.to.Sub(Pt(step.X*k, step.Y*k)).round5()
	}
	g.centers = centers
	return g, nil
}

// ComputeShape draws the badge for a station crossed by lineCount parallel
// lines at the given angle (degrees, [0, 180)).
//
// The badge is a capsule: two circles joined by a segment stroked as wide as
// their diameter. Two such layers, the ring and then the smaller fill, give
// the outline. The returned Centers run from the segment's start to its end.
func ComputeShape(angle float64, lineCount int, opts ...ShapeOption) (Shape, error) {
	g, err := computeGeometry(angle, lineCount)
	if err != nil {
		return Shape{}, err
	}

	o := defaultShapeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dc := gg.NewContext(g.width, g.height)
	defer func() { _ = dc.Close() }()

	layers := []struct {
		radius float64
		col    color.Color
	}{
		{ringRadius, o.ring},
		{fillRadius, o.fill},
	}
	for _, l := range layers {
		if err := drawCapsule(dc, g.from, g.to, l.radius, l.col); err != nil {
			return Shape{}, err
		}
	}

	Logger().Debug("badge computed",
		"angle", angle, "lines", lineCount,
		"width", g.width, "height", g.height)

	return Shape{
		Image:   dc.Image(),
		Width:   g.width,
		Height:  g.height,
		Centers: g.centers,
	}, nil
}

// drawCapsule fills a stadium of the given radius around segment from-to.
func drawCapsule(dc *gg.Context, from, to Point, radius float64, col color.Color) error {
	dc.SetColor(col)
	for _, c := range []Point{from, to} {
		dc.DrawCircle(c.X, c.Y, radius)
		if err := dc.Fill(); err != nil {
			return backendErr("fill badge circle", err)
		}
	}

	if from == to {
		return nil
	}
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineWidth(radius * 2)
	dc.MoveTo(from.X, from.Y)
	dc.LineTo(to.X, to.Y)
	return backendErr("stroke badge segment", dc.Stroke())
}
