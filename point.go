package stationicon

import "math"

// Point is a position in badge image coordinates (origin top-left, y down).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

func roundNano(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// round5 rounds both coordinates to five decimal places.
func (p Point) round5() Point {
	return Point{X: math.Round(p.X*1e5) / 1e5, Y: math.Round(p.Y*1e5) / 1e5}
}
