package stationicon

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// textPainter is the part of *gg.Context used to draw label text.
type textPainter interface {
	SetColor(c color.Color)
	DrawString(s string, x, y float64)
}

var _ textPainter = (*gg.Context)(nil)

// drawOutlined draws s at baseline origin (x, y) with a halo of the given
// thickness. gg has no text stroking, so the halo is the string drawn in the
// outline color at every offset in [-t, t]², (2t+1)² draws, followed by one
// fill-color draw. With thickness 0 only the fill draw runs.
func drawOutlined(p textPainter, s string, x, y float64, fill, outline color.Color, thickness int) {
	if s == "" {
		return
	}
	if thickness > 0 {
		p.SetColor(outline)
		for j := -thickness; j <= thickness; j++ {
			for k := -thickness; k <= thickness; k++ {
				p.DrawString(s, x+float64(j), y+float64(k))
			}
		}
	}
	p.SetColor(fill)
	p.DrawString(s, x, y)
}

// drawLabelLine draws one outlined line of text whose top edge is at top.
func drawLabelLine(dc *gg.Context, face text.Face, s string, x, top float64, fill, outline color.Color, thickness int) {
	dc.SetFont(face)
	drawOutlined(dc, s, x, top+face.Metrics().Ascent, fill, outline, thickness)
}
