package stationicon

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

type drawCall struct {
	s    string
	x, y float64
	col  color.Color
}

// countingPainter records DrawString calls instead of rasterizing.
type countingPainter struct {
	col   color.Color
	calls []drawCall
}

func (p *countingPainter) SetColor(c color.Color) { p.col = c }

func (p *countingPainter) DrawString(s string, x, y float64) {
	p.calls = append(p.calls, drawCall{s: s, x: x, y: y, col: p.col})
}

func TestDrawOutlinedCounts(t *testing.T) {
	for thickness := 0; thickness <= 4; thickness++ {
		p := &countingPainter{}
		drawOutlined(p, "Central", 10, 20, gg.Black, gg.White, thickness)

		outline := (2*thickness + 1) * (2*thickness + 1)
		if thickness == 0 {
			outline = 0
		}
		if len(p.calls) != outline+1 {
			t.Fatalf("thickness %d: %d draws, want %d", thickness, len(p.calls), outline+1)
		}
		for i, c := range p.calls[:outline] {
			if c.col != gg.White {
				t.Errorf("thickness %d: draw %d color = %v, want outline", thickness, i, c.col)
			}
		}
		last := p.calls[len(p.calls)-1]
		if last.col != gg.Black || last.x != 10 || last.y != 20 {
			t.Errorf("thickness %d: last draw = %+v, want fill at (10, 20)", thickness, last)
		}
	}
}

func TestDrawOutlinedOffsets(t *testing.T) {
	p := &countingPainter{}
	drawOutlined(p, "旺角", 0, 0, gg.Black, gg.White, 1)

	seen := map[[2]float64]bool{}
	for _, c := range p.calls[:9] {
		seen[[2]float64{c.x, c.y}] = true
	}
	for j := -1; j <= 1; j++ {
		for k := -1; k <= 1; k++ {
			if !seen[[2]float64{float64(j), float64(k)}] {
				t.Errorf("missing outline draw at offset (%d, %d)", j, k)
			}
		}
	}
}

func TestDrawOutlinedEmpty(t *testing.T) {
	p := &countingPainter{}
	drawOutlined(p, "", 0, 0, gg.Black, gg.White, 3)
	if len(p.calls) != 0 {
		t.Errorf("empty string produced %d draws", len(p.calls))
	}
}
