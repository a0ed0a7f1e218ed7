package stationicon

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/metrodraw/stationicon/internal/eawidth"
)

// Base label font sizes in points, before dividing by the line count.
const (
	nativeLabelSize = 179
	latinLabelSize  = 81
	labelSizeScale  = 1.1
)

// LabelStyle is the coloring of a name label.
type LabelStyle struct {
	Color     color.Color // glyph fill
	Outline   color.Color // halo around the glyphs
	Thickness int         // halo radius in pixels
}

// TextBlock is one rendered name label.
type TextBlock struct {
	Image         image.Image
	Width, Height int

	// LineHeight is the per-line slot height.
	LineHeight int

	// AvgFullWidth is the mean glyph advance over the full-width lines,
	// 0 when no line is full-width.
	AvgFullWidth float64

	// FullWidth flags, per line, whether it has no narrow characters.
	FullWidth []bool
}

// LabelPair holds the native-script and Latin labels of a station.
type LabelPair struct {
	Native TextBlock
	Latin  TextBlock
}

// measurer is the part of text.Face used for layout.
type measurer interface {
	Advance(s string) float64
	Metrics() text.Metrics
}

// blockLayout is the measured arrangement of a label before drawing.
type blockLayout struct {
	lines        []string
	widths       []int
	fullWidth    []bool
	maxWidth     int
	lineHeight   int
	avgFullWidth float64
	width        int
	height       int
	xs, ys       []float64
}

// labelFaceSize scales a base size down so a block of n lines keeps
// roughly the height of a single line.
func labelFaceSize(base float64, lines int) float64 {
	return math.Floor(base * labelSizeScale / float64(lines))
}

// splitLines splits a name on line breaks.
func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// layoutBlock measures each line and computes its draw origin.
func layoutBlock(m measurer, lines []string, align textAlign, thickness int) blockLayout {
	b := blockLayout{
		lines:      lines,
		widths:     make([]int, len(lines)),
		fullWidth:  make([]bool, len(lines)),
		lineHeight: int(math.Ceil(m.Metrics().LineHeight())),
	}

	var avgSum float64
	var avgN int
	for i, line := range lines {
		w := int(math.Ceil(m.Advance(line)))
		b.widths[i] = w
		if w > b.maxWidth {
			b.maxWidth = w
		}
		if eawidth.FullWidth(line) {
			b.fullWidth[i] = true
			avgSum += float64(w) / float64(eawidth.RuneCount(line))
			avgN++
		}
	}
	if avgN > 0 {
		b.avgFullWidth = avgSum / float64(avgN)
	}

	b.width = b.maxWidth + 2*thickness
	b.height = b.lineHeight*len(lines) + 2*thickness

	// mid is the horizontal center of the block, including the margin.
	mid := math.Ceil(float64(b.maxWidth)/2) + float64(thickness)
	t := float64(thickness)

	b.xs = make([]float64, len(lines))
	b.ys = make([]float64, len(lines))
	for i, line := range lines {
		// Full-width lines are aligned on the averaged advance so all
		// native-script lines share one character grid.
		w := float64(b.widths[i])
		if b.fullWidth[i] {
			w = b.avgFullWidth * float64(eawidth.RuneCount(line))
		}
		switch align {
		case alignRight:
			b.xs[i] = 2*mid - t - w
		case alignLeft:
			b.xs[i] = t
		default:
			b.xs[i] = mid - w/2
		}
		// The averaged width can exceed maxWidth when advances vary.
		b.xs[i] = max(b.xs[i], t)
		b.ys[i] = float64(i*b.lineHeight) + t
	}
	return b
}

// renderBlock draws a laid-out label into its own transparent image.
func renderBlock(face text.Face, b blockLayout, style LabelStyle) TextBlock {
	dc := gg.NewContext(max(b.width, 1), max(b.height, 1))
	defer func() { _ = dc.Close() }()

	for i, line := range b.lines {
		drawLabelLine(dc, face, line, b.xs[i], b.ys[i], style.Color, style.Outline, style.Thickness)
	}

	return TextBlock{
		Image:        dc.Image(),
		Width:        max(b.width, 1),
		Height:       max(b.height, 1),
		LineHeight:   b.lineHeight,
		AvgFullWidth: b.avgFullWidth,
		FullWidth:    b.fullWidth,
	}
}

// RenderLabels renders the native-script and Latin names of a station.
// Each name may span several lines; the font shrinks with the line count.
// Lines are right-aligned for west placements, left-aligned for east
// placements and centered otherwise.
func (r *Renderer) RenderLabels(native, latin string, p Placement, style LabelStyle) (LabelPair, error) {
	if err := p.validate(); err != nil {
		return LabelPair{}, err
	}
	if err := checkThickness(style.Thickness); err != nil {
		return LabelPair{}, err
	}
	if err := checkNames(native, latin); err != nil {
		return LabelPair{}, err
	}
	if style.Color == nil {
		style.Color = DefaultTextColor
	}
	if style.Outline == nil {
		style.Outline = DefaultOutlineColor
	}

	align := placements[p].align
	render := func(src *text.FontSource, base float64, name string) TextBlock {
		lines := splitLines(name)
		face := src.Face(labelFaceSize(base, len(lines)))
		b := layoutBlock(face, lines, align, style.Thickness)
		Logger().Debug("label laid out",
			"lines", len(lines), "size", face.Size(),
			"width", b.width, "height", b.height)
		return renderBlock(face, b, style)
	}

	return LabelPair{
		Native: render(r.native, nativeLabelSize, native),
		Latin:  render(r.latin, latinLabelSize, latin),
	}, nil
}
