package stationicon

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"go.opentelemetry.io/otel/attribute"
)

// Cluster layout constants, in pixels and points.
const (
	clusterLineWidth  = 41  // stroke width of each line stub
	clusterSlotHeight = 122 // vertical space per entry
	clusterNativeSize = 88
	clusterLatinSize  = 71
	clusterLabelGap   = 20 // between the stub edge and a label
	clusterNativePad  = 2  // extra gap left of the stubs for native names
	clusterNativeLift = 12 // native names sit this much above the slot center
)

// Direction is the stacking direction of an interchange cluster.
type Direction uint8

// Directions. Only DirN and DirS are rendered; both stack entries top to
// bottom in the given order.
const (
	DirN Direction = iota
	DirE
	DirW
	DirS
)

var directionNames = [...]string{DirN: "N", DirE: "E", DirW: "W", DirS: "S"}

// ParseDirection parses "N", "E", "W" or "S" (case-insensitive).
// An empty string is DirN.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "N":
		return DirN, nil
	case "E":
		return DirE, nil
	case "W":
		return DirW, nil
	case "S":
		return DirS, nil
	}
	return 0, &UnsupportedDirectionError{Direction: s}
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Direction(?)"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(directionNames) {
		return nil, &UnsupportedDirectionError{Direction: d.String()}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// InterchangeEntry is one line of an interchange cluster.
type InterchangeEntry struct {
	Key        string `json:"key"`
	NativeName string `json:"nativeName"`
	LatinName  string `json:"latinName"`
	LineColor  string `json:"lineColor"`
	TextColor  string `json:"textColor,omitempty"`
	Outline    string `json:"outline,omitempty"`
}

// Cluster is a stack of line stubs converging on one interchange.
type Cluster struct {
	Entries   []InterchangeEntry `json:"entries"`
	Direction Direction          `json:"direction"`
	Thickness int                `json:"thickness,omitempty"`
}

// entryColors are the resolved colors of one entry.
type entryColors struct {
	line, text, outline color.Color
}

// validate checks c and resolves every entry's colors before any drawing.
func (c Cluster) validate() ([]entryColors, error) {
	switch c.Direction {
	case DirN, DirS:
	default:
		return nil, &UnsupportedDirectionError{Direction: c.Direction.String()}
	}
	if len(c.Entries) == 0 {
		return nil, ErrEmptyCluster
	}
	if len(c.Entries) > MaxClusterEntries {
		return nil, &LimitExceededError{Field: "entries", Value: len(c.Entries), Max: MaxClusterEntries}
	}
	if err := checkThickness(c.Thickness); err != nil {
		return nil, err
	}

	cols := make([]entryColors, len(c.Entries))
	for i, e := range c.Entries {
		if err := checkNames(e.NativeName, e.LatinName); err != nil {
			return nil, err
		}
		line, err := ParseColor(e.LineColor)
		if err != nil {
			return nil, err
		}
		txt, err := colorOr(e.TextColor, DefaultTextColor)
		if err != nil {
			return nil, err
		}
		outline, err := colorOr(e.Outline, DefaultOutlineColor)
		if err != nil {
			return nil, err
		}
		cols[i] = entryColors{line: line, text: txt, outline: outline}
	}
	return cols, nil
}

// clusterCanvas returns the canvas size for n entries whose widest label
// measures maxWidth.
func clusterCanvas(n, maxWidth, thickness int) (w, h int) {
	return clusterLineWidth + 2*(maxWidth+thickness), clusterSlotHeight * n
}

// slotCenter is the vertical center of entry i.
func slotCenter(i int) float64 {
	return float64(clusterSlotHeight*i) + clusterSlotHeight/2.0
}

// clusterText is one measured cluster name. Names may span several lines,
// stacked top to bottom and left-aligned within the block.
type clusterText struct {
	lines      []string
	width      float64
	lineHeight float64
}

func measureClusterText(m measurer, s string) clusterText {
	t := clusterText{
		lines:      splitLines(s),
		lineHeight: math.Ceil(m.Metrics().LineHeight()),
	}
	for _, line := range t.lines {
		t.width = max(t.width, math.Ceil(m.Advance(line)))
	}
	return t
}

func (t clusterText) height() float64 {
	return t.lineHeight * float64(len(t.lines))
}

// draw draws the lines of t with the block's top-left corner at (x, top).
func (t clusterText) draw(dc *gg.Context, face text.Face, x, top float64, col entryColors, thickness int) {
	for j, line := range t.lines {
		drawLabelLine(dc, face, line, x, top+float64(j)*t.lineHeight, col.text, col.outline, thickness)
	}
}

// ClusterImage renders c in memory.
//
// Each entry i contributes a stub from the bottom edge up to the top of its
// slot, so later entries cover the lower part of earlier ones and every slot
// shows its own line color. Native names sit left of the stubs, Latin names
// right, both centered on the slot.
func (r *Renderer) ClusterImage(ctx context.Context, c Cluster) (img image.Image, err error) {
	_, done := r.startRender(ctx, "cluster",
		attribute.Int("stationicon.entries", len(c.Entries)),
		attribute.String("stationicon.direction", c.Direction.String()))
	defer func() { done(err) }()

	cols, err := c.validate()
	if err != nil {
		var de *UnsupportedDirectionError
		if errors.As(err, &de) {
			Logger().Warn("cluster direction not rendered", "direction", c.Direction.String())
		}
		return nil, err
	}

	// Widths are measured at 1.1x the drawing size, which leaves room
	// around the labels.
	nativeMeasure := r.native.Face(math.Floor(clusterNativeSize * labelSizeScale))
	latinMeasure := r.latin.Face(math.Floor(clusterLatinSize * labelSizeScale))
	var maxWidth int
	for _, e := range c.Entries {
		maxWidth = max(maxWidth,
			int(measureClusterText(nativeMeasure, e.NativeName).width),
			int(measureClusterText(latinMeasure, e.LatinName).width))
	}

	w, h := clusterCanvas(len(c.Entries), maxWidth, c.Thickness)
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()

	mid := float64(w) / 2
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineWidth(clusterLineWidth)
	for i := range c.Entries {
		dc.SetColor(cols[i].line)
		dc.MoveTo(mid, float64(h))
		dc.LineTo(mid, float64(clusterSlotHeight*i))
		if err := dc.Stroke(); err != nil {
			return nil, backendErr("stroke cluster line", err)
		}
	}

	nativeFace := r.native.Face(clusterNativeSize)
	latinFace := r.latin.Face(clusterLatinSize)
	half := clusterLineWidth / 2.0

	for i, e := range c.Entries {
		t := measureClusterText(nativeFace, e.NativeName)
		x := mid - half - t.width - clusterLabelGap - clusterNativePad
		top := slotCenter(i) - t.height()/2 - clusterNativeLift
		t.draw(dc, nativeFace, x, top, cols[i], c.Thickness)
	}
	for i, e := range c.Entries {
		t := measureClusterText(latinFace, e.LatinName)
		x := mid + half + clusterLabelGap
		top := slotCenter(i) - t.height()/2
		t.draw(dc, latinFace, x, top, cols[i], c.Thickness)
	}

	Logger().Debug("cluster laid out", "entries", len(c.Entries), "width", w, "height", h)
	return dc.Image(), nil
}

// GenerateCluster renders c and writes it to the result directory as
// __interchange.png, replacing any earlier cluster.
//
// Horizontal (E/W) clusters are not rendered: GenerateCluster returns an
// *UnsupportedDirectionError and writes nothing.
func (r *Renderer) GenerateCluster(ctx context.Context, c Cluster) (err error) {
	ctx, end := r.startSpan(ctx, "stationicon.generate.cluster")
	defer func() { end(err) }()

	img, err := r.ClusterImage(ctx, c)
	if err != nil {
		return err
	}
	path, err := writePNG(r.resultDir, ClusterFileName(), img)
	if err != nil {
		return err
	}

	Logger().Info("interchange cluster written", "entries", len(c.Entries), "path", path)
	return nil
}
