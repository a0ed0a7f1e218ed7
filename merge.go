package stationicon

import (
	"image"

	"github.com/gogpu/gg"
)

// labelGap is the horizontal space between badge and labels in east and
// west placements.
const labelGap = 20

// mergeLayout is where each piece lands on the station canvas.
type mergeLayout struct {
	width, height int
	badge         image.Point
	native        image.Point
	latin         image.Point
}

// mergeSizes are the piece dimensions a layout is computed from.
type mergeSizes struct {
	badge, native, latin image.Point
}

// hRules gives the x of badge, native and latin for a canvas width.
var hRules = [...]func(w int, s mergeSizes) (int, int, int){
	hCenter: func(w int, s mergeSizes) (int, int, int) {
		return w/2 - s.badge.X/2, w/2 - s.native.X/2, w/2 - s.latin.X/2
	},
	hEast: func(_ int, s mergeSizes) (int, int, int) {
		return 0, s.badge.X + labelGap, s.badge.X + labelGap
	},
	hWest: func(w int, s mergeSizes) (int, int, int) {
		return w - s.badge.X, w - s.badge.X - labelGap - s.native.X, w - s.badge.X - labelGap - s.latin.X
	},
}

// vRules gives the y of badge, native and latin for a canvas height.
// The native label is always directly above the Latin one.
var vRules = [...]func(h int, s mergeSizes) (int, int, int){
	vSide: func(h int, s mergeSizes) (int, int, int) {
		return h/2 - s.badge.Y/2, 0, s.native.Y
	},
	vCenter: func(h int, s mergeSizes) (int, int, int) {
		top := h/2 - (s.native.Y+s.latin.Y)/2
		return h/2 - s.badge.Y/2, top, top + s.native.Y
	},
	vSouth: func(_ int, s mergeSizes) (int, int, int) {
		return 0, s.badge.Y, s.badge.Y + s.native.Y
	},
	vNorth: func(_ int, s mergeSizes) (int, int, int) {
		return s.native.Y + s.latin.Y, 0, s.native.Y
	},
}

// layoutMerge sizes the canvas and positions the pieces for placement p.
// p must be valid.
func layoutMerge(p Placement, s mergeSizes) mergeLayout {
	var l mergeLayout
	if p.Vertical() {
		l.height = s.badge.Y + s.native.Y + s.latin.Y
	} else {
		l.height = max(s.badge.Y, s.native.Y+s.latin.Y)
	}
	if p.Horizontal() {
		l.width = s.badge.X + max(s.native.X, s.latin.X) + labelGap
	} else {
		l.width = max(s.badge.X, s.native.X, s.latin.X)
	}

	info := placements[p]
	l.badge.X, l.native.X, l.latin.X = hRules[info.h](l.width, s)
	l.badge.Y, l.native.Y, l.latin.Y = vRules[info.v](l.height, s)
	return l
}

func imageSize(img image.Image) image.Point {
	return img.Bounds().Size()
}

// Merge composes the badge and its labels into one image according to p.
// Pieces are drawn badge first, then native, then Latin.
func Merge(badge image.Image, labels LabelPair, p Placement) (image.Image, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if badge == nil || labels.Native.Image == nil || labels.Latin.Image == nil {
		return nil, backendErr("merge", errMissingImage)
	}

	l := layoutMerge(p, mergeSizes{
		badge:  imageSize(badge),
		native: imageSize(labels.Native.Image),
		latin:  imageSize(labels.Latin.Image),
	})

	dc := gg.NewContext(l.width, l.height)
	defer func() { _ = dc.Close() }()

	paste(dc, badge, l.badge)
	paste(dc, labels.Native.Image, l.native)
	paste(dc, labels.Latin.Image, l.latin)
	return dc.Image(), nil
}

// paste draws img unscaled at pt with source-over blending.
func paste(dc *gg.Context, img image.Image, pt image.Point) {
	dc.DrawImage(gg.ImageBufFromImage(img), float64(pt.X), float64(pt.Y))
}
