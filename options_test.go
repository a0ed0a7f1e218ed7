package stationicon

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

func TestShapeOptionsDefault(t *testing.T) {
	o := defaultShapeOptions()
	if o.ring != DefaultRingColor || o.fill != DefaultFillColor {
		t.Errorf("defaults = %v / %v", o.ring, o.fill)
	}

	WithRingColor(gg.Red)(&o)
	WithFillColor(gg.Blue)(&o)
	if o.ring != gg.Red || o.fill != gg.Blue {
		t.Errorf("after options = %v / %v", o.ring, o.fill)
	}
}

func TestRendererOptions(t *testing.T) {
	o := defaultRendererOptions()
	for _, opt := range []RendererOption{
		WithResultDir("icons"),
		WithNativeFontFile("native.otf"),
		WithLatinFontFile("latin.ttf"),
		WithBadgeOptions(WithRingColor(gg.Red)),
		WithBadgeOptions(WithFillColor(gg.Blue)),
	} {
		opt(&o)
	}
	if o.resultDir != "icons" || o.nativeFile != "native.otf" || o.latinFile != "latin.ttf" {
		t.Errorf("options = %+v", o)
	}
	if len(o.shape) != 2 {
		t.Errorf("badge options = %d, want 2 (accumulated)", len(o.shape))
	}
}

func TestWithFontSourceNotOwned(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	r, err := NewRenderer(WithNativeFont(src), WithLatinFont(src))
	if err != nil {
		t.Fatal(err)
	}
	if r.native != src || r.latin != src {
		t.Error("renderer did not use the given font source")
	}
	if len(r.owned) != 0 {
		t.Errorf("owned = %d, want 0", len(r.owned))
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close error = %v", err)
	}
}

func TestWithBadgeOptionsApplied(t *testing.T) {
	r := newTestRenderer(t, WithBadgeOptions(WithFillColor(gg.Blue)))
	_, shape, err := r.StationImage(t.Context(), Station{Key: "k", LineCount: 1})
	if err != nil {
		t.Fatal(err)
	}
	rr, _, b, a := shape.Image.At(102, 102).RGBA()
	if a == 0 || b < 0xf000 || rr > 0x0fff {
		t.Errorf("badge center r=%d b=%d a=%d, want blue", rr, b, a)
	}
}
