package stationicon

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// newTestRenderer returns a Renderer with Go fonts writing into a
// temporary directory.
func newTestRenderer(t *testing.T, opts ...RendererOption) *Renderer {
	t.Helper()
	opts = append([]RendererOption{
		WithLatinFontData(gobold.TTF),
		WithNativeFontData(goregular.TTF),
		WithResultDir(t.TempDir()),
	}, opts...)
	r, err := NewRenderer(opts...)
	if err != nil {
		t.Fatalf("NewRenderer error = %v", err)
	}
	t.Cleanup(func() {
		if err := r.Close(); err != nil {
			t.Errorf("Close error = %v", err)
		}
	})
	return r
}

func TestNewRendererDefaults(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer error = %v", err)
	}
	defer r.Close()

	if r.ResultDir() != DefaultResultDir {
		t.Errorf("ResultDir = %q, want %q", r.ResultDir(), DefaultResultDir)
	}
	if r.latin == nil || r.native != r.latin {
		t.Error("native font should fall back to the latin font")
	}
	if len(r.owned) != 1 {
		t.Errorf("owned fonts = %d, want 1", len(r.owned))
	}
}

func TestNewRendererFontErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  RendererOption
	}{
		{"missing latin file", WithLatinFontFile("testdata/does-not-exist.ttf")},
		{"missing native file", WithNativeFontFile("testdata/does-not-exist.otf")},
		{"garbage latin data", WithLatinFontData([]byte("not a font"))},
		{"garbage native data", WithNativeFontData([]byte("not a font"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRenderer(tt.opt)
			if err == nil {
				r.Close()
				t.Fatal("NewRenderer succeeded, want error")
			}
			var be *RasterBackendError
			if !errors.As(err, &be) {
				t.Errorf("error = %v, want *RasterBackendError", err)
			}
		})
	}
}

func TestRendererCloseTwice(t *testing.T) {
	r, err := NewRenderer(WithLatinFontData(gobold.TTF))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("first Close error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}
}
