package stationicon

import (
	"errors"

	"github.com/gogpu/gg/text"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/image/font/gofont/gobold"
)

// Renderer turns station and cluster descriptors into PNG images.
//
// A Renderer holds the two label fonts and the output directory. It is
// read-only after NewRenderer returns and safe for concurrent use.
type Renderer struct {
	native    *text.FontSource
	latin     *text.FontSource
	owned     []*text.FontSource
	resultDir string
	shapeOpts []ShapeOption

	tracer trace.Tracer
	inst   instruments
}

// NewRenderer creates a Renderer.
//
// Without font options the Latin font is Go Bold. The native-script font
// falls back to the Latin font, which renders CJK names as missing glyphs;
// a warning is logged in that case.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		resultDir: o.resultDir,
		shapeOpts: o.shape,
	}

	var err error
	r.latin, err = r.loadFont("latin", o.latin, o.latinFile, o.latinData)
	if err != nil {
		return nil, errors.Join(err, r.Close())
	}
	if r.latin == nil {
		r.latin, err = r.ownFont(text.NewFontSource(gobold.TTF))
		if err != nil {
			return nil, backendErr("load default latin font", err)
		}
	}

	r.native, err = r.loadFont("native", o.native, o.nativeFile, o.nativeData)
	if err != nil {
		return nil, errors.Join(err, r.Close())
	}
	if r.native == nil {
		Logger().Warn("no native-script font configured, using the latin font")
		r.native = r.latin
	}

	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	r.tracer = tp.Tracer(instrumentationName)

	mp := o.meterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	r.inst, err = newInstruments(mp.Meter(instrumentationName))
	if err != nil {
		return nil, errors.Join(backendErr("create instruments", err), r.Close())
	}

	return r, nil
}

// loadFont resolves one font from, in order, a loaded source, a file or
// raw bytes. It returns nil when none is given.
func (r *Renderer) loadFont(role string, src *text.FontSource, path string, data []byte) (*text.FontSource, error) {
	switch {
	case src != nil:
		return src, nil
	case path != "":
		s, err := r.ownFont(text.NewFontSourceFromFile(path))
		if err != nil {
			return nil, backendErr("load "+role+" font "+path, err)
		}
		return s, nil
	case len(data) > 0:
		s, err := r.ownFont(text.NewFontSource(data))
		if err != nil {
			return nil, backendErr("parse "+role+" font", err)
		}
		return s, nil
	}
	return nil, nil
}

// ownFont records a source the Renderer created so Close releases it.
func (r *Renderer) ownFont(src *text.FontSource, err error) (*text.FontSource, error) {
	if err != nil {
		return nil, err
	}
	r.owned = append(r.owned, src)
	return src, nil
}

// ResultDir returns the directory output files are written to.
func (r *Renderer) ResultDir() string {
	return r.resultDir
}

// Close releases the fonts the Renderer loaded itself. Sources passed in
// with WithNativeFont or WithLatinFont are left open.
func (r *Renderer) Close() error {
	var errs []error
	for _, src := range r.owned {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.owned = nil
	return errors.Join(errs...)
}
