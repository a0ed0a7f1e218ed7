package stationicon

import (
	"image/color"

	"github.com/gogpu/gg/text"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ShapeOption configures badge drawing in ComputeShape.
//
// Example:
//
//	shape, err := stationicon.ComputeShape(45, 3,
//	    stationicon.WithRingColor(gg.Hex("#003366")))
type ShapeOption func(*shapeOptions)

type shapeOptions struct {
	ring color.Color
	fill color.Color
}

func defaultShapeOptions() shapeOptions {
	return shapeOptions{ring: DefaultRingColor, fill: DefaultFillColor}
}

// WithRingColor sets the color of the outer ring layer (default black).
func WithRingColor(c color.Color) ShapeOption {
	return func(o *shapeOptions) {
		o.ring = c
	}
}

// WithFillColor sets the color of the inner fill layer (default white).
func WithFillColor(c color.Color) ShapeOption {
	return func(o *shapeOptions) {
		o.fill = c
	}
}

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r, err := stationicon.NewRenderer(
//	    stationicon.WithResultDir("out"),
//	    stationicon.WithNativeFontFile("font/SourceHanSerifTC-Bold.otf"),
//	    stationicon.WithLatinFontFile("font/FreeSansBold.ttf"),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	resultDir      string
	native         *text.FontSource
	latin          *text.FontSource
	nativeFile     string
	latinFile      string
	nativeData     []byte
	latinData      []byte
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	shape          []ShapeOption
}

// DefaultResultDir is where output PNGs are written unless overridden.
const DefaultResultDir = "result"

func defaultRendererOptions() rendererOptions {
	return rendererOptions{resultDir: DefaultResultDir}
}

// WithResultDir sets the directory that receives output PNGs.
func WithResultDir(dir string) RendererOption {
	return func(o *rendererOptions) {
		o.resultDir = dir
	}
}

// WithNativeFont uses an already loaded font source for native-script names.
// The caller keeps ownership of src.
func WithNativeFont(src *text.FontSource) RendererOption {
	return func(o *rendererOptions) {
		o.native = src
	}
}

// WithLatinFont uses an already loaded font source for Latin names.
// The caller keeps ownership of src.
func WithLatinFont(src *text.FontSource) RendererOption {
	return func(o *rendererOptions) {
		o.latin = src
	}
}

// WithNativeFontFile loads the native-script font from a TTF or OTF file.
func WithNativeFontFile(path string) RendererOption {
	return func(o *rendererOptions) {
		o.nativeFile = path
	}
}

// WithLatinFontFile loads the Latin font from a TTF or OTF file.
func WithLatinFontFile(path string) RendererOption {
	return func(o *rendererOptions) {
		o.latinFile = path
	}
}

// WithNativeFontData parses the native-script font from raw TTF/OTF bytes.
func WithNativeFontData(data []byte) RendererOption {
	return func(o *rendererOptions) {
		o.nativeData = data
	}
}

// WithLatinFontData parses the Latin font from raw TTF/OTF bytes.
func WithLatinFontData(data []byte) RendererOption {
	return func(o *rendererOptions) {
		o.latinData = data
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) RendererOption {
	return func(o *rendererOptions) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider.
// Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) RendererOption {
	return func(o *rendererOptions) {
		o.meterProvider = mp
	}
}

// WithBadgeOptions sets the shape options applied to every station badge.
func WithBadgeOptions(opts ...ShapeOption) RendererOption {
	return func(o *rendererOptions) {
		o.shape = append(o.shape, opts...)
	}
}
