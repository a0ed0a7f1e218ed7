package stationicon

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metrodraw/stationicon"

// instruments are the renderer's OpenTelemetry metrics.
type instruments struct {
	// images counts successfully rendered images by kind.
	images metric.Int64Counter
	// failures counts failed renders by kind.
	failures metric.Int64Counter
	// duration measures render time in seconds by kind.
	duration metric.Float64Histogram
}

func newInstruments(m metric.Meter) (instruments, error) {
	var inst instruments
	var err error

	inst.images, err = m.Int64Counter("stationicon.images",
		metric.WithDescription("Number of images rendered"),
		metric.WithUnit("{image}"))
	if err != nil {
		return inst, err
	}

	inst.failures, err = m.Int64Counter("stationicon.failures",
		metric.WithDescription("Number of renders that returned an error"),
		metric.WithUnit("{error}"))
	if err != nil {
		return inst, err
	}

	inst.duration, err = m.Float64Histogram("stationicon.render.duration",
		metric.WithDescription("Time spent rendering one image"),
		metric.WithUnit("s"))
	return inst, err
}

// startSpan opens a span. The returned function records err on it and ends it.
func (r *Renderer) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := r.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// startRender opens the span for one in-memory render of the given kind.
// The returned function ends the span and records metrics for the outcome.
func (r *Renderer) startRender(ctx context.Context, kind string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	attrs = append(attrs, attribute.String("stationicon.kind", kind))
	ctx, end := r.startSpan(ctx, "stationicon.render."+kind, attrs...)

	return ctx, func(err error) {
		kindAttr := metric.WithAttributes(attribute.String("kind", kind))
		r.inst.duration.Record(ctx, time.Since(start).Seconds(), kindAttr)
		if err != nil {
			r.inst.failures.Add(ctx, 1, kindAttr)
		} else {
			r.inst.images.Add(ctx, 1, kindAttr)
		}
		end(err)
	}
}
