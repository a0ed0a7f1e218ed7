package stationicon

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type telemetryFixture struct {
	spans  *tracetest.SpanRecorder
	reader *sdkmetric.ManualReader
	r      *Renderer
}

func newTelemetryFixture(t *testing.T) telemetryFixture {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	return telemetryFixture{
		spans:  spans,
		reader: reader,
		r:      newTestRenderer(t, WithTracerProvider(tp), WithMeterProvider(mp)),
	}
}

// counters sums every int64 counter by name.
func (f telemetryFixture) counters(t *testing.T) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := f.reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}
	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					counts[m.Name] += dp.Value
				}
			}
		}
	}
	return counts
}

func TestGenerateTelemetry(t *testing.T) {
	f := newTelemetryFixture(t)
	ctx := context.Background()

	if _, err := f.r.GenerateStation(ctx, centralStation()); err != nil {
		t.Fatal(err)
	}
	bad := centralStation()
	bad.Angle = 200
	if _, err := f.r.GenerateStation(ctx, bad); err == nil {
		t.Fatal("GenerateStation with angle 200 succeeded")
	}

	ended := f.spans.Ended()
	wantNames := []string{
		"stationicon.render.station", "stationicon.generate.station",
		"stationicon.render.station", "stationicon.generate.station",
	}
	if len(ended) != len(wantNames) {
		t.Fatalf("ended spans = %d, want %d", len(ended), len(wantNames))
	}
	for i, s := range ended {
		if s.Name() != wantNames[i] {
			t.Errorf("span %d name = %q, want %q", i, s.Name(), wantNames[i])
		}
		failed := i >= 2
		if got := s.Status().Code == codes.Error; got != failed {
			t.Errorf("span %d error status = %v, want %v", i, got, failed)
		}
	}
	// The render span is a child of the generate span.
	if ended[0].Parent().SpanID() != ended[1].SpanContext().SpanID() {
		t.Error("render span is not a child of the generate span")
	}

	counts := f.counters(t)
	if counts["stationicon.images"] != 1 || counts["stationicon.failures"] != 1 {
		t.Errorf("counters = %v, want one image and one failure", counts)
	}
}

func TestImageTelemetry(t *testing.T) {
	f := newTelemetryFixture(t)
	ctx := context.Background()

	if _, _, err := f.r.StationImage(ctx, centralStation()); err != nil {
		t.Fatal(err)
	}
	if _, err := f.r.ClusterImage(ctx, sampleCluster(DirN)); err != nil {
		t.Fatal(err)
	}
	if _, err := f.r.ClusterImage(ctx, sampleCluster(DirE)); err == nil {
		t.Fatal("ClusterImage with direction E succeeded")
	}

	ended := f.spans.Ended()
	wantNames := []string{"stationicon.render.station", "stationicon.render.cluster", "stationicon.render.cluster"}
	if len(ended) != len(wantNames) {
		t.Fatalf("ended spans = %d, want %d", len(ended), len(wantNames))
	}
	for i, s := range ended {
		if s.Name() != wantNames[i] {
			t.Errorf("span %d name = %q, want %q", i, s.Name(), wantNames[i])
		}
	}
	if ended[2].Status().Code != codes.Error {
		t.Error("rejected cluster span should carry an error status")
	}

	counts := f.counters(t)
	if counts["stationicon.images"] != 2 || counts["stationicon.failures"] != 1 {
		t.Errorf("counters = %v, want two images and one failure", counts)
	}
}
