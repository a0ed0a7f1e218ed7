package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/metrodraw/stationicon"
)

// manifest is a batch of icons to render.
type manifest struct {
	Stations     []stationicon.Station `json:"stations"`
	Interchanges []stationicon.Cluster `json:"interchanges"`
}

func loadManifest(path string) (manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return manifest{}, err
	}
	defer f.Close()

	m, err := decodeManifest(f)
	if err != nil {
		return manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

func decodeManifest(r io.Reader) (manifest, error) {
	var m manifest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return manifest{}, err
	}
	return m, nil
}

// renderManifest renders every station and interchange in m. A failed item
// does not stop the batch; all failures are returned together. Horizontal
// interchanges are skipped with a warning.
func renderManifest(ctx context.Context, r *stationicon.Renderer, m manifest) error {
	var errs []error
	for _, s := range m.Stations {
		if _, err := r.GenerateStation(ctx, s); err != nil {
			slog.Error("station failed", "key", s.Key, "error", err)
			errs = append(errs, fmt.Errorf("station %q: %w", s.Key, err))
		}
	}
	for i, c := range m.Interchanges {
		err := r.GenerateCluster(ctx, c)
		var de *stationicon.UnsupportedDirectionError
		switch {
		case err == nil:
		case errors.As(err, &de):
			slog.Warn("interchange skipped", "index", i, "direction", de.Direction)
		default:
			slog.Error("interchange failed", "index", i, "error", err)
			errs = append(errs, fmt.Errorf("interchange %d: %w", i, err))
		}
	}

	slog.Info("manifest rendered",
		"stations", len(m.Stations), "interchanges", len(m.Interchanges),
		"failures", len(errs), "dir", r.ResultDir())
	return errors.Join(errs...)
}
