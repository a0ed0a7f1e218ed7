package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/metrodraw/stationicon"
)

// maxBodyBytes bounds a request descriptor.
const maxBodyBytes = 1 << 20

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Error string `json:"error"`
}

type iconHandler struct {
	r *stationicon.Renderer
}

// newRouter builds the HTTP API around r. Every request runs in a server
// span, so render spans started by r become its children.
func newRouter(r *stationicon.Renderer, origins []string, opts ...otelhttp.Option) http.Handler {
	h := &iconHandler{r: r}

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Badge-Centers"},
		MaxAge:         300,
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Route("/api", func(api chi.Router) {
		api.Post("/stations", h.station)
		api.Post("/interchanges", h.interchange)
	})
	return otelhttp.NewHandler(mux, "stationicon", opts...)
}

// station handles POST /api/stations. The response is the composed icon;
// the badge anchor points are in the X-Badge-Centers header as JSON.
func (h *iconHandler) station(w http.ResponseWriter, req *http.Request) {
	var s stationicon.Station
	if !decodeBody(w, req, &s) {
		return
	}
	img, shape, err := h.r.StationImage(req.Context(), s)
	if err != nil {
		writeError(w, req, err)
		return
	}
	centers, err := json.Marshal(shape.Centers)
	if err == nil {
		w.Header().Set("X-Badge-Centers", string(centers))
	}
	writePNG(w, req, img)
}

// interchange handles POST /api/interchanges.
func (h *iconHandler) interchange(w http.ResponseWriter, req *http.Request) {
	var c stationicon.Cluster
	if !decodeBody(w, req, &c) {
		return
	}
	img, err := h.r.ClusterImage(req.Context(), c)
	if err != nil {
		writeError(w, req, err)
		return
	}
	writePNG(w, req, img)
}

func decodeBody(w http.ResponseWriter, req *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func writePNG(w http.ResponseWriter, req *http.Request, img image.Image) {
	var buf bytes.Buffer
	if err := stationicon.EncodePNG(&buf, img); err != nil {
		writeError(w, req, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// statusFor maps render errors to HTTP status codes.
func statusFor(err error) int {
	var (
		geom      *stationicon.InvalidGeometryError
		placement *stationicon.InvalidPlacementError
		colorErr  *stationicon.InvalidColorError
		direction *stationicon.UnsupportedDirectionError
		limit     *stationicon.LimitExceededError
	)
	switch {
	case errors.As(err, &direction):
		return http.StatusUnprocessableEntity
	case errors.As(err, &geom), errors.As(err, &placement), errors.As(err, &colorErr), errors.As(err, &limit),
		errors.Is(err, stationicon.ErrEmptyCluster), errors.Is(err, stationicon.ErrNegativeThickness):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, req *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("render failed", "path", req.URL.Path, "request_id", middleware.GetReqID(req.Context()), "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// serve runs the HTTP API until ctx is canceled.
func serve(ctx context.Context, cfg config, r *stationicon.Renderer) error {
	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           newRouter(r, cfg.origins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
