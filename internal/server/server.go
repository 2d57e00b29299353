// Package server exposes maze generation over HTTP.
//
//	GET  /api/health       liveness
//	GET  /api/algorithms   algorithm names and whether they sample uniformly
//	GET  /api/topologies   topology names
//	GET  /api/maze         query parameters as in config.Apply
//	POST /api/maze         JSON config, optionally with a mask
//
// Maze responses are JSON (primitives and stats), SVG or plain text,
// picked by the format setting.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/distance"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/internal/config"
	"github.com/katalvlaran/lvlmaze/mask"
	"github.com/katalvlaran/lvlmaze/render"
)

// maxBody bounds POST bodies; a full 256×256 mask fits comfortably.
const maxBody = 1 << 20

// NewRouter returns the API handler. base supplies defaults for every
// setting a request leaves out. base.StepBudget caps every request; zero
// means config.ServeBudget.
func NewRouter(base config.Config, timeout time.Duration) http.Handler {
	if base.StepBudget == 0 {
		base.StepBudget = config.ServeBudget
	}
	h := &handler{base: base}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/algorithms", h.algorithms)
		r.Get("/topologies", h.topologies)
		r.Get("/maze", h.getMaze)
		r.Post("/maze", h.postMaze)
	})
	return r
}

// logRequests logs one line per request at verbosity 1.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		klog.V(1).Infof("[%s] %s %s -> %d (%d bytes) in %s",
			middleware.GetReqID(r.Context()), r.Method, r.URL.RequestURI(), ww.Status(), ww.BytesWritten(), time.Since(start))
	})
}

type handler struct {
	base config.Config
}

type algorithmInfo struct {
	Name    carve.Algorithm `json:"name"`
	Uniform bool            `json:"uniform"`
}

func (h *handler) algorithms(w http.ResponseWriter, r *http.Request) {
	var out []algorithmInfo
	for _, a := range carve.Algorithms() {
		out = append(out, algorithmInfo{Name: a, Uniform: a.Uniform()})
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *handler) topologies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, grid.Kinds())
}

func (h *handler) getMaze(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.FromQuery(r.URL.Query(), h.base)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	h.serveMaze(w, cfg, nil)
}

// mazeRequest is the POST body: any Config field plus an optional mask,
// either as a bitmap or as text with 'X' for excluded cells.
type mazeRequest struct {
	config.Config
	Mask     [][]bool `json:"mask,omitempty"`
	MaskText string   `json:"mask_text,omitempty"`
}

func (h *handler) postMaze(w http.ResponseWriter, r *http.Request) {
	req := mazeRequest{Config: h.base}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errors.Wrap(err, "decoding request"))
		return
	}
	if err := req.Config.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	bitmap := req.Mask
	if req.MaskText != "" {
		if bitmap != nil {
			respondError(w, http.StatusBadRequest, errors.New("mask and mask_text are exclusive"))
			return
		}
		m, err := mask.FromText(req.MaskText)
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		bitmap = m.Bitmap()
	}
	h.serveMaze(w, req.Config, bitmap)
}

// MazeResponse is the JSON maze encoding.
type MazeResponse struct {
	Config     config.Config      `json:"config"`
	Stats      carve.Stats        `json:"stats"`
	DeadEnds   int                `json:"dead_ends"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Primitives []render.Primitive `json:"primitives"`
}

func (h *handler) serveMaze(w http.ResponseWriter, cfg config.Config, bitmap [][]bool) {
	// Carving ignores the request context, so the budget is what bounds it.
	if cfg.StepBudget == 0 || cfg.StepBudget > h.base.StepBudget {
		cfg.StepBudget = h.base.StepBudget
	}
	m, err := cfg.Build(bitmap)
	if err != nil {
		respondError(w, statusOf(err), err)
		return
	}
	klog.V(1).Infof("maze %s %dx%d %s seed=%d: %+v", cfg.Topology, cfg.Rows, cfg.Cols, cfg.Algorithm, cfg.Seed, m.Stats())

	switch cfg.Format {
	case config.ASCII:
		txt, err := m.ASCII(cfg.Color)
		if err != nil {
			respondError(w, statusOf(err), err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(txt + "\n"))
		return
	}

	prims, err := m.Render(cfg.Color, cfg.RenderOptions()...)
	if err != nil {
		respondError(w, statusOf(err), err)
		return
	}
	if cfg.Format == config.SVG {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		if err := render.WriteSVG(w, prims, cfg.RenderOptions()...); err != nil {
			klog.Errorf("writing svg: %v", err)
		}
		return
	}
	width, height, err := render.Bounds(m.Grid(), cfg.RenderOptions()...)
	if err != nil {
		respondError(w, statusOf(err), err)
		return
	}
	respondJSON(w, http.StatusOK, MazeResponse{
		Config:     cfg,
		Stats:      m.Stats(),
		DeadEnds:   len(m.Grid().DeadEnds()),
		Width:      width,
		Height:     height,
		Primitives: prims,
	})
}

// statusOf maps library sentinels onto HTTP codes: malformed input is
// 400, well-formed requests the maze cannot satisfy are 422.
func statusOf(err error) int {
	for _, bad := range []error{
		config.ErrInvalid, grid.ErrInvalidTopology, grid.ErrInvalidDimensions,
		carve.ErrUnknownAlgorithm, carve.ErrOptionViolation, render.ErrOptionViolation,
		render.ErrUnsupportedTopology, mask.ErrDimensionMismatch, mask.ErrEmptyBitmap, mask.ErrBadGlyph,
	} {
		if errors.Is(err, bad) {
			return http.StatusBadRequest
		}
	}
	for _, unmet := range []error{
		carve.ErrEmptyGrid, carve.ErrDisconnected, carve.ErrStepBudget, distance.ErrUnreachableRoot,
	} {
		if errors.Is(err, unmet) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		klog.Errorf("encoding JSON: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
