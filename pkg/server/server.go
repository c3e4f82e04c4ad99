// Package server implements the gridplot HTTP render service.
//
// The service accepts TOML figure definitions, runs them through the
// figure pipeline and returns rendered artifacts. Solved documents can
// also be stored and re-rendered later under a stable figure ID.
//
// # Endpoints
//
//	GET  /healthz                   liveness probe
//	POST /render?format=svg         render a definition, returns the artifact
//	POST /figures                   solve and store a definition, returns the ID
//	GET  /figures                   list stored figures, newest first
//	GET  /figures/{id}              the stored layout document as JSON
//	GET  /figures/{id}/render       render a stored figure
//	DELETE /figures/{id}            remove a stored figure
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/gridplot/pkg/observability"
	"github.com/matzehuels/gridplot/pkg/pipeline"
	"github.com/matzehuels/gridplot/pkg/store"
)

// maxDefinitionBytes caps the accepted request body size. Figure
// definitions are small text files; anything larger is a mistake.
const maxDefinitionBytes = 4 << 20

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// Server routes render requests to the pipeline and the figure store.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a server. A nil store falls back to an in-memory store;
// a nil logger discards output.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Server{runner: runner, store: st, logger: logger}
}

// Handler builds the chi router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)

	r.Route("/figures", func(r chi.Router) {
		r.Post("/", s.handleCreateFigure)
		r.Get("/", s.handleListFigures)
		r.Get("/{id}", s.handleGetFigure)
		r.Get("/{id}/render", s.handleRenderFigure)
		r.Delete("/{id}", s.handleDeleteFigure)
	})

	return r
}

// observe reports request lifecycle events through the HTTP hooks and
// the server logger.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed.Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// handleRender runs the full pipeline on the request body and returns
// the artifact in the requested format.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	source, ok := s.readDefinition(w, r)
	if !ok {
		return
	}
	format, ok := s.requestFormat(w, r)
	if !ok {
		return
	}

	opts := pipeline.Options{
		Source:  source,
		Formats: []string{format},
		Logger:  s.logger,
	}
	if scale := r.URL.Query().Get("scale"); scale != "" {
		v, err := strconv.ParseFloat(scale, 64)
		if err != nil || v <= 0 {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid scale: %q", scale))
			return
		}
		opts.Scale = v
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Gridplot-Warnings", strconv.Itoa(len(result.Warnings)))
	_, _ = w.Write(result.Artifacts[format])
}

// figureResponse is the JSON body returned when a figure is stored.
type figureResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Warnings  []string  `json:"warnings,omitempty"`
}

// handleCreateFigure solves the definition and stores the resulting
// layout document under a fresh ID.
func (s *Server) handleCreateFigure(w http.ResponseWriter, r *http.Request) {
	source, ok := s.readDefinition(w, r)
	if !ok {
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Source:  source,
		Formats: []string{pipeline.FormatJSON},
		Logger:  s.logger,
	})
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	rec := &store.Record{
		ID:        uuid.NewString(),
		Name:      result.Figure.Name,
		CreatedAt: time.Now().UTC(),
		Figure:    result.Figure,
	}
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := figureResponse{ID: rec.ID, Name: rec.Name, CreatedAt: rec.CreatedAt}
	for _, warn := range result.Warnings {
		resp.Warnings = append(resp.Warnings, warn.Message)
	}
	s.writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListFigures(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit: %q", raw))
			return
		}
		limit = v
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	resp := make([]figureResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, figureResponse{ID: rec.ID, Name: rec.Name, CreatedAt: rec.CreatedAt})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetFigure(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookupFigure(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// handleRenderFigure renders a stored layout document without
// re-solving it.
func (s *Server) handleRenderFigure(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookupFigure(w, r)
	if !ok {
		return
	}
	format, ok := s.requestFormat(w, r)
	if !ok {
		return
	}

	artifacts, err := s.runner.Render(r.Context(), rec.Figure, pipeline.Options{
		Formats: []string{format},
		Logger:  s.logger,
	})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	_, _ = w.Write(artifacts[format])
}

func (s *Server) handleDeleteFigure(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookupFigure(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(r.Context(), rec.ID); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readDefinition reads and bounds the request body.
func (s *Server) readDefinition(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	source, err := io.ReadAll(io.LimitReader(r.Body, maxDefinitionBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return nil, false
	}
	if len(source) == 0 {
		s.writeError(w, http.StatusBadRequest, errors.New("empty figure definition"))
		return nil, false
	}
	return source, true
}

// requestFormat validates the format query parameter, defaulting to SVG.
func (s *Server) requestFormat(w http.ResponseWriter, r *http.Request) (string, bool) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return "", false
	}
	return format, true
}

func (s *Server) lookupFigure(w http.ResponseWriter, r *http.Request) (*store.Record, bool) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return rec, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("request failed", "status", status, "err", err)
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
