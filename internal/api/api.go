// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api serves the recipe parser over HTTP.
//
//	POST /recipes/parse   plain-text document in, recipe JSON out
//	GET  /recipes         search stored recipes (?q=&author=&ingredient=&limit=)
//	GET  /recipes/{id}    one stored recipe
//	GET  /healthz         liveness
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/recipe-parser/internal/classify"
	"github.com/pdiddy/recipe-parser/internal/source"
	"github.com/pdiddy/recipe-parser/internal/store"
	"github.com/pdiddy/recipe-parser/pkg/types"
)

// DefaultMaxBodyBytes caps a posted document when none is configured.
const DefaultMaxBodyBytes = 1 << 20

// Recipes is the store the GET routes read from and ?store=1 writes to.
type Recipes interface {
	Get(ctx context.Context, id int) (*types.Recipe, error)
	Search(ctx context.Context, q store.Query) ([]*types.Recipe, error)
	Ingest(ctx context.Context, recipes []*types.Recipe, source string) (store.IngestSummary, error)
}

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	recipes      Recipes
	logger       *slog.Logger
	maxBodyBytes int64
	router       *chi.Mux
}

// NewServer builds the router. recipes may be nil, in which case only
// parsing is available and the store routes answer 503.
func NewServer(cfg types.ServeConfig, recipes Recipes, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	s := &Server{
		recipes:      recipes,
		logger:       logger,
		maxBodyBytes: maxBody,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/recipes", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Get("/", s.handleSearch)
		r.Get("/{id}", s.handleGet)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server started", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.logger.Info("stopping server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}
		return nil
	}
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParse classifies the posted document. With ?store=1 an accepted
// recipe is also ingested.
// POST /recipes/parse
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	lines, err := source.ReadLines(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "document too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	recipe, err := classify.Classify(lines)
	if err != nil {
		s.logger.Info("recipe rejected",
			"request_id", middleware.GetReqID(r.Context()),
			"kind", classify.Kind(err),
			"error", err)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: classify.Kind(err)})
		return
	}

	if persist, _ := strconv.ParseBool(r.URL.Query().Get("store")); persist {
		if s.recipes == nil {
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "no recipe store configured"})
			return
		}
		if _, err := s.recipes.Ingest(r.Context(), []*types.Recipe{recipe}, "api"); err != nil {
			s.logger.Error("store ingest failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "storing recipe failed"})
			return
		}
	}

	writeJSON(w, http.StatusOK, recipe)
}

// GET /recipes/{id}
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid recipe id"})
		return
	}

	recipe, err := s.recipes.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		s.logger.Error("looking up recipe", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "lookup failed"})
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

// GET /recipes?q=&author=&ingredient=&limit=
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	params := r.URL.Query()
	q := store.Query{
		Text:       params.Get("q"),
		Author:     params.Get("author"),
		Ingredient: params.Get("ingredient"),
	}
	if v := params.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
		q.Limit = limit
	}

	recipes, err := s.recipes.Search(r.Context(), q)
	if err != nil {
		s.logger.Error("searching recipes", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "search failed"})
		return
	}
	if recipes == nil {
		recipes = []*types.Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.recipes == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "no recipe store configured"})
		return false
	}
	return true
}

// logRequests records one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
