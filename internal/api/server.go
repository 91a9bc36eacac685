// Package api exposes the search service over HTTP. It is a thin wrapper:
// parameter mapping, error envelopes, and CORS live here, nothing else.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/vo1x/gamesdexer-api/internal/config"
	"github.com/vo1x/gamesdexer-api/internal/search"
)

// Server serves the search endpoint.
type Server struct {
	svc            *search.Service
	defaultSources []string
	http           *http.Server
}

// errorResponse is the envelope for validation and unexpected failures.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewServer builds the router and wires the search service.
func NewServer(svc *search.Service, cfg config.Config) *Server {
	s := &Server{
		svc:            svc,
		defaultSources: cfg.Search.DefaultSources,
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))
	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/search", s.handleSearch)

	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start listens until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.http.Shutdown(shutdownCtx)
	}()

	zap.L().Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "api: server listen")
	}
	return nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "API is up and running"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSearch maps GET /search?q=<term>&repacks=<a,b,c> onto the service.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	ids := s.defaultSources
	if repacks := r.URL.Query().Get("repacks"); repacks != "" {
		ids = strings.Split(repacks, ",")
	}

	resp, err := s.svc.Search(r.Context(), term, ids)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrEmptyQuery):
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Search term is required"})
		case errors.Is(err, search.ErrNoValidSources):
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "No valid repack sources provided"})
		default:
			zap.L().Error("search request failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Message: "Internal server error",
				Error:   err.Error(),
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
