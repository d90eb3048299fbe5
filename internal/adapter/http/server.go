package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ag21o9/fire-risk-scoring-service/internal/domain"
	"github.com/ag21o9/fire-risk-scoring-service/internal/scoring"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// RequestScorer runs the scoring pipeline for one parsed request.
type RequestScorer interface {
	Score(ctx context.Context, req scoring.Request) (scoring.Result, error)
}

// Server exposes the prediction endpoint plus health, readiness, and metrics.
type Server struct {
	httpServer *http.Server
	scorer     RequestScorer
	logger     *slog.Logger
}

// NewServer creates an HTTP server with POST /predict and GET /healthz,
// /readyz, /metrics routes.
func NewServer(addr string, scorer RequestScorer, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		scorer: scorer,
		logger: logger,
	}

	mux.HandleFunc("POST /predict", s.handlePredict)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	// UseNumber keeps numeric fields as json.Number so integer precision and
	// the string/number distinction survive into coercion.
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body: " + err.Error()})
		return
	}

	req, err := scoring.ParseRequest(fields)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.scorer.Score(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// writeError converts the scoring error taxonomy into a structured failure
// response. Input errors are the caller's fault (400); model inference
// failures point at the upstream artifact (502). Nothing here is fatal to
// the process.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	var (
		malformedErr *domain.MalformedInputError
		unknownErr   *domain.UnknownCategoryError
		missingErr   *domain.MissingMeteorologyError
		modelErr     *domain.ModelInferenceError
	)
	switch {
	case errors.As(err, &malformedErr), errors.As(err, &unknownErr), errors.As(err, &missingErr):
		status = http.StatusBadRequest
	case errors.As(err, &modelErr):
		status = http.StatusBadGateway
	}

	if status >= 500 {
		s.logger.Error("predict failed", "error", err, "path", r.URL.Path)
	} else {
		s.logger.Debug("predict rejected", "error", err, "path", r.URL.Path)
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
