// Package server exposes the solver over HTTP.
//
//	POST /v1/solve   {"distances": [[...]], "timeout_ms": 5000}
//	GET  /healthz
//	GET  /metrics    (when a metrics handler is configured)
//
// Error mapping: invalid input 400, oversized body 413, solver timeout 504,
// everything else 500. Every response body is JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/tspmtz/tsp"
)

const (
	// maxBodyBytes bounds a request body.
	maxBodyBytes = 1 << 20

	defaultMaxCities = 40
)

// Options configures a Server.
type Options struct {
	// Solver runs the solves; nil uses tsp.NewSolver(tsp.DefaultOptions()).
	Solver *tsp.Solver

	// Logger receives request logs; nil discards them.
	Logger *log.Logger

	// MaxCities rejects larger instances with 400; 0 means 40.
	MaxCities int

	// MaxTimeout caps the per-request timeout_ms; 0 means no cap.
	MaxTimeout time.Duration

	// Metrics, when set, is mounted at /metrics.
	Metrics http.Handler
}

// Server is the HTTP surface. It is safe for concurrent use.
type Server struct {
	solver     *tsp.Solver
	logger     *log.Logger
	maxCities  int
	maxTimeout time.Duration
	router     chi.Router
}

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	Distances [][]int64 `json:"distances"`
	TimeoutMS int64     `json:"timeout_ms,omitempty"`
}

// SolveResponse is the success body of POST /v1/solve.
type SolveResponse struct {
	RunID     string  `json:"run_id"`
	Tour      []int   `json:"tour"`
	Cost      int64   `json:"cost"`
	Optimal   bool    `json:"optimal"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Vars      int     `json:"vars"`
	Rows      int     `json:"constraints"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Outcome string `json:"outcome"`
}

// New builds the router.
func New(opts Options) *Server {
	s := &Server{
		solver:     opts.Solver,
		logger:     opts.Logger,
		maxCities:  opts.MaxCities,
		maxTimeout: opts.MaxTimeout,
	}
	if s.solver == nil {
		s.solver = tsp.NewSolver(tsp.DefaultOptions())
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.maxCities <= 0 {
		s.maxCities = defaultMaxCities
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/solve", s.handleSolve)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	s.router = r

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully within five seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, err, "invalid_input")
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err), "invalid_input")
		return
	}

	dist, err := tsp.NewInstance(req.Distances)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, tsp.Outcome(err))
		return
	}
	if dist.N() > s.maxCities {
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("%w: %d cities, limit %d", tsp.ErrInvalidInput, dist.N(), s.maxCities), "invalid_input")
		return
	}
	if req.TimeoutMS < 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: negative timeout_ms", tsp.ErrInvalidInput), "invalid_input")
		return
	}

	ctx := r.Context()
	if timeout := s.timeout(req.TimeoutMS); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := s.solver.Solve(ctx, dist)
	if err != nil {
		writeError(w, statusFor(err), err, tsp.Outcome(err))
		return
	}

	w.Header().Set("X-Run-ID", res.RunID)
	writeJSON(w, http.StatusOK, SolveResponse{
		RunID:     res.RunID,
		Tour:      res.Tour,
		Cost:      res.Cost,
		Optimal:   res.Optimal,
		ElapsedMS: float64(res.Stats.Elapsed.Microseconds()) / 1000,
		Vars:      res.Stats.Vars,
		Rows:      res.Stats.Constraints,
	})
}

// timeout returns the effective per-request budget.
func (s *Server) timeout(ms int64) time.Duration {
	d := time.Duration(ms) * time.Millisecond
	if s.maxTimeout > 0 && (d == 0 || d > s.maxTimeout) {
		d = s.maxTimeout
	}

	return d
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, tsp.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, tsp.ErrSolverTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error, outcome string) {
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Outcome: outcome})
}
