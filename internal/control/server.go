// Package control exposes the running drill over HTTP so test harnesses
// can read the state, inject problems and answer without a keyboard.
package control

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/count/internal/drill"
)

const (
	maxBodyBytes    = 1 << 16
	dispatchTimeout = 5 * time.Second
)

// Bridge reads and drives the drill owned by the UI.
type Bridge interface {
	// State returns the latest snapshot without waiting on the UI.
	State() drill.Snapshot

	// Dispatch applies ev and returns the snapshot that follows it.
	Dispatch(ctx context.Context, ev drill.Event) (drill.Snapshot, error)
}

// Server serves the control API.
type Server struct {
	bridge  Bridge
	logger  *slog.Logger
	origins []string
}

// NewServer creates a Server. origins are the allowed CORS origins.
func NewServer(bridge Bridge, logger *slog.Logger, origins []string) *Server {
	return &Server{bridge: bridge, logger: logger, origins: origins}
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))
	r.Use(requestLogger(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/state", s.handleState)
	r.Post("/next-question", s.handleNextQuestion)
	r.Post("/answer", s.handleAnswer)
	r.Post("/language", s.handleLanguage)

	return r
}

// Start listens on addr and serves in the background. The returned
// server is shut down by the caller.
func (s *Server) Start(addr string) (*http.Server, net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("control server failed", "error", err)
		}
	}()

	s.logger.Info("control server listening", "addr", ln.Addr().String())
	return srv, ln.Addr(), nil
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, s.bridge.State())
}

func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		Error(w, http.StatusBadRequest, "failed to read body")
		return
	}

	p, err := drill.ParseFixture(raw)
	if errors.Is(err, drill.ErrInvalidArgument) {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("parse fixture", "error", err)
		Error(w, http.StatusInternalServerError, "failed to parse fixture")
		return
	}

	s.dispatch(w, r, drill.Install{Problem: p})
}

type answerRequest struct {
	Answer any `json:"answer"`
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	candidate, ok := integerAnswer(req.Answer)
	if !ok {
		// Wrong, and there is no button to disable.
		JSON(w, http.StatusOK, s.bridge.State())
		return
	}

	s.dispatch(w, r, drill.Submit{Candidate: candidate})
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, drill.ToggleLanguage{})
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ev drill.Event) {
	ctx, cancel := context.WithTimeout(r.Context(), dispatchTimeout)
	defer cancel()

	snap, err := s.bridge.Dispatch(ctx, ev)
	if err != nil {
		s.logger.Warn("dispatch failed", "event", fmt.Sprintf("%T", ev), "error", err)
		Error(w, http.StatusServiceUnavailable, "drill is not responding")
		return
	}
	JSON(w, http.StatusOK, snap)
}

// integerAnswer accepts JSON numbers with no fractional part and strings
// holding a decimal integer. Anything else counts as wrong and is never
// recorded among the rejected answers.
func integerAnswer(v any) (int, bool) {
	switch v := v.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}
