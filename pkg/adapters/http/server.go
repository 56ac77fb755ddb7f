// Package http exposes the palintape engine as a JSON API: runs are
// created and persisted over REST, and step records stream to observers
// via Server-Sent Events.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/palintape"
	"github.com/aretw0/palintape/pkg/domain"
	"github.com/aretw0/palintape/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines the interface for the palintape machine core as consumed
// by this adapter.
type Engine interface {
	Execute(ctx context.Context, input string, onStep func(domain.StepRecord)) (*domain.RunResult, []domain.StepRecord, error)
	Rules() []domain.TableEntry
}

// Server wires the engine, a run store and the SSE stream manager behind
// a chi router.
type Server struct {
	Engine  Engine
	Store   ports.RunStore
	Streams *StreamManager
}

// Option configures the handler.
type Option func(*config)

type config struct {
	registry *prometheus.Registry
}

// WithMetricsRegistry mounts /metrics backed by reg.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, store ports.RunStore, opts ...Option) http.Handler {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	server := &Server{
		Engine:  engine,
		Store:   store,
		Streams: NewStreamManager(),
	}

	r := chi.NewRouter()
	r.Post("/runs", server.CreateRun)
	r.Get("/runs", server.ListRuns)
	r.Get("/runs/{id}", server.GetRun)
	r.Get("/runs/{id}/trace", server.GetRunTrace)
	r.Delete("/runs/{id}", server.DeleteRun)
	r.Get("/machine", server.GetMachine)
	r.Get("/events", server.SubscribeEvents)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)

	if cfg.registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.registry, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateRunRequest is the body of POST /runs.
type CreateRunRequest struct {
	// Input is the candidate string over {a, b}.
	Input string `json:"input"`

	// ID optionally names the run so an SSE observer can subscribe before
	// execution starts. Generated when empty.
	ID string `json:"id,omitempty"`

	// Trace controls whether the stored record keeps the full step trace.
	Trace bool `json:"trace,omitempty"`
}

// CreateRun handles POST /runs: validates, executes to completion,
// persists the record and broadcasts every step to SSE subscribers.
func (s *Server) CreateRun(w http.ResponseWriter, r *http.Request) {
	var body CreateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("CreateRun: Invalid request body", "err", err)
		return
	}

	id := body.ID
	if id == "" {
		id = uuid.NewString()
	}

	onStep := func(rec domain.StepRecord) {
		if data, err := json.Marshal(rec); err == nil {
			s.Streams.Broadcast(id, Event{Name: "step", Data: string(data)})
		}
	}

	result, trace, err := s.Engine.Execute(r.Context(), body.Input, onStep)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			slog.Warn("CreateRun: Input rejected", "err", err)
			return
		}
		http.Error(w, fmt.Sprintf("Execution error: %v", err), http.StatusInternalServerError)
		slog.Error("CreateRun: Execution failed", "err", err)
		return
	}

	record := &domain.RunRecord{
		ID:        id,
		Input:     result.Input,
		Output:    result.Output,
		Verdict:   result.Verdict,
		Steps:     result.Steps,
		CreatedAt: time.Now().UTC(),
	}
	if body.Trace {
		record.Trace = trace
	}

	if err := s.Store.Save(r.Context(), record); err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("CreateRun: Save failed", "err", err, "run_id", id)
		return
	}

	if data, err := json.Marshal(result); err == nil {
		s.Streams.Broadcast(id, Event{Name: "result", Data: string(data)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		slog.Error("CreateRun: response encode failed", "err", err)
	}
}

// ListRuns handles GET /runs.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("ListRuns failed", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"runs": ids})
}

func (s *Server) loadRun(w http.ResponseWriter, r *http.Request) *domain.RunRecord {
	id := chi.URLParam(r, "id")
	record, err := s.Store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			http.Error(w, "Run not found", http.StatusNotFound)
			return nil
		}
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("Load run failed", "err", err, "run_id", id)
		return nil
	}
	return record
}

// GetRun handles GET /runs/{id}.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	record := s.loadRun(w, r)
	if record == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// GetRunTrace handles GET /runs/{id}/trace.
func (s *Server) GetRunTrace(w http.ResponseWriter, r *http.Request) {
	record := s.loadRun(w, r)
	if record == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":    record.ID,
		"trace": record.Trace,
	})
}

// DeleteRun handles DELETE /runs/{id}.
func (s *Server) DeleteRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.Store.Delete(r.Context(), id); err != nil {
		http.Error(w, fmt.Sprintf("Store error: %v", err), http.StatusInternalServerError)
		slog.Error("DeleteRun failed", "err", err, "run_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMachine handles GET /machine: the transition table for introspection.
func (s *Server) GetMachine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"alphabet": []string{"a", "b"},
		"blank":    "B",
		"rules":    s.Engine.Rules(),
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"app":     "palintape-http",
		"version": strings.TrimSpace(palintape.Version),
	})
}

// SubscribeEvents handles GET /events?run_id= (SSE). Subscribers receive
// one "step" event per executed step of the named run, then a "result"
// event when it completes.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		slog.Error("SubscribeEvents: Streaming not supported")
		return
	}

	runID := r.URL.Query().Get("run_id")
	if runID == "" {
		http.Error(w, "run_id query parameter is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	slog.Info("SSE: Subscribing to run updates", "run_id", runID)

	ch, cancel := s.Streams.Subscribe(runID)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			slog.Info("SSE client disconnected", "run_id", runID)
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, ev.Data)
			flusher.Flush()
		}
	}
}
