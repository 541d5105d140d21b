// Package statusapi serves the terminal's loopback HTTP API: live status for
// the cashier display, the terminal list, pending-queue state, and a manual
// sync trigger. It binds to localhost only.
package statusapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ceybyte/terminal/internal/api"
	"ceybyte/terminal/internal/domain"
	"ceybyte/terminal/internal/monitor"
)

// Flusher replays the offline sale queue; wired to checkout.Submitter.
type Flusher interface {
	FlushPending(ctx context.Context) (int, error)
}

// SyncAPI triggers a backend sync for this terminal.
type SyncAPI interface {
	TriggerSync(ctx context.Context, req domain.SyncRequest) api.Result[domain.MessageResponse]
	GetSyncStatus(ctx context.Context, terminalID string) api.Result[domain.SyncStatusResponse]
}

type Server struct {
	terminalID string
	mon        *monitor.Monitor
	flusher    Flusher
	backend    SyncAPI
	log        *zap.SugaredLogger
}

func New(terminalID string, mon *monitor.Monitor, flusher Flusher, backend SyncAPI, log *zap.SugaredLogger) *Server {
	return &Server{terminalID: terminalID, mon: mon, flusher: flusher, backend: backend, log: log}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/status", s.handleStatus)
	r.Get("/terminals", s.handleTerminals)
	r.Get("/sync-status", s.handleSyncStatus)
	r.Post("/sync", s.handleSync)
	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.mon.Snapshot()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"terminal_id":  s.terminalID,
		"status":       snap.Status,
		"connectivity": snap.Connectivity,
		"checked_at":   snap.CheckedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleTerminals(w http.ResponseWriter, r *http.Request) {
	snap := s.mon.Snapshot()
	s.writeJSON(w, http.StatusOK, domain.TerminalListResponse{
		Success:   true,
		Terminals: snap.Terminals,
		Count:     len(snap.Terminals),
	})
}

func (s *Server) handleSyncStatus(w http.ResponseWriter, r *http.Request) {
	result := s.backend.GetSyncStatus(r.Context(), s.terminalID)
	if !result.Success {
		s.writeError(w, http.StatusBadGateway, result.Error)
		return
	}
	s.writeJSON(w, http.StatusOK, result.Data)
}

// handleSync flushes the local queue first, then asks the backend to sync so
// the replayed sales are included.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	flushed, err := s.flusher.FlushPending(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result := s.backend.TriggerSync(r.Context(), domain.SyncRequest{TerminalID: s.terminalID})
	if !result.Success {
		s.writeError(w, http.StatusBadGateway, result.Error)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"flushed": flushed,
		"message": result.Data.Message,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Debugw("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]any{"success": false, "error": message})
}
