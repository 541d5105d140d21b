package statusapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"ceybyte/terminal/internal/api"
	"ceybyte/terminal/internal/domain"
	"ceybyte/terminal/internal/monitor"
)

type stubChecker struct {
	conn domain.ConnectivityStatus
}

func (s stubChecker) Check(ctx context.Context) domain.ConnectivityStatus { return s.conn }

type stubBackend struct {
	syncErr    string
	syncStatus domain.SyncStatus
}

func (s *stubBackend) DiscoverTerminals(ctx context.Context) api.Result[domain.TerminalListResponse] {
	return api.Result[domain.TerminalListResponse]{Success: true}
}

func (s *stubBackend) Heartbeat(ctx context.Context, req domain.HeartbeatRequest) api.Result[domain.MessageResponse] {
	return api.Result[domain.MessageResponse]{Success: true}
}

func (s *stubBackend) TriggerSync(ctx context.Context, req domain.SyncRequest) api.Result[domain.MessageResponse] {
	if s.syncErr != "" {
		return api.Result[domain.MessageResponse]{Error: s.syncErr}
	}
	return api.Result[domain.MessageResponse]{Success: true, Data: domain.MessageResponse{Success: true, Message: "sync started"}}
}

func (s *stubBackend) GetSyncStatus(ctx context.Context, terminalID string) api.Result[domain.SyncStatusResponse] {
	return api.Result[domain.SyncStatusResponse]{Success: true, Data: domain.SyncStatusResponse{Success: true, SyncStatus: s.syncStatus}}
}

type stubFlusher struct {
	flushed int
}

func (s *stubFlusher) FlushPending(ctx context.Context) (int, error) { return s.flushed, nil }

func newTestServer(t *testing.T, conn domain.ConnectivityStatus, backend *stubBackend, flusher *stubFlusher) *Server {
	t.Helper()
	mon := monitor.New(stubChecker{conn: conn}, backend, monitor.Options{
		TerminalID:   "TERM-AB12CD34",
		TerminalType: domain.TerminalTypeClient,
	}, zap.NewNop().Sugar())
	mon.Start(context.Background())
	mon.Stop()
	return New("TERM-AB12CD34", mon, flusher, backend, zap.NewNop().Sugar())
}

func onlineConn() domain.ConnectivityStatus {
	return domain.ConnectivityStatus{
		NetworkAvailable:      true,
		MainComputerReachable: true,
		DatabaseAccessible:    true,
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, onlineConn(), &stubBackend{}, &stubFlusher{})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(t, onlineConn(), &stubBackend{}, &stubFlusher{})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload struct {
		TerminalID   string                    `json:"terminal_id"`
		Status       string                    `json:"status"`
		Connectivity domain.ConnectivityStatus `json:"connectivity"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.TerminalID != "TERM-AB12CD34" || payload.Status != "online" {
		t.Errorf("payload = %+v", payload)
	}
	if !payload.Connectivity.DatabaseAccessible {
		t.Error("connectivity missing from payload")
	}
}

func TestStatusEndpointOffline(t *testing.T) {
	srv := newTestServer(t, domain.ConnectivityStatus{}, &stubBackend{}, &stubFlusher{})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Status != "offline" {
		t.Errorf("status = %q, want offline", payload.Status)
	}
}

func TestSyncFlushesThenTriggers(t *testing.T) {
	flusher := &stubFlusher{flushed: 2}
	srv := newTestServer(t, onlineConn(), &stubBackend{}, flusher)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Success bool `json:"success"`
		Flushed int  `json:"flushed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if !payload.Success || payload.Flushed != 2 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestSyncBackendFailure(t *testing.T) {
	srv := newTestServer(t, onlineConn(), &stubBackend{syncErr: "sync unavailable"}, &stubFlusher{})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSyncStatusEndpoint(t *testing.T) {
	backend := &stubBackend{syncStatus: domain.SyncStatus{TerminalID: "TERM-AB12CD34", SyncStatus: domain.SyncStatePending, PendingSyncCount: 3, NeedsSync: true}}
	srv := newTestServer(t, onlineConn(), backend, &stubFlusher{})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sync-status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload domain.SyncStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.SyncStatus.PendingSyncCount != 3 || !payload.SyncStatus.NeedsSync {
		t.Errorf("payload = %+v", payload)
	}
}
