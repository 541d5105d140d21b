package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"ceybyte/terminal/internal/api"
	"ceybyte/terminal/internal/domain"
)

// TerminalAPI is the slice of the backend client the monitor needs.
type TerminalAPI interface {
	DiscoverTerminals(ctx context.Context) api.Result[domain.TerminalListResponse]
	Heartbeat(ctx context.Context, req domain.HeartbeatRequest) api.Result[domain.MessageResponse]
}

// Snapshot is the monitor's latest view. Values are copied out under the
// lock, so callers may hold a Snapshot indefinitely.
type Snapshot struct {
	Status       Status                    `json:"status"`
	Connectivity domain.ConnectivityStatus `json:"connectivity"`
	Terminals    []domain.Terminal         `json:"terminals"`
	CheckedAt    time.Time                 `json:"checked_at"`
	DiscoveredAt time.Time                 `json:"discovered_at,omitempty"`
}

type Options struct {
	TerminalID   string
	TerminalType string
	AppVersion   string

	ConnectivityInterval time.Duration
	DiscoveryInterval    time.Duration
	HeartbeatInterval    time.Duration

	// PendingCount reports sales queued locally, sent with each heartbeat.
	// Nil means zero.
	PendingCount func(ctx context.Context) int
}

// Monitor runs three independent loops: connectivity checks, terminal
// discovery, and heartbeats. All three stop when the context given to Start
// is cancelled or Stop is called; Stop blocks until they have exited.
type Monitor struct {
	checker Checker
	backend TerminalAPI
	opts    Options
	log     *zap.SugaredLogger

	mu   sync.RWMutex
	snap Snapshot

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(checker Checker, backend TerminalAPI, opts Options, log *zap.SugaredLogger) *Monitor {
	if opts.ConnectivityInterval <= 0 {
		opts.ConnectivityInterval = 30 * time.Second
	}
	if opts.DiscoveryInterval <= 0 {
		opts.DiscoveryInterval = 60 * time.Second
	}
	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = 30 * time.Second
	}
	return &Monitor{
		checker: checker,
		backend: backend,
		opts:    opts,
		log:     log,
		snap:    Snapshot{Status: StatusOffline},
	}
}

// Start begins polling. It runs one connectivity check synchronously so the
// first Snapshot already reflects reality, then returns.
func (m *Monitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	m.refreshConnectivity(ctx)

	m.wg.Add(3)
	go m.loop(ctx, m.opts.ConnectivityInterval, m.refreshConnectivity)
	go m.loop(ctx, m.opts.DiscoveryInterval, m.refreshTerminals)
	go m.loop(ctx, m.opts.HeartbeatInterval, m.sendHeartbeat)
}

// Stop cancels the loops and waits for them to finish. Safe to call more
// than once.
func (m *Monitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
}

func (m *Monitor) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := m.snap
	snap.Terminals = append([]domain.Terminal(nil), m.snap.Terminals...)
	return snap
}

// Online reports whether the last connectivity check allowed backend calls.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap.Status == StatusOnline
}

// networkUp reports whether the last check saw any network at all. Heartbeat
// and discovery run whenever the network is up, even in the warning state:
// the main computer hosts the backend, so a DB-degraded terminal can and
// should keep announcing itself and its pending-sync count.
func (m *Monitor) networkUp() (bool, Status) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap.Connectivity.NetworkAvailable, m.snap.Status
}

func (m *Monitor) loop(ctx context.Context, interval time.Duration, tick func(context.Context)) {
	defer m.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick(ctx)
		}
	}
}

func (m *Monitor) refreshConnectivity(ctx context.Context) {
	conn := m.checker.Check(ctx)
	status := Derive(m.opts.TerminalType, conn)

	m.mu.Lock()
	previous := m.snap.Status
	m.snap.Connectivity = conn
	m.snap.Status = status
	m.snap.CheckedAt = time.Now()
	m.mu.Unlock()

	if status != previous {
		m.log.Infow("terminal status changed", "from", previous, "to", status, "error", conn.ErrorMessage)
	}
}

func (m *Monitor) refreshTerminals(ctx context.Context) {
	if up, _ := m.networkUp(); !up {
		return
	}
	result := m.backend.DiscoverTerminals(ctx)
	if !result.Success {
		m.log.Debugw("terminal discovery failed", "error", result.Error)
		return
	}
	m.mu.Lock()
	m.snap.Terminals = result.Data.Terminals
	m.snap.DiscoveredAt = time.Now()
	m.mu.Unlock()
}

func (m *Monitor) sendHeartbeat(ctx context.Context) {
	up, status := m.networkUp()
	if !up {
		return
	}
	pending := 0
	if m.opts.PendingCount != nil {
		pending = m.opts.PendingCount(ctx)
	}
	req := domain.HeartbeatRequest{
		TerminalID:       m.opts.TerminalID,
		Status:           string(status),
		PendingSyncCount: pending,
		AppVersion:       m.opts.AppVersion,
	}
	if result := m.backend.Heartbeat(ctx, req); !result.Success {
		m.log.Debugw("heartbeat failed", "error", result.Error)
	}
}
