// The agent is the terminal-side companion process for the CeyByte POS
// backend. It keeps the connectivity monitor running, heartbeats this
// terminal into the backend registry, replays sales queued while offline,
// and serves the loopback status API the cashier display polls.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ceybyte/terminal/internal/api"
	"ceybyte/terminal/internal/cache"
	"ceybyte/terminal/internal/checkout"
	"ceybyte/terminal/internal/config"
	"ceybyte/terminal/internal/domain"
	"ceybyte/terminal/internal/logger"
	"ceybyte/terminal/internal/monitor"
	"ceybyte/terminal/internal/session"
	"ceybyte/terminal/internal/statusapi"
	"ceybyte/terminal/internal/xid"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()
	defer log.Sync()

	cfg := config.Load()

	sessions, err := session.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalw("failed to open session store", "dir", cfg.DataDir, "error", err)
	}

	var offline cache.OfflineCache
	if sqlite, err := cache.OpenSQLite(cfg.CachePath); err != nil {
		log.Warnw("sqlite cache unavailable, falling back to in-memory", "path", cfg.CachePath, "error", err)
		offline = cache.NewMemory()
	} else {
		offline = sqlite
		log.Infow("offline cache ready", "path", cfg.CachePath)
	}
	defer offline.Close()

	client := api.New(cfg.APIBaseURL, sessions, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	terminalID := ensureTerminalID(ctx, cfg, sessions, client, log)

	prober := &monitor.Prober{
		TerminalType: cfg.TerminalType,
		ProbeAddr:    cfg.ProbeAddr,
		MainHost:     cfg.MainHost,
		SharedPath:   cfg.SharedPath,
		DatabaseURL:  cfg.DatabaseURL,
		Log:          log,
	}
	mon := monitor.New(prober, client, monitor.Options{
		TerminalID:           terminalID,
		TerminalType:         cfg.TerminalType,
		AppVersion:           cfg.AppVersion,
		ConnectivityInterval: cfg.ConnectivityInterval,
		DiscoveryInterval:    cfg.DiscoveryInterval,
		HeartbeatInterval:    cfg.HeartbeatInterval,
		PendingCount: func(ctx context.Context) int {
			n, err := offline.PendingCount(ctx)
			if err != nil {
				log.Debugw("pending count failed", "error", err)
				return 0
			}
			return n
		},
	}, log)
	mon.Start(ctx)
	defer mon.Stop()

	submitter := checkout.NewSubmitter(client, offline, log)
	go flushLoop(ctx, mon, submitter, log)

	statusServer := statusapi.New(terminalID, mon, submitter, client, log)
	server := &http.Server{
		Addr:              cfg.StatusListen,
		Handler:           statusServer.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infow("status API listening", "addr", cfg.StatusListen, "terminal_id", terminalID)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("status API failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warnw("shutdown error", "error", err)
	}
	log.Infow("agent stopped")
}

// ensureTerminalID returns the registered terminal id, registering with the
// backend on first run. Registration failure is not fatal: the agent starts
// with the locally generated id and the monitor's heartbeat introduces it to
// the backend once connectivity is up.
func ensureTerminalID(ctx context.Context, cfg config.Config, sessions *session.Store, client *api.Client, log *zap.SugaredLogger) string {
	if stored, ok := sessions.TerminalConfig(); ok && stored.TerminalID != "" {
		return stored.TerminalID
	}

	terminalID := cfg.TerminalID
	if terminalID == "" {
		terminalID = xid.NewTerminalID()
	}

	hostname, _ := os.Hostname()
	result := client.InitializeTerminal(ctx, domain.TerminalInitRequest{
		TerminalID:     terminalID,
		TerminalName:   cfg.TerminalName,
		DisplayName:    cfg.DisplayName,
		TerminalType:   cfg.TerminalType,
		IsMainTerminal: cfg.TerminalType == domain.TerminalTypeMain,
		Hostname:       hostname,
		AppVersion:     cfg.AppVersion,
	})
	if result.Success && result.Data.TerminalID != "" {
		terminalID = result.Data.TerminalID
		log.Infow("terminal registered", "terminal_id", terminalID)
	} else {
		log.Warnw("terminal registration deferred", "terminal_id", terminalID, "error", result.Error)
	}

	if err := sessions.SetTerminalConfig(domain.TerminalConfig{
		TerminalID:     terminalID,
		TerminalName:   cfg.TerminalName,
		DisplayName:    cfg.DisplayName,
		TerminalType:   cfg.TerminalType,
		IsMainTerminal: cfg.TerminalType == domain.TerminalTypeMain,
		AppVersion:     cfg.AppVersion,
		NetworkPath:    cfg.SharedPath,
	}); err != nil {
		log.Warnw("failed to persist terminal config", "error", err)
	}
	return terminalID
}

// flushLoop retries the offline sale queue whenever the terminal is online.
func flushLoop(ctx context.Context, mon *monitor.Monitor, submitter *checkout.Submitter, log *zap.SugaredLogger) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !mon.Online() {
				continue
			}
			submitted, err := submitter.FlushPending(ctx)
			if err != nil {
				log.Warnw("offline queue flush failed", "error", err)
				continue
			}
			if submitted > 0 {
				log.Infow("offline queue flushed", "submitted", submitted)
			}
		}
	}
}
