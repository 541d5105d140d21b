package monitor

import (
	"context"
	"errors"
	"net"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"ceybyte/terminal/internal/domain"
)

// Checker produces one connectivity measurement.
type Checker interface {
	Check(ctx context.Context) domain.ConnectivityStatus
}

// Prober probes real infrastructure: a TCP dial to a public address for
// general network access, a dial to the main computer, an os.Stat on the
// shared folder, and a pgx ping against the shared database.
type Prober struct {
	TerminalType string
	// ProbeAddr is a host:port expected to be reachable whenever the shop's
	// internet connection is up, e.g. a public DNS resolver.
	ProbeAddr string
	// MainHost is the main computer's host:port. Empty on the main terminal.
	MainHost string
	// SharedPath is the network share used for file-level sync, optional.
	SharedPath string
	// DatabaseURL is the shared POS database. Empty disables the DB probe.
	DatabaseURL string
	Timeout     time.Duration
	Log         *zap.SugaredLogger
}

func (p *Prober) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return 5 * time.Second
}

func (p *Prober) Check(ctx context.Context) domain.ConnectivityStatus {
	var conn domain.ConnectivityStatus

	start := time.Now()
	if err := p.dial(ctx, p.ProbeAddr); err != nil {
		conn.ErrorMessage = "network unavailable: " + err.Error()
		return conn
	}
	conn.NetworkAvailable = true
	latency := time.Since(start).Milliseconds()
	conn.LatencyMS = &latency

	// The main terminal is its own main computer and hosts the database, so
	// the remaining probes only make sense on client terminals.
	if p.TerminalType == domain.TerminalTypeMain {
		conn.MainComputerReachable = true
		conn.SharedFolderAccessible = true
		conn.DatabaseAccessible = true
		return conn
	}

	if err := p.dial(ctx, p.MainHost); err != nil {
		conn.ErrorMessage = "main computer unreachable: " + err.Error()
		return conn
	}
	conn.MainComputerReachable = true

	if p.SharedPath != "" {
		if _, err := os.Stat(p.SharedPath); err == nil {
			conn.SharedFolderAccessible = true
		} else {
			p.Log.Debugw("shared folder inaccessible", "path", p.SharedPath, "error", err)
		}
	}

	if p.DatabaseURL != "" {
		if err := p.pingDatabase(ctx); err != nil {
			conn.ErrorMessage = "database inaccessible: " + err.Error()
		} else {
			conn.DatabaseAccessible = true
		}
	}
	return conn
}

func (p *Prober) dial(ctx context.Context, addr string) error {
	if addr == "" {
		return errors.New("no address configured")
	}
	dialer := net.Dialer{Timeout: p.timeout()}
	c, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return c.Close()
}

func (p *Prober) pingDatabase(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout())
	defer cancel()

	db, err := pgx.Connect(ctx, p.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close(ctx)
	return db.Ping(ctx)
}
