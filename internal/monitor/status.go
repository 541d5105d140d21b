// Package monitor keeps a live picture of the terminal's connectivity: local
// network, reachability of the main computer, shared database access, and the
// set of sibling terminals the backend knows about. It polls on fixed
// intervals and exposes the latest snapshot for the status API and checkout.
package monitor

import "ceybyte/terminal/internal/domain"

// Status is the traffic-light state shown for a terminal.
type Status string

const (
	StatusOnline  Status = "online"
	StatusWarning Status = "warning"
	StatusOffline Status = "offline"
)

// Derive maps raw connectivity onto a Status for the given terminal type.
//
// No network always means offline. A main terminal with network is online:
// it hosts the database itself, so reachability of another machine is
// irrelevant. A client terminal is online only when the main computer is
// reachable and its database accepts connections; reachable-but-no-database
// degrades to warning.
func Derive(terminalType string, conn domain.ConnectivityStatus) Status {
	if !conn.NetworkAvailable {
		return StatusOffline
	}
	if terminalType == domain.TerminalTypeMain {
		return StatusOnline
	}
	switch {
	case conn.MainComputerReachable && conn.DatabaseAccessible:
		return StatusOnline
	case conn.MainComputerReachable:
		return StatusWarning
	default:
		return StatusOffline
	}
}
