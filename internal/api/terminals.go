package api

import (
	"context"
	"fmt"
	"net/url"

	"ceybyte/terminal/internal/domain"
)

// InitializeTerminal registers this terminal with the backend on first run.
// The backend assigns or confirms the terminal ID returned here.
func (c *Client) InitializeTerminal(ctx context.Context, req domain.TerminalInitRequest) Result[domain.InitializeTerminalResponse] {
	return post[domain.InitializeTerminalResponse](ctx, c, "/api/terminals/initialize", req)
}

// DiscoverTerminals lists every terminal known to the backend, including
// last-seen and sync state for each.
func (c *Client) DiscoverTerminals(ctx context.Context) Result[domain.TerminalListResponse] {
	return get[domain.TerminalListResponse](ctx, c, "/api/terminals/discover", nil)
}

func (c *Client) GetTerminal(ctx context.Context, terminalID string) Result[domain.TerminalDetailResponse] {
	return get[domain.TerminalDetailResponse](ctx, c, "/api/terminals/"+url.PathEscape(terminalID), nil)
}

func (c *Client) UpdateTerminal(ctx context.Context, terminalID string, req domain.TerminalUpdateRequest) Result[domain.TerminalDetailResponse] {
	return put[domain.TerminalDetailResponse](ctx, c, "/api/terminals/"+url.PathEscape(terminalID), req)
}

func (c *Client) Heartbeat(ctx context.Context, req domain.HeartbeatRequest) Result[domain.MessageResponse] {
	return post[domain.MessageResponse](ctx, c, "/api/terminals/heartbeat", req)
}

// TestNetwork asks the backend to probe connectivity from its side, used when
// local probes and server state disagree.
func (c *Client) TestNetwork(ctx context.Context, req domain.NetworkTestRequest) Result[domain.NetworkTestResponse] {
	return post[domain.NetworkTestResponse](ctx, c, "/api/terminals/test-network", req)
}

func (c *Client) TriggerSync(ctx context.Context, req domain.SyncRequest) Result[domain.MessageResponse] {
	return post[domain.MessageResponse](ctx, c, "/api/terminals/sync", req)
}

func (c *Client) GetSyncStatus(ctx context.Context, terminalID string) Result[domain.SyncStatusResponse] {
	return get[domain.SyncStatusResponse](ctx, c, fmt.Sprintf("/api/terminals/%s/sync-status", url.PathEscape(terminalID)), nil)
}

// InitializeOfflineCache asks the backend to seed its server-side offline
// cache tables for this terminal.
func (c *Client) InitializeOfflineCache(ctx context.Context) Result[domain.MessageResponse] {
	return post[domain.MessageResponse](ctx, c, "/api/terminals/offline-cache/initialize", nil)
}

func (c *Client) OfflineData(ctx context.Context, tableName string) Result[domain.OfflineDataResponse] {
	return get[domain.OfflineDataResponse](ctx, c, "/api/terminals/offline-cache/"+url.PathEscape(tableName), nil)
}

func (c *Client) RemoveTerminal(ctx context.Context, terminalID string) Result[domain.MessageResponse] {
	return del[domain.MessageResponse](ctx, c, "/api/terminals/"+url.PathEscape(terminalID))
}
