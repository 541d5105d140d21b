package api

import (
	"context"
	"net/url"
	"strconv"

	"ceybyte/terminal/internal/domain"
)

func pageQuery(page int, perPage int) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}
	return query
}

func (c *Client) ActiveSessions(ctx context.Context, page int, perPage int) Result[domain.SessionListResponse] {
	return get[domain.SessionListResponse](ctx, c, "/sessions/active", pageQuery(page, perPage))
}

func (c *Client) LoginHistory(ctx context.Context, page int, perPage int) Result[domain.LoginHistoryListResponse] {
	return get[domain.LoginHistoryListResponse](ctx, c, "/sessions/history", pageQuery(page, perPage))
}

// ForceLogout terminates sessions remotely; callers re-fetch the session list
// afterwards rather than mutating it locally.
func (c *Client) ForceLogout(ctx context.Context, req domain.ForceLogoutRequest) Result[domain.MessageResponse] {
	return post[domain.MessageResponse](ctx, c, "/sessions/force-logout", req)
}

func (c *Client) AuditLogs(ctx context.Context, eventType string, page int, perPage int) Result[domain.AuditLogListResponse] {
	query := pageQuery(page, perPage)
	if eventType != "" {
		query.Set("event_type", eventType)
	}
	return get[domain.AuditLogListResponse](ctx, c, "/sessions/audit-logs", query)
}
