package api

import (
	"context"
	"net/url"
	"strconv"

	"ceybyte/terminal/internal/domain"
)

func (c *Client) UPSStatus(ctx context.Context) Result[domain.UPSStatus] {
	return get[domain.UPSStatus](ctx, c, "/api/power/ups/status", nil)
}

func (c *Client) PowerEvents(ctx context.Context, limit int) Result[[]domain.PowerEvent] {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return get[[]domain.PowerEvent](ctx, c, "/api/power/events", query)
}
