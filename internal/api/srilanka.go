package api

import (
	"context"
	"net/url"
	"strconv"

	"ceybyte/terminal/internal/domain"
)

// UpcomingFestivals lists festivals and poya days within the next n days,
// used for dashboard notices and sales planning.
func (c *Client) UpcomingFestivals(ctx context.Context, days int) Result[[]domain.Festival] {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}
	return get[[]domain.Festival](ctx, c, "/api/sri-lankan/festivals", query)
}

func (c *Client) FestivalsToday(ctx context.Context) Result[[]domain.Festival] {
	return get[[]domain.Festival](ctx, c, "/api/sri-lankan/festivals/today", nil)
}

func (c *Client) CheckBusinessDay(ctx context.Context, date string) Result[domain.BusinessDayCheck] {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	return get[domain.BusinessDayCheck](ctx, c, "/api/sri-lankan/business-day-check", query)
}

func (c *Client) CalculateVAT(ctx context.Context, req domain.VATCalculationRequest) Result[domain.VATCalculationResponse] {
	return post[domain.VATCalculationResponse](ctx, c, "/api/sri-lankan/vat/calculate", req)
}

func (c *Client) MobilePaymentProviders(ctx context.Context) Result[[]domain.MobilePaymentProvider] {
	return get[[]domain.MobilePaymentProvider](ctx, c, "/api/sri-lankan/mobile-payments/providers", nil)
}
