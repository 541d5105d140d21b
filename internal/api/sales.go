package api

import (
	"context"
	"fmt"
	"net/url"

	"ceybyte/terminal/internal/domain"
)

// CreateSale submits an assembled cart. The response's totals and receipt
// number are authoritative; local cart math is only a preview.
func (c *Client) CreateSale(ctx context.Context, req domain.SaleCreateRequest) Result[domain.SaleResponse] {
	return post[domain.SaleResponse](ctx, c, "/sales", req)
}

func (c *Client) GetSale(ctx context.Context, id int) Result[domain.SaleResponse] {
	return get[domain.SaleResponse](ctx, c, fmt.Sprintf("/sales/%d", id), nil)
}

func (c *Client) GetSaleByReceipt(ctx context.Context, receiptNumber string) Result[domain.SaleResponse] {
	return get[domain.SaleResponse](ctx, c, "/sales/receipt/"+url.PathEscape(receiptNumber), nil)
}

// PrintReceipt asks the backend to spool the receipt to the terminal's
// printer. Callers treat failure as informational only.
func (c *Client) PrintReceipt(ctx context.Context, saleID int) Result[domain.MessageResponse] {
	return post[domain.MessageResponse](ctx, c, fmt.Sprintf("/sales/%d/print", saleID), nil)
}

func (c *Client) VoidSale(ctx context.Context, saleID int, reason string) Result[domain.MessageResponse] {
	body := map[string]string{"reason": reason}
	return post[domain.MessageResponse](ctx, c, fmt.Sprintf("/sales/%d/void", saleID), body)
}

func (c *Client) DailySalesSummary(ctx context.Context, date string) Result[domain.DailySalesSummary] {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	return get[domain.DailySalesSummary](ctx, c, "/sales/summary/daily", query)
}
