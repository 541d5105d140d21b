package api

import (
	"context"
	"fmt"
	"net/url"

	"ceybyte/terminal/internal/domain"
)

func (c *Client) ListSuppliers(ctx context.Context, search string, activeOnly bool) Result[[]domain.SupplierResponse] {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if activeOnly {
		query.Set("is_active", "true")
	}
	return get[[]domain.SupplierResponse](ctx, c, "/suppliers", query)
}

func (c *Client) GetSupplier(ctx context.Context, id int) Result[domain.SupplierResponse] {
	return get[domain.SupplierResponse](ctx, c, fmt.Sprintf("/suppliers/%d", id), nil)
}

func (c *Client) ListSupplierInvoices(ctx context.Context, supplierID int, status string) Result[[]domain.SupplierInvoice] {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	return get[[]domain.SupplierInvoice](ctx, c, fmt.Sprintf("/suppliers/%d/invoices", supplierID), query)
}

func (c *Client) ListSupplierPayments(ctx context.Context, supplierID int) Result[[]domain.SupplierPayment] {
	return get[[]domain.SupplierPayment](ctx, c, fmt.Sprintf("/suppliers/%d/payments", supplierID), nil)
}

func (c *Client) CreateSupplierPayment(ctx context.Context, req domain.SupplierPaymentCreateRequest) Result[domain.SupplierPayment] {
	return post[domain.SupplierPayment](ctx, c, fmt.Sprintf("/suppliers/%d/payments", req.SupplierID), req)
}

// SupplierVisitAlerts lists suppliers due for a visit today, shown on the
// dashboard.
func (c *Client) SupplierVisitAlerts(ctx context.Context) Result[[]domain.SupplierResponse] {
	return get[[]domain.SupplierResponse](ctx, c, "/suppliers/visit-alerts", nil)
}
