package api

import (
	"context"
	"fmt"
	"net/url"

	"ceybyte/terminal/internal/domain"
)

func (c *Client) ListCustomers(ctx context.Context, search string, activeOnly bool) Result[[]domain.CustomerResponse] {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if activeOnly {
		query.Set("is_active", "true")
	}
	return get[[]domain.CustomerResponse](ctx, c, "/customers", query)
}

func (c *Client) GetCustomer(ctx context.Context, id int) Result[domain.CustomerResponse] {
	return get[domain.CustomerResponse](ctx, c, fmt.Sprintf("/customers/%d", id), nil)
}

func (c *Client) CreateCustomer(ctx context.Context, req domain.CustomerCreateRequest) Result[domain.CustomerResponse] {
	return post[domain.CustomerResponse](ctx, c, "/customers", req)
}

// GetCustomerCredit fetches the credit snapshot used for the pre-sale
// available-credit warning. Enforcement stays server-side.
func (c *Client) GetCustomerCredit(ctx context.Context, id int) Result[domain.CustomerCreditInfo] {
	return get[domain.CustomerCreditInfo](ctx, c, fmt.Sprintf("/customers/%d/credit", id), nil)
}

func (c *Client) CheckCustomerCredit(ctx context.Context, id int, amount float64) Result[domain.CreditCheckResponse] {
	body := map[string]float64{"amount": amount}
	return post[domain.CreditCheckResponse](ctx, c, fmt.Sprintf("/customers/%d/credit/check", id), body)
}

func (c *Client) ListOverdueCustomers(ctx context.Context) Result[[]domain.CustomerResponse] {
	return get[[]domain.CustomerResponse](ctx, c, "/customers/overdue", nil)
}
