package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"ceybyte/terminal/internal/domain"
)

func (c *Client) ListProducts(ctx context.Context, filter domain.ProductFilter) Result[[]domain.ProductResponse] {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.CategoryID != nil {
		query.Set("category_id", strconv.Itoa(*filter.CategoryID))
	}
	if filter.Barcode != "" {
		query.Set("barcode", filter.Barcode)
	}
	if filter.ActiveOnly {
		query.Set("is_active", "true")
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	return get[[]domain.ProductResponse](ctx, c, "/products", query)
}

func (c *Client) GetProduct(ctx context.Context, id int) Result[domain.ProductResponse] {
	return get[domain.ProductResponse](ctx, c, fmt.Sprintf("/products/%d", id), nil)
}

// GetProductByBarcode resolves a scanned barcode, the primary lookup during
// checkout.
func (c *Client) GetProductByBarcode(ctx context.Context, barcode string) Result[domain.ProductResponse] {
	return get[domain.ProductResponse](ctx, c, "/products/barcode/"+url.PathEscape(barcode), nil)
}
