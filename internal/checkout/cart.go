// Package checkout assembles a cart, validates payment, and submits the sale.
// Totals computed here are a display preview only; the backend's response is
// the authoritative record.
package checkout

import (
	"ceybyte/terminal/internal/domain"
)

// Line is one cart row. UnitPrice starts at the product's selling price and
// may be negotiated down where the product allows it.
type Line struct {
	Product        domain.ProductResponse
	Quantity       float64
	UnitPrice      float64
	DiscountAmount float64
	Notes          string
}

func (l Line) Total() float64 {
	total := l.Quantity*l.UnitPrice - l.DiscountAmount
	if total < 0 {
		return 0
	}
	return total
}

// Cart is a plain value; callers own any locking. Totals never mutates it,
// so recomputing after every scan is safe.
type Cart struct {
	Lines        []Line
	CustomerID   *int
	CustomerName string
	CustomerMode bool
	Notes        string
}

type Totals struct {
	Subtotal  float64
	Discount  float64
	Total     float64
	ItemCount int
}

func (c *Cart) Totals() Totals {
	var t Totals
	for _, line := range c.Lines {
		t.Subtotal += line.Quantity * line.UnitPrice
		t.Discount += line.DiscountAmount
		t.ItemCount++
	}
	t.Total = t.Subtotal - t.Discount
	if t.Total < 0 {
		t.Total = 0
	}
	return t
}

// AddProduct merges a scan into an existing line for the same product at the
// same price, otherwise appends a new line.
func (c *Cart) AddProduct(product domain.ProductResponse, quantity float64) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == product.ID && c.Lines[i].UnitPrice == product.SellingPrice {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, Line{
		Product:   product,
		Quantity:  quantity,
		UnitPrice: product.SellingPrice,
	})
}

func (c *Cart) RemoveLine(index int) {
	if index < 0 || index >= len(c.Lines) {
		return
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
}

func (c *Cart) Clear() {
	*c = Cart{}
}

// Payment is the tender entered at the end of checkout. A nil AmountTendered
// on a cash payment means exact tender.
type Payment struct {
	Method         string
	AmountTendered *float64
	Reference      string
	Notes          string
}

// Change returns the cash change due, zero for exact or non-cash tenders.
func (p Payment) Change(total float64) float64 {
	if p.Method != domain.PaymentMethodCash || p.AmountTendered == nil {
		return 0
	}
	change := *p.AmountTendered - total
	if change < 0 {
		return 0
	}
	return change
}

// Request converts the cart and payment into the backend's create payload.
func (c *Cart) Request(payment Payment) domain.SaleCreateRequest {
	items := make([]domain.SaleItemCreate, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, domain.SaleItemCreate{
			ProductID:      line.Product.ID,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			DiscountAmount: line.DiscountAmount,
			Notes:          line.Notes,
		})
	}
	return domain.SaleCreateRequest{
		CustomerID:       c.CustomerID,
		CustomerName:     c.CustomerName,
		Items:            items,
		PaymentMethod:    payment.Method,
		AmountTendered:   payment.AmountTendered,
		PaymentReference: payment.Reference,
		PaymentNotes:     payment.Notes,
		SaleNotes:        c.Notes,
		IsCustomerMode:   c.CustomerMode,
	}
}
