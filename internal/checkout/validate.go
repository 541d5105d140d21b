package checkout

import (
	"errors"
	"fmt"

	"ceybyte/terminal/internal/domain"
)

var (
	ErrEmptyCart          = errors.New("cart has no items")
	ErrInsufficientTender = errors.New("amount tendered is less than the total")
	ErrMissingReference   = errors.New("payment reference is required")
	ErrCreditNeedsAccount = errors.New("credit sales require a customer account")
)

// Validate checks the cart and payment before submission. Credit limits are
// not enforced here; CreditWarning surfaces them and the backend has the
// final say.
func (c *Cart) Validate(payment Payment) error {
	if len(c.Lines) == 0 {
		return ErrEmptyCart
	}
	for i, line := range c.Lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("line %d: quantity must be positive", i+1)
		}
		if line.UnitPrice < 0 {
			return fmt.Errorf("line %d: negative unit price", i+1)
		}
		if min := line.Product.MinSellingPrice; min != nil && line.UnitPrice < *min {
			return fmt.Errorf("line %d: price below minimum for %s", i+1, line.Product.NameEn)
		}
	}

	total := c.Totals().Total
	switch payment.Method {
	case domain.PaymentMethodCash:
		// Nil tendered is the exact-tender fast path: the cashier skipped the
		// amount field, so no change is due and nothing to check.
		if payment.AmountTendered != nil && *payment.AmountTendered < total {
			return ErrInsufficientTender
		}
	case domain.PaymentMethodCard, domain.PaymentMethodMobile:
		if payment.Reference == "" {
			return ErrMissingReference
		}
	case domain.PaymentMethodCredit:
		if c.CustomerID == nil {
			return ErrCreditNeedsAccount
		}
	default:
		return fmt.Errorf("unknown payment method %q", payment.Method)
	}
	return nil
}

// CreditWarning returns a human-readable notice when a credit sale would
// push the customer past their available credit. Empty means no concern.
func CreditWarning(credit domain.CustomerCreditInfo, saleTotal float64) string {
	if saleTotal <= credit.AvailableCredit {
		return ""
	}
	return fmt.Sprintf("sale of %.2f exceeds available credit %.2f", saleTotal, credit.AvailableCredit)
}
