// Package domain holds the host commerce objects the gateway reads from.
// Orders and transactions are owned by the order-processing engine; the
// gateway never mutates them.
package domain

import "github.com/shopspring/decimal"

// Order is a read-only view of the host order the payment is taken against.
type Order struct {
	Number    string
	Email     string
	Currency  string
	ReturnURL string
	CancelURL string

	BillingAddress  *Address
	ShippingAddress *Address
	ShippingMethod  *ShippingMethod
	LineItems       []LineItem

	ItemSubtotal       decimal.Decimal
	TotalShippingCost  decimal.Decimal
	TotalTax           decimal.Decimal
	TotalDiscount      decimal.Decimal
	Total              decimal.Decimal
	OutstandingBalance decimal.Decimal
}

// HasOutstandingBalance reports whether any amount remains unpaid.
func (o *Order) HasOutstandingBalance() bool {
	return o.OutstandingBalance.IsPositive()
}

// ShippingMethod is the shipping option chosen on the order.
type ShippingMethod struct {
	Handle string
	Name   string
}

// LineItem is a single purchasable row on the order.
type LineItem struct {
	Description string
	SKU         string
	Price       decimal.Decimal
	SalePrice   decimal.Decimal
	OnSale      bool
	Qty         int
}

// EffectivePrice returns the sale price when the item is on sale, otherwise
// the list price.
func (li *LineItem) EffectivePrice() decimal.Decimal {
	if li.OnSale {
		return li.SalePrice
	}
	return li.Price
}
