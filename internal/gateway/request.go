package gateway

import (
	"regexp"

	"github.com/craftcms/commerce-paypal-checkout/internal/config"
	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/paypal"
)

// Provider-documented field limits.
// https://developer.paypal.com/docs/api/orders/v2/
const (
	maxDescriptionLen    = 127
	maxInvoiceIDLen      = 127
	maxCustomIDLen       = 127
	maxSoftDescriptorLen = 22
	maxItemNameLen       = 127
	maxItemSKULen        = 127
	maxEmailLen          = 254
	maxNamePartLen       = 140
	maxFullNameLen       = 300
	maxAddressLineLen    = 300
	maxCityLen           = 120
	maxRegionLen         = 300
	maxPostalCodeLen     = 60
)

// paymentTypes maps the configured payment type to the provider intent.
var paymentTypes = map[string]string{
	config.PaymentTypeAuthorize: "AUTHORIZE",
	config.PaymentTypePurchase:  "CAPTURE",
}

var softDescriptorStrip = regexp.MustCompile(`[^a-zA-Z0-9*.\-\s]`)

// buildCreateOrderRequest assembles the full orders-create body from the host
// order and transaction.
func (g *Gateway) buildCreateOrderRequest(order *domain.Order, transaction *domain.Transaction) *paypal.CreateOrderRequest {
	purchaseUnit := g.buildPurchaseUnit(order, transaction)

	shippingPreference := "NO_SHIPPING"
	if purchaseUnit.Shipping != nil && purchaseUnit.Shipping.Address != nil {
		shippingPreference = "SET_PROVIDED_ADDRESS"
	}

	return &paypal.CreateOrderRequest{
		Intent:        g.intent(),
		Payer:         g.buildPayer(order),
		PurchaseUnits: []paypal.PurchaseUnit{purchaseUnit},
		ApplicationContext: paypal.ApplicationContext{
			BrandName:          g.settings.BrandName,
			Locale:             g.settings.Locale,
			LandingPage:        g.settings.ResolvedLandingPage(),
			ShippingPreference: shippingPreference,
			UserAction:         "PAY_NOW",
			ReturnURL:          order.ReturnURL,
			CancelURL:          order.CancelURL,
		},
	}
}

// intent returns the provider intent for the configured payment type,
// falling back to CAPTURE for unrecognized values.
func (g *Gateway) intent() string {
	if intent, ok := paymentTypes[config.ParseEnv(g.settings.PaymentType)]; ok {
		return intent
	}
	return "CAPTURE"
}

// buildPurchaseUnit builds the single purchase unit every order carries.
// custom_id holds the transaction hash, which is the correlation key the host
// uses to match provider returns and webhooks back to the local transaction.
func (g *Gateway) buildPurchaseUnit(order *domain.Order, transaction *domain.Transaction) paypal.PurchaseUnit {
	siteName := g.settings.SiteName

	unit := paypal.PurchaseUnit{
		Description:    truncate(siteName, maxDescriptionLen),
		InvoiceID:      truncate(order.Number, maxInvoiceIDLen),
		CustomID:       truncate(transaction.Hash, maxCustomIDLen),
		SoftDescriptor: truncate(softDescriptorStrip.ReplaceAllString(siteName, ""), maxSoftDescriptorLen),
		Amount:         g.buildAmount(order, transaction),
		Items:          g.buildItems(order, transaction),
	}

	if shipping := g.buildShipping(order); shipping != nil {
		unit.Shipping = shipping
	}

	return unit
}

// buildAmount renders the charge amount, attaching the totals breakdown only
// when cart-info sharing is on, the payment is not partial, and the payment
// currency matches the order's base currency. A breakdown on a partial or
// cross-currency payment would not sum to the charged value and the provider
// rejects the order.
func (g *Gateway) buildAmount(order *domain.Order, transaction *domain.Transaction) paypal.PurchaseAmount {
	amount := paypal.PurchaseAmount{
		CurrencyCode: transaction.PaymentCurrency,
		Value:        domain.FormatAmount(transaction.PaymentAmount, transaction.PaymentCurrency),
	}

	if !g.sendCartInfo(order, transaction) {
		return amount
	}

	currency := order.Currency
	breakdown := &paypal.AmountBreakdown{
		ItemTotal: paypal.Money{
			CurrencyCode: currency,
			Value:        domain.FormatAmount(order.ItemSubtotal, currency),
		},
		Shipping: paypal.Money{
			CurrencyCode: currency,
			Value:        domain.FormatAmount(order.TotalShippingCost, currency),
		},
		TaxTotal: paypal.Money{
			CurrencyCode: currency,
			Value:        domain.FormatAmount(order.TotalTax, currency),
		},
	}

	if !order.TotalDiscount.IsZero() {
		// The provider wants the discount as a positive magnitude.
		breakdown.Discount = &paypal.Money{
			CurrencyCode: currency,
			Value:        domain.FormatAmount(order.TotalDiscount.Neg(), currency),
		}
	}

	amount.Breakdown = breakdown
	return amount
}

// buildItems returns one item per line item, or nothing when the breakdown
// conditions do not hold.
func (g *Gateway) buildItems(order *domain.Order, transaction *domain.Transaction) []paypal.Item {
	if !g.sendCartInfo(order, transaction) {
		return nil
	}

	items := make([]paypal.Item, 0, len(order.LineItems))
	for _, lineItem := range order.LineItems {
		items = append(items, paypal.Item{
			Name: truncate(lineItem.Description, maxItemNameLen),
			SKU:  truncate(lineItem.SKU, maxItemSKULen),
			UnitAmount: paypal.Money{
				CurrencyCode: order.Currency,
				Value:        domain.FormatAmount(lineItem.EffectivePrice(), order.Currency),
			},
			Quantity: lineItem.Qty,
		})
	}

	return items
}

// buildShipping maps the shipping address and method. The address block is
// only built when a country resolved; the provider rejects addresses without
// a country code.
func (g *Gateway) buildShipping(order *domain.Order) *paypal.Shipping {
	shippingAddress := order.ShippingAddress
	shipping := &paypal.Shipping{}

	if shippingAddress.HasCountry() {
		shipping.Address = buildAddress(shippingAddress)

		if name := shippingAddress.Name(); name != "" {
			shipping.Name = &paypal.ShippingName{FullName: truncate(name, maxFullNameLen)}
		}
	}

	if shippingAddress != nil && order.ShippingMethod != nil {
		shipping.Method = order.ShippingMethod.Name
	}

	if shipping.Address == nil && shipping.Name == nil && shipping.Method == "" {
		return nil
	}
	return shipping
}

// buildPayer maps the order email and billing address. The address sub-object
// is omitted entirely when no country resolves rather than sending a
// malformed one.
func (g *Gateway) buildPayer(order *domain.Order) *paypal.Payer {
	billingAddress := order.BillingAddress
	if billingAddress == nil && order.Email == "" {
		return nil
	}

	payer := &paypal.Payer{
		EmailAddress: truncate(order.Email, maxEmailLen),
	}

	if billingAddress != nil {
		name := &paypal.Name{}
		if billingAddress.FullName != "" || billingAddress.FirstName != "" {
			given := billingAddress.FullName
			if given == "" {
				given = billingAddress.FirstName
			}
			name.GivenName = truncate(given, maxNamePartLen)
		}
		if billingAddress.FullName == "" && billingAddress.LastName != "" {
			name.Surname = truncate(billingAddress.LastName, maxNamePartLen)
		}
		if name.GivenName != "" || name.Surname != "" {
			payer.Name = name
		}

		if billingAddress.HasCountry() {
			payer.Address = buildAddress(billingAddress)
		}
	}

	return payer
}

// buildAddress maps a host address to the provider's portable address format.
func buildAddress(address *domain.Address) *paypal.Address {
	return &paypal.Address{
		AddressLine1: truncate(address.Address1, maxAddressLineLen),
		AddressLine2: truncate(address.Address2, maxAddressLineLen),
		AdminArea2:   truncate(address.City, maxCityLen),
		AdminArea1:   truncate(address.Region(), maxRegionLen),
		PostalCode:   truncate(address.PostalCode, maxPostalCodeLen),
		CountryCode:  address.CountryISO,
	}
}

// sendCartInfo gates breakdown and item sharing: all three conditions must
// hold or the provider-side totals check fails.
func (g *Gateway) sendCartInfo(order *domain.Order, transaction *domain.Transaction) bool {
	return g.settings.SendCartInfoEnabled() &&
		!isPartialPayment(order) &&
		isPaymentInBaseCurrency(order, transaction)
}

// isPartialPayment distinguishes a deposit or installment capture from a
// full-balance capture.
func isPartialPayment(order *domain.Order) bool {
	return order.HasOutstandingBalance() && order.OutstandingBalance.LessThan(order.Total)
}

func isPaymentInBaseCurrency(order *domain.Order, transaction *domain.Transaction) bool {
	return order.Currency == transaction.PaymentCurrency
}

// truncate cuts a string to at most limit characters, rune-safe.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
