package domain

// PaymentForm carries what the storefront posted when starting a payment.
// PayPal Checkout is an offsite flow, so no card data ever passes through
// here; the form only influences presentation of the offsite button.
type PaymentForm struct {
	Currency string
	Locale   string
}
