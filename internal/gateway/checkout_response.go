package gateway

import (
	"strconv"

	"github.com/craftcms/commerce-paypal-checkout/internal/application"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/paypal"
)

// Status is the gateway's interpretation of a provider response.
type Status string

const (
	// StatusRedirect means the order was created and the client must
	// continue the offsite approval flow. It is the default state.
	StatusRedirect Status = "redirect"
	// StatusProcessing means the provider completed the order but a nested
	// capture or authorization is still pending.
	StatusProcessing Status = "processing"
	StatusSuccessful Status = "successful"
	StatusError      Status = "error"
)

// errorStatus is the result status marker for failed calls, set when a
// transport failure is converted into a persistable response.
const errorStatus = "error"

// CheckoutResponse wraps a provider order response and derives the payment
// status from its nested sub-resources.
type CheckoutResponse struct {
	data *paypal.Response
}

var _ application.RequestResponse = (*CheckoutResponse)(nil)

func NewCheckoutResponse(data *paypal.Response) *CheckoutResponse {
	return &CheckoutResponse{data: data}
}

// Status derives the state machine value. COMPLETED means success unless a
// nested capture or authorization is still PENDING, which demotes the
// response to processing; the error marker means a failed call; anything
// else leaves the customer in the offsite redirect flow.
func (r *CheckoutResponse) Status() Status {
	if r.data == nil {
		return StatusRedirect
	}

	switch r.data.Result.Status {
	case "COMPLETED":
		if r.hasPendingPayment() {
			return StatusProcessing
		}
		return StatusSuccessful
	case errorStatus:
		return StatusError
	default:
		return StatusRedirect
	}
}

func (r *CheckoutResponse) hasPendingPayment() bool {
	for _, unit := range r.data.Result.PurchaseUnits {
		if len(unit.Payments.Captures) > 0 && unit.Payments.Captures[0].Status == "PENDING" {
			return true
		}
		if len(unit.Payments.Authorizations) > 0 && unit.Payments.Authorizations[0].Status == "PENDING" {
			return true
		}
	}
	return false
}

func (r *CheckoutResponse) IsSuccessful() bool {
	return r.Status() == StatusSuccessful
}

func (r *CheckoutResponse) IsProcessing() bool {
	return r.Status() == StatusProcessing
}

func (r *CheckoutResponse) IsRedirect() bool {
	return r.Status() == StatusRedirect
}

func (r *CheckoutResponse) GetRedirectMethod() string {
	if r.IsRedirect() {
		return "GET"
	}
	return ""
}

func (r *CheckoutResponse) GetRedirectData() map[string]string {
	return map[string]string{}
}

// GetRedirectURL returns the provider order id; the storefront script opens
// the approval popup from it rather than a full URL.
func (r *CheckoutResponse) GetRedirectURL() string {
	if r.data == nil {
		return ""
	}
	return r.data.Result.ID
}

func (r *CheckoutResponse) GetTransactionReference() string {
	if r.data == nil {
		return ""
	}
	return r.data.Result.ID
}

func (r *CheckoutResponse) GetCode() string {
	if r.data == nil || r.data.StatusCode == 0 {
		return ""
	}
	return strconv.Itoa(r.data.StatusCode)
}

func (r *CheckoutResponse) GetData() any {
	return r.data
}

func (r *CheckoutResponse) GetMessage() string {
	if r.data == nil {
		return ""
	}
	if r.data.Result.Message != "" {
		return r.data.Result.Message
	}
	return r.data.Message
}
