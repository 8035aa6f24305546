package gateway

import (
	"strconv"

	"github.com/craftcms/commerce-paypal-checkout/internal/application"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/paypal"
)

// RefundResponse wraps a captures-refund result. A refund can fail before
// reaching the provider (transport failure, synthesized message) or after
// (structured decline in the result); GetMessage reads whichever shape the
// failure produced.
type RefundResponse struct {
	data *paypal.Response
}

var _ application.RequestResponse = (*RefundResponse)(nil)

func NewRefundResponse(data *paypal.Response) *RefundResponse {
	return &RefundResponse{data: data}
}

func (r *RefundResponse) IsSuccessful() bool {
	return r.data != nil && r.data.Result.Status == "COMPLETED"
}

func (r *RefundResponse) IsProcessing() bool {
	return false
}

func (r *RefundResponse) IsRedirect() bool {
	return false
}

func (r *RefundResponse) GetRedirectMethod() string {
	return ""
}

func (r *RefundResponse) GetRedirectData() map[string]string {
	return map[string]string{}
}

func (r *RefundResponse) GetRedirectURL() string {
	return ""
}

func (r *RefundResponse) GetTransactionReference() string {
	if r.data == nil {
		return ""
	}
	return r.data.Result.ID
}

func (r *RefundResponse) GetCode() string {
	if r.data == nil || r.data.StatusCode == 0 {
		return ""
	}
	return strconv.Itoa(r.data.StatusCode)
}

func (r *RefundResponse) GetData() any {
	return r.data
}

func (r *RefundResponse) GetMessage() string {
	if r.data == nil {
		return ""
	}
	if r.data.Message != "" {
		return r.data.Message
	}
	return r.data.Result.Message
}
