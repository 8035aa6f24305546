package application

import (
	"errors"
	"fmt"
)

// PaymentError aborts the current payment request. It is what
// purchase/authorize/capture/completeAuthorize raise when the provider call
// fails in transport; the host displays its message to the customer.
type PaymentError struct {
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

func NewPaymentError(message string, err error) *PaymentError {
	return &PaymentError{Message: message, Err: err}
}

func IsPaymentError(err error) (*PaymentError, bool) {
	var payErr *PaymentError
	ok := errors.As(err, &payErr)
	return payErr, ok
}

// ErrPaymentSourcesNotSupported is returned by the payment-source operations,
// which this gateway does not implement.
var ErrPaymentSourcesNotSupported = errors.New("payment sources are not supported by the PayPal Checkout gateway")
