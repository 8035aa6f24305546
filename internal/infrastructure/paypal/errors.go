package paypal

import (
	"errors"
	"fmt"
)

// APIError is a provider call that failed, either in transport or with a
// structured error payload.
type APIError struct {
	Name       string
	Message    string
	StatusCode int
	Raw        []byte
}

func (e *APIError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("paypal error [%s]: %s (status: %d)", e.Name, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("paypal error: %s (status: %d)", e.Message, e.StatusCode)
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
