package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/craftcms/commerce-paypal-checkout/internal/application"
	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// WriteError maps application and domain errors to HTTP responses. Payment
// errors carry a customer-facing message; everything else gets a generic body
// so provider internals never leak to the storefront.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	if payErr, ok := application.IsPaymentError(err); ok {
		logger.Error("payment request failed", "error", err)
		WriteJSON(w, http.StatusBadGateway, ErrorResponse{Error: payErr.Message})
		return
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := http.StatusBadRequest
		if domainErr.Code == domain.ErrCodeTransactionNotFound {
			statusCode = http.StatusNotFound
		}
		WriteJSON(w, statusCode, ErrorResponse{Error: domainErr.Message})
		return
	}

	logger.Error("request failed", "error", err)
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
