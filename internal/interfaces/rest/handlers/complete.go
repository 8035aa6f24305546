package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
	"github.com/craftcms/commerce-paypal-checkout/internal/interfaces/rest"
)

// CompletePaymentRequest carries the correlation hash the buttons' onApprove
// callback posts back after the customer approves the order.
type CompletePaymentRequest struct {
	CommerceTransactionHash string `json:"commerceTransactionHash"`
}

type CompletePaymentResponse struct {
	TransactionID   string `json:"transactionId"`
	TransactionHash string `json:"transactionHash"`
	Reference       string `json:"reference"`
	Success         bool   `json:"success"`
	Processing      bool   `json:"processing"`
	Message         string `json:"message,omitempty"`
}

func (h *Handlers) CompletePayment(w http.ResponseWriter, r *http.Request) {
	var req CompletePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteJSON(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.CommerceTransactionHash == "" {
		rest.WriteError(w, domain.NewMissingRequiredFieldError("commerceTransactionHash"), h.logger)
		return
	}

	result, err := h.checkout.CompletePayment(r.Context(), req.CommerceTransactionHash)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, CompletePaymentResponse{
		TransactionID:   result.Transaction.ID,
		TransactionHash: result.Transaction.Hash,
		Reference:       result.Response.GetTransactionReference(),
		Success:         result.Response.IsSuccessful(),
		Processing:      result.Response.IsProcessing(),
		Message:         result.Response.GetMessage(),
	})
}
