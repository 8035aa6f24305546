package handlers

import (
	"io"
	"net/http"

	"github.com/craftcms/commerce-paypal-checkout/internal/interfaces/rest"
	"github.com/craftcms/commerce-paypal-checkout/pkg/metrics"
)

// Webhook acknowledges provider notifications. Events are logged and counted
// but not acted on; order state is driven by the completion callback.
func (h *Handlers) Webhook(w http.ResponseWriter, r *http.Request) {
	metrics.WebhooksReceivedTotal.Inc()

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err == nil && len(body) > 0 {
		h.logger.Info("webhook received", "bytes", len(body))
	}

	rest.WriteJSON(w, http.StatusOK, map[string]string{"data": "ok"})
}
