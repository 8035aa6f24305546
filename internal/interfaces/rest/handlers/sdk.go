package handlers

import (
	"net/http"

	"github.com/craftcms/commerce-paypal-checkout/internal/gateway"
	"github.com/craftcms/commerce-paypal-checkout/internal/interfaces/rest"
)

type SDKURLResponse struct {
	URL string `json:"url"`
}

// SDKURL returns the JS SDK script URL for the storefront to load, carrying
// the gateway's client id and configured intent plus any storefront options.
func (h *Handlers) SDKURL(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	url, err := h.sdk.SDKScriptURL(gateway.SDKParams{
		Currency:       q.Get("currency"),
		DisableCard:    q.Get("disableCard"),
		DisableFunding: q.Get("disableFunding"),
		Locale:         q.Get("locale"),
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, SDKURLResponse{URL: url})
}
