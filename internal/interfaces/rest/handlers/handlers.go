package handlers

import (
	"log/slog"
	"net/http"

	"github.com/craftcms/commerce-paypal-checkout/internal/application"
	"github.com/craftcms/commerce-paypal-checkout/internal/gateway"
	"github.com/craftcms/commerce-paypal-checkout/pkg/metrics"
)

// SDKURLProvider builds the JS SDK script URL the storefront loads.
type SDKURLProvider interface {
	SDKScriptURL(params gateway.SDKParams) (string, error)
}

type Handlers struct {
	checkout *application.CheckoutService
	sdk      SDKURLProvider
	logger   *slog.Logger
}

func NewHandlers(checkout *application.CheckoutService, sdk SDKURLProvider, logger *slog.Logger) *Handlers {
	return &Handlers{
		checkout: checkout,
		sdk:      sdk,
		logger:   logger,
	}
}

// Register wires every route onto the mux, instrumented per handler.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.Handle("POST /payments", metrics.Middleware("create_payment")(http.HandlerFunc(h.CreatePayment)))
	mux.Handle("POST /payments/complete", metrics.Middleware("complete_payment")(http.HandlerFunc(h.CompletePayment)))
	mux.Handle("POST /webhooks/paypal", metrics.Middleware("webhook")(http.HandlerFunc(h.Webhook)))
	mux.Handle("GET /sdk-url", metrics.Middleware("sdk_url")(http.HandlerFunc(h.SDKURL)))
	mux.HandleFunc("GET /health", h.Health)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
