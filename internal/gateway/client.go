package gateway

import (
	"log/slog"

	"github.com/craftcms/commerce-paypal-checkout/internal/config"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/paypal"
)

// NewProviderClient builds the provider client for the settings' resolved
// credentials, selecting the sandbox environment when test mode is on. The
// token store is shared so every gateway instance with the same credentials
// reuses one cached bearer token.
func NewProviderClient(settings config.GatewaySettings, tokens paypal.TokenStore, logger *slog.Logger) *paypal.Client {
	var env paypal.Environment
	if settings.TestModeEnabled() {
		env = paypal.NewSandboxEnvironment(settings.ResolvedClientID(), settings.ResolvedSecret())
	} else {
		env = paypal.NewProductionEnvironment(settings.ResolvedClientID(), settings.ResolvedSecret())
	}

	return paypal.NewClient(env, tokens, logger)
}
