package gateway

import (
	"net/url"
	"strings"
	"testing"

	"github.com/craftcms/commerce-paypal-checkout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSDKScriptURL(t *testing.T) {
	g := testGateway(config.GatewaySettings{
		ClientID:    "test-client-id",
		PaymentType: "authorize",
	})

	rawURL, err := g.SDKScriptURL(SDKParams{
		Currency: "EUR",
		Locale:   "de_DE",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rawURL, SDKURL+"?"))

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	query := parsed.Query()

	assert.Equal(t, "test-client-id", query.Get("client-id"))
	assert.Equal(t, "authorize", query.Get("intent"))
	assert.Equal(t, "EUR", query.Get("currency"))
	assert.Equal(t, "de_DE", query.Get("locale"))
	assert.NotContains(t, query, "disable-card")
}

func TestSDKScriptURLDefaultsToCaptureIntent(t *testing.T) {
	g := testGateway(config.GatewaySettings{ClientID: "test-client-id"})

	rawURL, err := g.SDKScriptURL(SDKParams{})
	require.NoError(t, err)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	assert.Equal(t, "capture", parsed.Query().Get("intent"))
}

func TestSDKScriptURLResolvesClientIDFromEnv(t *testing.T) {
	t.Setenv("PAYPAL_SDK_CLIENT", "env-client-id")
	g := testGateway(config.GatewaySettings{ClientID: "$PAYPAL_SDK_CLIENT"})

	rawURL, err := g.SDKScriptURL(SDKParams{})
	require.NoError(t, err)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	assert.Equal(t, "env-client-id", parsed.Query().Get("client-id"))
}
