package gateway

import (
	"strings"

	"github.com/google/go-querystring/query"
)

// SDKURL is the PayPal JS SDK the storefront loads to render the buttons.
const SDKURL = "https://www.paypal.com/sdk/js"

// SDKParams are the storefront-controlled SDK query parameters merged into
// the script URL.
type SDKParams struct {
	Currency       string `url:"currency,omitempty"`
	DisableCard    string `url:"disable-card,omitempty"`
	DisableFunding string `url:"disable-funding,omitempty"`
	Locale         string `url:"locale,omitempty"`
}

type sdkQuery struct {
	ClientID string `url:"client-id"`
	Intent   string `url:"intent"`
	SDKParams
}

// SDKScriptURL builds the JS SDK script URL for this gateway's client id and
// configured intent.
func (g *Gateway) SDKScriptURL(params SDKParams) (string, error) {
	values, err := query.Values(sdkQuery{
		ClientID:  g.settings.ResolvedClientID(),
		Intent:    strings.ToLower(g.intent()),
		SDKParams: params,
	})
	if err != nil {
		return "", err
	}

	return SDKURL + "?" + values.Encode(), nil
}
