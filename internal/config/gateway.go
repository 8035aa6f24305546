package config

import (
	"os"
	"strings"
)

// Payment types the gateway can be configured with. Authorize places a hold
// to capture later; purchase captures immediately.
const (
	PaymentTypeAuthorize = "authorize"
	PaymentTypePurchase  = "purchase"
)

// GatewaySettings are the persisted plugin settings for one gateway instance.
// The raw values may be environment-variable references (e.g. "$PAYPAL_SECRET")
// that are resolved at read time through the accessor methods, so the stored
// settings never need to contain live credentials.
type GatewaySettings struct {
	ClientID     string `koanf:"client_id" validate:"required"`
	Secret       string `koanf:"secret" validate:"required"`
	BrandName    string `koanf:"brand_name"`
	LandingPage  string `koanf:"landing_page"`
	TestMode     string `koanf:"test_mode"`
	SendCartInfo string `koanf:"send_cart_info"`
	PaymentType  string `koanf:"payment_type"`
	SiteName     string `koanf:"site_name"`
	Locale       string `koanf:"locale"`
}

func (s *GatewaySettings) ResolvedClientID() string {
	return ParseEnv(s.ClientID)
}

func (s *GatewaySettings) ResolvedSecret() string {
	return ParseEnv(s.Secret)
}

func (s *GatewaySettings) ResolvedLandingPage() string {
	return ParseEnv(s.LandingPage)
}

// ResolvedPaymentType resolves the configured payment type, defaulting to
// purchase for anything unrecognized.
func (s *GatewaySettings) ResolvedPaymentType() string {
	if ParseEnv(s.PaymentType) == PaymentTypeAuthorize {
		return PaymentTypeAuthorize
	}
	return PaymentTypePurchase
}

// TestModeEnabled resolves the testMode setting, following an env reference
// when one is stored.
func (s *GatewaySettings) TestModeEnabled() bool {
	return ParseBooleanEnv(s.TestMode)
}

// SendCartInfoEnabled resolves the sendCartInfo setting, following an env
// reference when one is stored.
func (s *GatewaySettings) SendCartInfoEnabled() bool {
	return ParseBooleanEnv(s.SendCartInfo)
}

// ParseEnv resolves a stored setting value: "$NAME" reads the NAME
// environment variable, anything else is returned as-is.
func ParseEnv(value string) string {
	if strings.HasPrefix(value, "$") {
		return os.Getenv(strings.TrimPrefix(value, "$"))
	}
	return value
}

// ParseBooleanEnv resolves a stored setting value to a boolean, following an
// env reference first. Unrecognized values are false.
func ParseBooleanEnv(value string) bool {
	switch strings.ToLower(ParseEnv(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
