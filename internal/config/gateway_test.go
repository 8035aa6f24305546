package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("PAYPAL_TEST_SECRET", "s3cret")

	assert.Equal(t, "s3cret", ParseEnv("$PAYPAL_TEST_SECRET"))
	assert.Equal(t, "literal-value", ParseEnv("literal-value"))
	assert.Equal(t, "", ParseEnv("$PAYPAL_UNSET_VAR"))
}

func TestParseBooleanEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseBooleanEnv(tt.value), "value %q", tt.value)
	}

	t.Setenv("PAYPAL_TEST_MODE", "true")
	assert.True(t, ParseBooleanEnv("$PAYPAL_TEST_MODE"))
}

func TestGatewaySettingsResolution(t *testing.T) {
	t.Setenv("PAYPAL_CLIENT_ID", "client-from-env")

	settings := GatewaySettings{
		ClientID:     "$PAYPAL_CLIENT_ID",
		Secret:       "plain-secret",
		TestMode:     "1",
		SendCartInfo: "false",
	}

	assert.Equal(t, "client-from-env", settings.ResolvedClientID())
	assert.Equal(t, "plain-secret", settings.ResolvedSecret())
	assert.True(t, settings.TestModeEnabled())
	assert.False(t, settings.SendCartInfoEnabled())
}

func TestResolvedPaymentType(t *testing.T) {
	assert.Equal(t, PaymentTypeAuthorize, (&GatewaySettings{PaymentType: "authorize"}).ResolvedPaymentType())
	assert.Equal(t, PaymentTypePurchase, (&GatewaySettings{PaymentType: "purchase"}).ResolvedPaymentType())
	assert.Equal(t, PaymentTypePurchase, (&GatewaySettings{PaymentType: ""}).ResolvedPaymentType())
	assert.Equal(t, PaymentTypePurchase, (&GatewaySettings{PaymentType: "immediate"}).ResolvedPaymentType())
}
