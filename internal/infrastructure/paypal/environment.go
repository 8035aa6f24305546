// Package paypal talks to the PayPal Orders v2 and Payments v2 REST APIs.
// It models the small closed set of requests the gateway needs and funnels
// them through one bearer-authenticated execution path.
package paypal

import (
	"encoding/base64"
	"fmt"
)

// Environment selects the API host and carries the REST app credentials.
type Environment interface {
	BaseURL() string
	// AuthorizationString returns the Basic credentials used on token requests.
	AuthorizationString() string
}

type SandboxEnvironment struct {
	ClientID string
	Secret   string
}

func NewSandboxEnvironment(clientID, secret string) *SandboxEnvironment {
	return &SandboxEnvironment{ClientID: clientID, Secret: secret}
}

func (e *SandboxEnvironment) BaseURL() string {
	return "https://api.sandbox.paypal.com"
}

func (e *SandboxEnvironment) AuthorizationString() string {
	return basicAuth(e.ClientID, e.Secret)
}

type ProductionEnvironment struct {
	ClientID string
	Secret   string
}

func NewProductionEnvironment(clientID, secret string) *ProductionEnvironment {
	return &ProductionEnvironment{ClientID: clientID, Secret: secret}
}

func (e *ProductionEnvironment) BaseURL() string {
	return "https://api.paypal.com"
}

func (e *ProductionEnvironment) AuthorizationString() string {
	return basicAuth(e.ClientID, e.Secret)
}

func basicAuth(clientID, secret string) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", clientID, secret)))
}
