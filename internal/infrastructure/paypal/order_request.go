package paypal

// CreateOrderRequest is the body of an orders-create call. Optional blocks
// are pointers populated only when their precondition holds, so the encoder
// never emits half-built sub-objects.
type CreateOrderRequest struct {
	Intent             string             `json:"intent"`
	Payer              *Payer             `json:"payer,omitempty"`
	PurchaseUnits      []PurchaseUnit     `json:"purchase_units"`
	ApplicationContext ApplicationContext `json:"application_context"`
}

type Payer struct {
	EmailAddress string   `json:"email_address,omitempty"`
	Name         *Name    `json:"name,omitempty"`
	Address      *Address `json:"address,omitempty"`
}

type Name struct {
	GivenName string `json:"given_name,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

// Address is the provider's portable address. CountryCode is mandatory on
// the wire; callers must not build an Address without one.
type Address struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	AdminArea2   string `json:"admin_area_2,omitempty"`
	AdminArea1   string `json:"admin_area_1,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	CountryCode  string `json:"country_code"`
}

type PurchaseUnit struct {
	Description    string         `json:"description,omitempty"`
	InvoiceID      string         `json:"invoice_id,omitempty"`
	CustomID       string         `json:"custom_id,omitempty"`
	SoftDescriptor string         `json:"soft_descriptor,omitempty"`
	Amount         PurchaseAmount `json:"amount"`
	Items          []Item         `json:"items,omitempty"`
	Shipping       *Shipping      `json:"shipping,omitempty"`
}

type PurchaseAmount struct {
	CurrencyCode string           `json:"currency_code"`
	Value        string           `json:"value"`
	Breakdown    *AmountBreakdown `json:"breakdown,omitempty"`
}

type AmountBreakdown struct {
	ItemTotal Money  `json:"item_total"`
	Shipping  Money  `json:"shipping"`
	TaxTotal  Money  `json:"tax_total"`
	Discount  *Money `json:"discount,omitempty"`
}

type Item struct {
	Name       string `json:"name"`
	SKU        string `json:"sku,omitempty"`
	UnitAmount Money  `json:"unit_amount"`
	Quantity   int    `json:"quantity"`
}

type Shipping struct {
	Name    *ShippingName `json:"name,omitempty"`
	Address *Address      `json:"address,omitempty"`
	Method  string        `json:"method,omitempty"`
}

type ShippingName struct {
	FullName string `json:"full_name"`
}

type ApplicationContext struct {
	BrandName          string `json:"brand_name,omitempty"`
	Locale             string `json:"locale,omitempty"`
	LandingPage        string `json:"landing_page,omitempty"`
	ShippingPreference string `json:"shipping_preference"`
	UserAction         string `json:"user_action"`
	ReturnURL          string `json:"return_url"`
	CancelURL          string `json:"cancel_url"`
}
