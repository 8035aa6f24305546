package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/craftcms/commerce-paypal-checkout/internal/application"
	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
	"github.com/craftcms/commerce-paypal-checkout/internal/interfaces/rest"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the storefront payload that opens a checkout.
type CreatePaymentRequest struct {
	Order    OrderPayload `json:"order"`
	Currency string       `json:"currency"`
	Locale   string       `json:"locale"`
}

type OrderPayload struct {
	Number    string `json:"number"`
	Email     string `json:"email"`
	Currency  string `json:"currency"`
	ReturnURL string `json:"returnUrl"`
	CancelURL string `json:"cancelUrl"`

	BillingAddress  *AddressPayload        `json:"billingAddress,omitempty"`
	ShippingAddress *AddressPayload        `json:"shippingAddress,omitempty"`
	ShippingMethod  *ShippingMethodPayload `json:"shippingMethod,omitempty"`
	LineItems       []LineItemPayload      `json:"lineItems"`

	ItemSubtotal       decimal.Decimal `json:"itemSubtotal"`
	TotalShippingCost  decimal.Decimal `json:"totalShippingCost"`
	TotalTax           decimal.Decimal `json:"totalTax"`
	TotalDiscount      decimal.Decimal `json:"totalDiscount"`
	Total              decimal.Decimal `json:"total"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
}

type AddressPayload struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	FullName          string `json:"fullName"`
	Address1          string `json:"address1"`
	Address2          string `json:"address2"`
	City              string `json:"city"`
	StateText         string `json:"stateText"`
	StateAbbreviation string `json:"stateAbbreviation"`
	PostalCode        string `json:"postalCode"`
	CountryISO        string `json:"countryIso"`
}

type ShippingMethodPayload struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
}

type LineItemPayload struct {
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	SalePrice   decimal.Decimal `json:"salePrice"`
	OnSale      bool            `json:"onSale"`
	Qty         int             `json:"qty"`
}

// CreatePaymentResponse is what the PayPal buttons' createOrder callback
// consumes. The transaction hash is the completion correlation key.
type CreatePaymentResponse struct {
	TransactionID   string `json:"transactionId"`
	TransactionHash string `json:"transactionHash"`
	Reference       string `json:"reference"`
	RedirectURL     string `json:"redirectUrl,omitempty"`
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteJSON(w, http.StatusBadRequest, rest.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Order.Number == "" {
		rest.WriteError(w, domain.NewMissingRequiredFieldError("order number"), h.logger)
		return
	}

	result, err := h.checkout.StartPayment(r.Context(), application.StartPaymentCommand{
		Order: toDomainOrder(&req.Order),
		Form: &domain.PaymentForm{
			Currency: req.Currency,
			Locale:   req.Locale,
		},
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	resp := CreatePaymentResponse{
		TransactionID:   result.Transaction.ID,
		TransactionHash: result.Transaction.Hash,
		Reference:       result.Response.GetTransactionReference(),
	}
	if result.Response.IsRedirect() {
		resp.RedirectURL = result.Response.GetRedirectURL()
	}

	rest.WriteJSON(w, http.StatusCreated, resp)
}

func toDomainOrder(p *OrderPayload) *domain.Order {
	order := &domain.Order{
		Number:             p.Number,
		Email:              p.Email,
		Currency:           p.Currency,
		ReturnURL:          p.ReturnURL,
		CancelURL:          p.CancelURL,
		BillingAddress:     toDomainAddress(p.BillingAddress),
		ShippingAddress:    toDomainAddress(p.ShippingAddress),
		ItemSubtotal:       p.ItemSubtotal,
		TotalShippingCost:  p.TotalShippingCost,
		TotalTax:           p.TotalTax,
		TotalDiscount:      p.TotalDiscount,
		Total:              p.Total,
		OutstandingBalance: p.OutstandingBalance,
	}

	if p.ShippingMethod != nil {
		order.ShippingMethod = &domain.ShippingMethod{
			Handle: p.ShippingMethod.Handle,
			Name:   p.ShippingMethod.Name,
		}
	}

	for _, li := range p.LineItems {
		order.LineItems = append(order.LineItems, domain.LineItem{
			Description: li.Description,
			SKU:         li.SKU,
			Price:       li.Price,
			SalePrice:   li.SalePrice,
			OnSale:      li.OnSale,
			Qty:         li.Qty,
		})
	}

	return order
}

func toDomainAddress(p *AddressPayload) *domain.Address {
	if p == nil {
		return nil
	}
	return &domain.Address{
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		FullName:          p.FullName,
		Address1:          p.Address1,
		Address2:          p.Address2,
		City:              p.City,
		StateText:         p.StateText,
		StateAbbreviation: p.StateAbbreviation,
		PostalCode:        p.PostalCode,
		CountryISO:        p.CountryISO,
	}
}
