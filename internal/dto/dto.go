package dto

import "encoding/json"

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Product struct {
	ID          uint64 `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Item struct {
	Kind     string   `json:"kind"` // line_item | fee
	Quantity float64  `json:"quantity"`
	Total    float64  `json:"total"`
	Tax      float64  `json:"tax"`
	Product  *Product `json:"product,omitempty"`
	FeeID    uint64   `json:"fee_id,omitempty"`
	FeeName  string   `json:"fee_name,omitempty"`
}

type BuildPayloadRequest struct {
	OrderID       uint64  `json:"order_id"`
	Currency      string  `json:"currency"`
	Total         float64 `json:"total"`
	ShippingTotal float64 `json:"shipping_total"`
	ShippingTax   float64 `json:"shipping_tax"`
	Billing       Address `json:"billing"`
	Shipping      Address `json:"shipping"`
	NeedsShipping bool    `json:"needs_shipping"`
	Items         []*Item `json:"items"`
}

type BuildPayloadResponse struct {
	OrderRef string          `json:"order_ref"`
	Payload  json.RawMessage `json:"payload"`
}

type ResolveReferenceResponse struct {
	OrderID uint64 `json:"order_id"`
}
