package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ItemKind string

const (
	KindLineItem ItemKind = "line_item"
	KindFee      ItemKind = "fee"
)

type Address struct {
	FirstName string
	LastName  string
	Company   string
	Address1  string
	Address2  string
	City      string
	State     string
	Postcode  string
	Country   string
	Email     string
	Phone     string
}

// FullName formats the addressee as "first last".
func (a Address) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

type Product struct {
	ID          uint64
	SKU         string
	Name        string
	Description string
}

// Item is one charge line on an order. Kind selects which of the
// remaining fields are meaningful: line items carry a Product, fees
// carry their own name and id.
type Item struct {
	Kind     ItemKind
	Quantity float64
	Total    decimal.Decimal
	Tax      decimal.Decimal

	Product *Product

	FeeID   uint64
	FeeName string
}

// OrderData is a point-in-time snapshot of an order as the host
// platform sees it. Adapters for other platforms populate this struct
// and wrap it in an Order.
type OrderData struct {
	ID            uint64
	Currency      string
	Total         decimal.Decimal
	ShippingTotal decimal.Decimal
	ShippingTax   decimal.Decimal
	Billing       Address
	Shipping      Address
	NeedsShipping bool
	Items         []Item
}

// Order is a read-only view over an order snapshot. The payload
// builder only ever reads through these accessors, never mutates.
type Order struct {
	data OrderData
}

func NewOrder(data OrderData) *Order {
	return &Order{data: data}
}

func (o *Order) ID() uint64                     { return o.data.ID }
func (o *Order) Currency() string               { return o.data.Currency }
func (o *Order) Total() decimal.Decimal         { return o.data.Total }
func (o *Order) ShippingTotal() decimal.Decimal { return o.data.ShippingTotal }
func (o *Order) ShippingTax() decimal.Decimal   { return o.data.ShippingTax }
func (o *Order) Billing() Address               { return o.data.Billing }
func (o *Order) Shipping() Address              { return o.data.Shipping }
func (o *Order) NeedsShippingAddress() bool     { return o.data.NeedsShipping }
func (o *Order) Items() []Item                  { return o.data.Items }
