package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kis-szolgyemi/simplepay-gateway/internal/model"
)

// IntegrationName identifies this integration to the gateway in the
// sdkVersion field.
const IntegrationName = "SimplePay Gateway Go"

// paymentEndpoint tags the callback URL with the endpoint that
// processes the gateway's redirect.
const paymentEndpoint = "process_card_payment"

// timeoutWindow is how long the gateway keeps the started transaction
// open for the shopper.
const timeoutWindow = 30 * time.Minute

var (
	ErrMissingMerchant = errors.New("merchant identifier is not configured")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	ErrUnknownItemKind = errors.New("unsupported order item kind")
	ErrMissingProduct  = errors.New("line item has no product")
)

// Order is the read-only view of an order the builder maps from.
// Host platforms supply an adapter; model.Order is the default one.
type Order interface {
	ID() uint64
	Currency() string
	Total() decimal.Decimal
	ShippingTotal() decimal.Decimal
	ShippingTax() decimal.Decimal
	Billing() model.Address
	Shipping() model.Address
	NeedsShippingAddress() bool
	Items() []model.Item
}

type SaltGenerator interface {
	Generate() string
}

type ReferenceCodec interface {
	Encode(id uint64) string
}

type LocaleProvider interface {
	Current() string
}

type CallbackURLBuilder interface {
	CallbackURL(endpoint string) string
}

// Payload is the gateway request body. Field names follow the
// gateway's wire contract and must not change.
type Payload struct {
	Salt             string   `json:"salt"`
	Timeout          string   `json:"timeout"`
	Methods          []string `json:"methods"`
	Merchant         string   `json:"merchant"`
	OrderRef         string   `json:"orderRef"`
	Discount         float64  `json:"discount"`
	Currency         string   `json:"currency"`
	ShippingCost     float64  `json:"shippingCost"`
	Language         string   `json:"language"`
	URL              string   `json:"url"`
	SDKVersion       string   `json:"sdkVersion"`
	Total            float64  `json:"total"`
	Customer         string   `json:"customer"`
	CustomerEmail    string   `json:"customerEmail"`
	Invoice          *Block   `json:"invoice"`
	Delivery         *Block   `json:"delivery"`
	Items            []Item   `json:"items"`
	TwoStep          bool     `json:"twoStep"`
	MaySelectInvoice bool     `json:"maySelectInvoice"`
}

// Block holds the address and contact fields shared by the invoice and
// delivery sections.
type Block struct {
	City     string `json:"city"`
	Phone    string `json:"phone"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Company  string `json:"company"`
	Country  string `json:"country"`
	Address  string `json:"address"`
	Address2 string `json:"address2"`
	Name     string `json:"name"`
}

// Item is one normalized charge line. Tax is always zero: the line tax
// is folded into the unit price.
type Item struct {
	Tax         float64 `json:"tax"`
	Price       float64 `json:"price"`
	Amount      int64   `json:"amount"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Ref         string  `json:"ref"`
}

type Builder struct {
	merchant      string
	pluginVersion string
	salts         SaltGenerator
	refs          ReferenceCodec
	locales       LocaleProvider
	urls          CallbackURLBuilder
	now           func() time.Time
}

// NewBuilder wires the builder's collaborators. A missing merchant id
// is a configuration error and fails here, before any payload exists.
// A nil clock falls back to time.Now.
func NewBuilder(
	merchant string,
	pluginVersion string,
	salts SaltGenerator,
	refs ReferenceCodec,
	locales LocaleProvider,
	urls CallbackURLBuilder,
	now func() time.Time,
) (*Builder, error) {
	if merchant == "" {
		return nil, ErrMissingMerchant
	}
	if now == nil {
		now = time.Now
	}

	return &Builder{
		merchant:      merchant,
		pluginVersion: pluginVersion,
		salts:         salts,
		refs:          refs,
		locales:       locales,
		urls:          urls,
		now:           now,
	}, nil
}

// Build assembles the gateway request for one order. Apart from the
// salt it is a pure function of the order and the injected clock.
func (b *Builder) Build(order Order) (*Payload, error) {
	items, err := b.items(order)
	if err != nil {
		return nil, fmt.Errorf("map order items: %w", err)
	}

	billing := order.Billing()

	return &Payload{
		Salt:             b.salts.Generate(),
		Timeout:          b.now().Add(timeoutWindow).Format(time.RFC3339),
		Methods:          []string{"CARD"},
		Merchant:         b.merchant,
		OrderRef:         b.refs.Encode(order.ID()),
		Discount:         0,
		Currency:         order.Currency(),
		ShippingCost:     order.ShippingTotal().Add(order.ShippingTax()).InexactFloat64(),
		Language:         languageCode(b.locales.Current()),
		URL:              b.urls.CallbackURL(paymentEndpoint),
		SDKVersion:       IntegrationName + ":" + b.pluginVersion,
		Total:            order.Total().InexactFloat64(),
		Customer:         billing.FullName(),
		CustomerEmail:    billing.Email,
		Invoice:          invoice(order),
		Delivery:         delivery(order),
		Items:            items,
		TwoStep:          false,
		MaySelectInvoice: false,
	}, nil
}

// Encode builds the payload and encodes it as the JSON body sent to
// the gateway.
func (b *Builder) Encode(order Order) ([]byte, error) {
	p, err := b.Build(order)
	if err != nil {
		return nil, err
	}

	return json.Marshal(p)
}

// invoice maps the billing details. The block is dropped when the name
// is the only populated field: the customer name already travels at the
// root and a name-only invoice carries no billing information.
func invoice(order Order) *Block {
	billing := order.Billing()

	details := []string{
		billing.City,
		billing.Phone,
		billing.State,
		billing.Postcode,
		billing.Company,
		billing.Country,
		billing.Address1,
		billing.Address2,
	}

	populated := false
	for _, v := range details {
		if v != "" {
			populated = true
			break
		}
	}
	if !populated {
		return nil
	}

	return &Block{
		City:     billing.City,
		Phone:    billing.Phone,
		State:    billing.State,
		Zip:      billing.Postcode,
		Company:  billing.Company,
		Country:  billing.Country,
		Address:  billing.Address1,
		Address2: billing.Address2,
		Name:     billing.FullName(),
	}
}

// delivery maps the shipping details whenever the order needs a
// shipping address, with no emptiness filtering.
func delivery(order Order) *Block {
	if !order.NeedsShippingAddress() {
		return nil
	}

	shipping := order.Shipping()

	return &Block{
		City: shipping.City,
		// the order model has no shipping phone, the billing phone is
		// the only contact number available
		Phone:    order.Billing().Phone,
		State:    shipping.State,
		Zip:      shipping.Postcode,
		Company:  shipping.Company,
		Country:  shipping.Country,
		Address:  shipping.Address1,
		Address2: shipping.Address2,
		Name:     shipping.FullName(),
	}
}

// items maps line and fee items in order, dropping entries whose unit
// price is not strictly positive (free gifts, fully discounted lines).
func (b *Builder) items(order Order) ([]Item, error) {
	source := order.Items()

	items := make([]Item, 0, len(source))
	for i, item := range source {
		var (
			entry Item
			err   error
		)

		switch item.Kind {
		case model.KindLineItem:
			entry, err = mapLineItem(item)
		case model.KindFee:
			entry, err = mapFeeItem(item)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownItemKind, item.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		if entry.Price > 0 {
			items = append(items, entry)
		}
	}

	return items, nil
}

func mapLineItem(item model.Item) (Item, error) {
	if item.Product == nil {
		return Item{}, ErrMissingProduct
	}

	quantity, err := wholeQuantity(item.Quantity)
	if err != nil {
		return Item{}, err
	}

	ref := item.Product.SKU
	if ref == "" {
		ref = strconv.FormatUint(item.Product.ID, 10)
	}

	return Item{
		Tax:         0,
		Price:       unitPrice(item.Total, item.Tax, quantity),
		Amount:      quantity,
		Title:       item.Product.Name,
		Description: item.Product.Description,
		Ref:         ref,
	}, nil
}

func mapFeeItem(item model.Item) (Item, error) {
	quantity, err := wholeQuantity(item.Quantity)
	if err != nil {
		return Item{}, err
	}

	return Item{
		Tax:         0,
		Price:       unitPrice(item.Total, item.Tax, quantity),
		Amount:      quantity,
		Title:       item.FeeName,
		Description: "",
		Ref:         strconv.FormatUint(item.FeeID, 10),
	}, nil
}

// wholeQuantity rounds fractional quantities up; the gateway only
// accepts whole units. A non-positive quantity would make the unit
// price undefined, so it is rejected rather than emitted as NaN/Inf.
func wholeQuantity(quantity float64) (int64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidQuantity, quantity)
	}

	return int64(math.Ceil(quantity)), nil
}

// unitPrice derives the tax-inclusive per-unit price from the line
// totals.
func unitPrice(total, tax decimal.Decimal, quantity int64) float64 {
	return total.Add(tax).Div(decimal.NewFromInt(quantity)).InexactFloat64()
}

// languageCode reduces a locale tag like "en_US" to its two-letter
// language code.
func languageCode(tag string) string {
	if len(tag) > 2 {
		tag = tag[:2]
	}

	return strings.ToLower(tag)
}
