package client

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency     = "USDT"
	DefaultFiatCurrency = "rub"
	DefaultLanguage     = "ru"
)

// ProductFieldOrder is the order product fields are signed and sent in. The
// gateway hashes them in exactly this order.
var ProductFieldOrder = []string{
	"client",
	"product",
	"price",
	"quantity",
	"message",
	"description",
	"currency",
	"fiat_currency",
	"language",
	"uuid",
}

var hundred = decimal.NewFromInt(100)

// Product describes a single purchase request.
type Product struct {
	client       string
	product      string
	price        decimal.Decimal
	quantity     int
	message      string
	description  string
	currency     string
	fiatCurrency string
	language     string
	uuid         string
}

type ProductOption func(p *Product)

func WithCurrency(currency string) ProductOption {
	return func(p *Product) { p.currency = currency }
}

func WithFiatCurrency(fiatCurrency string) ProductOption {
	return func(p *Product) { p.fiatCurrency = fiatCurrency }
}

func WithLanguage(language string) ProductOption {
	return func(p *Product) { p.language = language }
}

// WithUuid sets the payment id from the merchant's own system. It is sent
// verbatim.
func WithUuid(id string) ProductOption {
	return func(p *Product) { p.uuid = id }
}

// WithRandomUuid uses a random RFC 4122 id instead of the default 5-digit
// token, which collides easily under load.
func WithRandomUuid() ProductOption {
	return func(p *Product) { p.uuid = uuid.NewString() }
}

// NewProduct builds a purchase request. price is the price of one unit in
// major units; it is converted to minor units (x100) here and only here.
func NewProduct(
	client string,
	product string,
	price decimal.Decimal,
	quantity int,
	message string,
	description string,
	opts ...ProductOption,
) (*Product, error) {
	if client == "" {
		return nil, fmt.Errorf("%w: client", ErrEmptyField)
	}
	if product == "" {
		return nil, fmt.Errorf("%w: product", ErrEmptyField)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	p := &Product{
		client:       client,
		product:      product,
		price:        price.Mul(hundred),
		quantity:     quantity,
		message:      message,
		description:  description,
		currency:     DefaultCurrency,
		fiatCurrency: DefaultFiatCurrency,
		language:     DefaultLanguage,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.uuid == "" {
		p.uuid = randomToken()
	}
	return p, nil
}

// randomToken is the gateway's default payment id: a 5-digit number in
// [10000, 99999]. Not unique; prefer WithUuid or WithRandomUuid.
func randomToken() string {
	return strconv.Itoa(10000 + rand.IntN(90000))
}

func (p *Product) Client() string {
	return p.client
}

func (p *Product) SetClient(client string) {
	p.client = client
}

func (p *Product) Product() string {
	return p.product
}

func (p *Product) SetProduct(product string) {
	p.product = product
}

// Price returns the price in minor units.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// SetPrice stores price as is. Unlike NewProduct it does not scale by 100, the
// value must already be in minor units.
func (p *Product) SetPrice(price decimal.Decimal) {
	p.price = price
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) SetQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	p.quantity = quantity
	return nil
}

func (p *Product) Message() string {
	return p.message
}

func (p *Product) SetMessage(message string) {
	p.message = message
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) SetDescription(description string) {
	p.description = description
}

func (p *Product) Currency() string {
	return p.currency
}

func (p *Product) SetCurrency(currency string) {
	p.currency = currency
}

func (p *Product) FiatCurrency() string {
	return p.fiatCurrency
}

func (p *Product) SetFiatCurrency(fiatCurrency string) {
	p.fiatCurrency = fiatCurrency
}

func (p *Product) Language() string {
	return p.language
}

func (p *Product) SetLanguage(language string) {
	p.language = language
}

func (p *Product) Uuid() string {
	return p.uuid
}

func (p *Product) SetUuid(id string) {
	p.uuid = id
}

// Fields returns the product in ProductFieldOrder under its wire names.
func (p *Product) Fields() Fields {
	fields := make(Fields, 0, len(ProductFieldOrder)+2)
	fields.Add("client", p.client)
	fields.Add("product", p.product)
	fields.Add("price", p.price)
	fields.Add("quantity", p.quantity)
	fields.Add("message", p.message)
	fields.Add("description", p.description)
	fields.Add("currency", p.currency)
	fields.Add("fiat_currency", p.fiatCurrency)
	fields.Add("language", p.language)
	fields.Add("uuid", p.uuid)
	return fields
}
