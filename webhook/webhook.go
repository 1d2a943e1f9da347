package webhook

import (
	"fmt"
	"log/slog"

	"wallex/client"
	"wallex/signer"

	"github.com/shopspring/decimal"
)

const StatusSuccess = "success"

// CanonicalFields is the documented notification field set, in the order the
// gateway signs it.
var CanonicalFields = []string{
	"uuid",
	"amount",
	"currency",
	"status",
	"commission",
	"product",
	"client",
}

// Event is one inbound payment notification. It is read-only; nothing in it
// should be trusted before VerifySignature returns true.
type Event struct {
	fields client.Fields
}

// NewEvent wraps fields in the order they were received.
func NewEvent(fields client.Fields) *Event {
	own := make(client.Fields, len(fields))
	copy(own, fields)
	return &Event{fields: own}
}

func (e *Event) Get(name string) (string, bool) {
	return e.fields.Get(name)
}

func (e *Event) Fields() client.Fields {
	out := make(client.Fields, len(e.fields))
	copy(out, e.fields)
	return out
}

func (e *Event) Uuid() string {
	return e.value("uuid")
}

func (e *Event) Amount() (decimal.Decimal, error) {
	return e.decimal("amount")
}

func (e *Event) Currency() string {
	return e.value("currency")
}

func (e *Event) Status() string {
	return e.value("status")
}

func (e *Event) Commission() (decimal.Decimal, error) {
	return e.decimal("commission")
}

func (e *Event) Product() string {
	return e.value("product")
}

func (e *Event) Client() string {
	return e.value("client")
}

func (e *Event) Sign() string {
	return e.value(client.SignField)
}

func (e *Event) IsSuccess() bool {
	return e.Status() == StatusSuccess
}

// VerifySignature hashes every field except sign in the order received.
func (e *Event) VerifySignature(secret string) bool {
	ok := signer.Verify(e.fields.Without(client.SignField).Values(), secret, e.Sign())
	if !ok {
		slog.Warn("[WallexWebhook] Signature mismatch", "uuid", e.Uuid(), "fields", e.fields.Names())
	}
	return ok
}

// VerifySignatureWith hashes exactly the listed fields in the listed order,
// for hosts that receive notifications already decoded into a map. Every
// listed field must be present.
func (e *Event) VerifySignatureWith(secret string, order []string) bool {
	values := make([]string, 0, len(order))
	for _, name := range order {
		value, ok := e.fields.Get(name)
		if !ok {
			slog.Warn("[WallexWebhook] Signed field missing", "uuid", e.Uuid(), "field", name)
			return false
		}
		values = append(values, value)
	}
	ok := signer.Verify(values, secret, e.Sign())
	if !ok {
		slog.Warn("[WallexWebhook] Signature mismatch", "uuid", e.Uuid(), "fields", order)
	}
	return ok
}

func (e *Event) value(name string) string {
	value, _ := e.fields.Get(name)
	return value
}

func (e *Event) decimal(name string) (decimal.Decimal, error) {
	value, ok := e.fields.Get(name)
	if !ok {
		return decimal.Zero, fmt.Errorf("webhook: %s is missing", name)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("webhook: %s: %w", name, err)
	}
	return d, nil
}
