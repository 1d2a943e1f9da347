package client

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"wallex/signer"

	"github.com/shopspring/decimal"
)

const SignField = "sign"

type Field struct {
	Name  string
	Value string
}

// Fields is an ordered payload. The slice order is both the order the values
// are hashed in and the order they are written to the wire.
type Fields []Field

func NewFields() Fields {
	return Fields{}
}

func (f *Fields) Add(name string, value any) {
	*f = append(*f, Field{Name: name, Value: FormatValue(value)})
}

func (f Fields) Get(name string) (string, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for _, field := range f {
		names = append(names, field.Name)
	}
	return names
}

func (f Fields) Values() []string {
	values := make([]string, 0, len(f))
	for _, field := range f {
		values = append(values, field.Value)
	}
	return values
}

// Without returns a copy of the fields with every occurrence of name removed.
func (f Fields) Without(name string) Fields {
	out := make(Fields, 0, len(f))
	for _, field := range f {
		if field.Name != name {
			out = append(out, field)
		}
	}
	return out
}

// Signed returns a copy with the sign field appended, computed over the
// fields as they are now.
func (f Fields) Signed(secret string) Fields {
	out := make(Fields, 0, len(f)+1)
	out = append(out, f...)
	out.Add(SignField, signer.Sign(f.Values(), secret))
	return out
}

func (f Fields) Map() map[string]string {
	m := make(map[string]string, len(f))
	for _, field := range f {
		m[field.Name] = field.Value
	}
	return m
}

// Encode writes the fields as application/x-www-form-urlencoded keeping
// insertion order. url.Values.Encode sorts keys, which would break links whose
// payload must read back in signing order.
func (f Fields) Encode() string {
	sb := strings.Builder{}
	for i, field := range f {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(url.QueryEscape(field.Name) + "=" + url.QueryEscape(field.Value))
	}
	return sb.String()
}

func ParseEncoded(s string) (Fields, error) {
	fields := NewFields()
	if s == "" {
		return fields, nil
	}
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return nil, fmt.Errorf("client: bad field name %q: %w", rawName, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("client: bad value for %q: %w", name, err)
		}
		fields = append(fields, Field{Name: name, Value: value})
	}
	return fields, nil
}

// FormatValue renders a value the way the gateway renders it before hashing.
// Decimals and floats drop trailing zeros (300.00 -> "300"), dates render as
// YYYY-MM-DD. Booleans and nil have no agreed form and panic.
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		if v == nil {
			panic("client: nil decimal field value")
		}
		return v.String()
	case time.Time:
		return v.Format(time.DateOnly)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(rv.Float()).String()
	case reflect.String:
		return rv.String()
	}

	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	panic(fmt.Sprintf("client: unsupported field value of type %T", value))
}
