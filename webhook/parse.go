package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"wallex/client"

	"github.com/shopspring/decimal"
)

var ErrMalformed = errors.New("malformed notification")

// ParseJSON reads a flat JSON object keeping its key order, which is the order
// the gateway signed in. Decoding into a map would lose it.
//
// Numbers are rendered the way the gateway renders them before hashing
// (10.50 -> "10.5"), true as "1", false and null as "".
func ParseJSON(body []byte) (*Event, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformed)
	}

	fields := client.NewFields()
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected a key", ErrMalformed)
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		value, err := renderToken(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
		}
		fields = append(fields, client.Field{Name: name, Value: value})
	}

	if _, err = dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if _, err = dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformed)
	}
	return NewEvent(fields), nil
}

// ParseForm reads an application/x-www-form-urlencoded body keeping its
// order.
func ParseForm(body string) (*Event, error) {
	fields, err := client.ParseEncoded(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return NewEvent(fields), nil
}

func renderToken(tok json.Token) (string, error) {
	switch v := tok.(type) {
	case string:
		return v, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return v.String(), nil
		}
		return d.String(), nil
	case bool:
		if v {
			return "1", nil
		}
		return "", nil
	case nil:
		return "", nil
	}
	return "", errors.New("nested values are not supported")
}
