package payout

import (
	"encoding/json"
	"fmt"

	"wallex/client"

	"github.com/shopspring/decimal"
)

const (
	TypeCrypto = "crypto"
	TypeFiat   = "fiat"
)

// Payout statuses as reported in GetAll items.
type Status int

const (
	STATUS_CREATED    Status = 0
	STATUS_MODERATION Status = 1
	STATUS_REJECTED   Status = 2
	STATUS_DONE       Status = 3
	STATUS_CALLBACK   Status = 4
	STATUS_PROCESSING Status = 5
)

func (s Status) String() string {
	switch s {
	case STATUS_CREATED:
		return "created"
	case STATUS_MODERATION:
		return "moderation"
	case STATUS_REJECTED:
		return "rejected"
	case STATUS_DONE:
		return "done"
	case STATUS_CALLBACK:
		return "callback"
	case STATUS_PROCESSING:
		return "processing"
	}
	return fmt.Sprintf("status_%d", int(s))
}

// FiatPayRequest describes a payout to a bank card. Cardholder and
// DateOfBirth (YYYY-MM-DD) are only required for EUR payouts.
type FiatPayRequest struct {
	Amount      decimal.Decimal
	Currency    string
	Bank        string
	Number      string `validate:"required"`
	Month       int    `validate:"min=1,max=12"`
	Year        int
	Fiat        string
	Cardholder  string
	DateOfBirth string
}

func (r *FiatPayRequest) validate() error {
	if r == nil {
		return fmt.Errorf("%w: request", client.ErrEmptyField)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", client.ErrInvalidField)
	}
	return client.ValidateStruct(r)
}

func amountNumber(amount decimal.Decimal) json.Number {
	return json.Number(amount.String())
}

type merchantRequest struct {
	Merchant int    `json:"merchant"`
	Sign     string `json:"sign"`
}

type cryptoPayRequest struct {
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency"`
	Type     string      `json:"type"`
	Address  string      `json:"address"`
	Merchant int         `json:"merchant"`
	Sign     string      `json:"sign"`
}

type fiatPayRequest struct {
	Merchant    int         `json:"merchant"`
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	Bank        string      `json:"bank"`
	Number      string      `json:"number"`
	Month       int         `json:"month"`
	Year        int         `json:"year"`
	Type        string      `json:"type"`
	Fiat        string      `json:"fiat"`
	Cardholder  string      `json:"cardholder"`
	DateOfBirth string      `json:"dateOfBirth"`
	Sign        string      `json:"sign"`
}

type payToBalanceRequest struct {
	Amount   json.Number `json:"amount"`
	Merchant int         `json:"merchant"`
	Sign     string      `json:"sign"`
}

type convertRequest struct {
	Amount   json.Number `json:"amount"`
	Merchant int         `json:"merchant"`
	Currency string      `json:"currency"`
	Sign     string      `json:"sign"`
}
