package exchange

import (
	"fmt"

	"wallex/client"
)

// BuyFiatRequest carries the buyer's card for acquiring through exchange/buy.
// Id is the payment request, BuyId and Service come from the chosen offer.
// CardTo is the payee card and is optional.
type BuyFiatRequest struct {
	Id         int
	BuyId      int
	Service    string `validate:"required"`
	CardNumber string `validate:"required"`
	Expires    string `validate:"required"`
	Cvc        string `validate:"required"`
	Email      string `validate:"required"`
	CardTo     string
}

func (r *BuyFiatRequest) validate() error {
	if r == nil {
		return fmt.Errorf("%w: request", client.ErrEmptyField)
	}
	return client.ValidateStruct(r)
}

func (r *BuyFiatRequest) fields() client.Fields {
	fields := client.NewFields()
	fields.Add("id", r.Id)
	fields.Add("buyId", r.BuyId)
	fields.Add("service", r.Service)
	fields.Add("cardNumber", r.CardNumber)
	fields.Add("expires", r.Expires)
	fields.Add("cvc", r.Cvc)
	fields.Add("checkEmail", r.Email)
	if r.CardTo != "" {
		fields.Add("cardTo", r.CardTo)
	}
	return fields
}
