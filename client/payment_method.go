package client

import "strconv"

// Payment method ids accepted by exchange/create_deal.
type PaymentMethod int

const (
	PAYMENT_METHOD_SBER           PaymentMethod = 335
	PAYMENT_METHOD_TINKOFF        PaymentMethod = 338
	PAYMENT_METHOD_PRIVAT_BANK    PaymentMethod = 378
	PAYMENT_METHOD_ABANK24        PaymentMethod = 435
	PAYMENT_METHOD_MONOBANK       PaymentMethod = 394
	PAYMENT_METHOD_PUMB           PaymentMethod = 352
	PAYMENT_METHOD_IZIBANK        PaymentMethod = 439
	PAYMENT_METHOD_DNIPRO_BANK    PaymentMethod = 440
	PAYMENT_METHOD_PIVDENNIY_BANK PaymentMethod = 441
	PAYMENT_METHOD_AGRIKOL        PaymentMethod = 442
	PAYMENT_METHOD_OTP_BANK       PaymentMethod = 443
	PAYMENT_METHOD_RAIFAIZEN_BANK PaymentMethod = 330
	PAYMENT_METHOD_KREDO_BANK     PaymentMethod = 444
	PAYMENT_METHOD_CONCORD        PaymentMethod = 448
	PAYMENT_METHOD_NEO            PaymentMethod = 437
	PAYMENT_METHOD_ANY_BANK       PaymentMethod = 449
	PAYMENT_METHOD_CARD_TO_CARD   PaymentMethod = 450
)

var paymentMethodNames = map[PaymentMethod]string{
	PAYMENT_METHOD_SBER:           "sber",
	PAYMENT_METHOD_TINKOFF:        "tinkoff",
	PAYMENT_METHOD_PRIVAT_BANK:    "privat_bank",
	PAYMENT_METHOD_ABANK24:        "abank24",
	PAYMENT_METHOD_MONOBANK:       "monobank",
	PAYMENT_METHOD_PUMB:           "pumb",
	PAYMENT_METHOD_IZIBANK:        "izibank",
	PAYMENT_METHOD_DNIPRO_BANK:    "dnipro_bank",
	PAYMENT_METHOD_PIVDENNIY_BANK: "pivdenniy_bank",
	PAYMENT_METHOD_AGRIKOL:        "agrikol",
	PAYMENT_METHOD_OTP_BANK:       "otp_bank",
	PAYMENT_METHOD_RAIFAIZEN_BANK: "raifaizen_bank",
	PAYMENT_METHOD_KREDO_BANK:     "kredo_bank",
	PAYMENT_METHOD_CONCORD:        "concord",
	PAYMENT_METHOD_NEO:            "neo",
	PAYMENT_METHOD_ANY_BANK:       "any_bank",
	PAYMENT_METHOD_CARD_TO_CARD:   "card_to_card",
}

func (m PaymentMethod) String() string {
	if name, ok := paymentMethodNames[m]; ok {
		return name
	}
	return "payment_method_" + strconv.Itoa(int(m))
}

// Id is the value sent on the wire.
func (m PaymentMethod) Id() int {
	return int(m)
}
