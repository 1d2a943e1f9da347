package exchange

import (
	"context"
	"log/slog"

	"wallex/client"
	httpclient "wallex/http_client"
)

// Create opens a payment request for the product. cardNumber is the payee card
// used for acquiring and may be empty; when present it is part of the signed
// set.
func (c *Client) Create(ctx context.Context, product *client.Product, cardNumber string) (httpclient.Response, error) {
	fields := product.Fields()
	if cardNumber != "" {
		fields.Add("card_number", cardNumber)
	}
	signed := fields.Signed(c.config.Secret)

	resp, err := c.httpClient.PostForm(ctx, c.merchantPath(createPath), signed.Encode())
	if err != nil {
		slog.Error("[WallexExchange] Failed to create payment request", "uuid", product.Uuid(), "error", err)
		return nil, err
	}
	slog.Info("[WallexExchange] Payment request created", "uuid", product.Uuid())
	return resp, nil
}

// CreateDeal creates a payment request and selects the payment method in one
// call. Only the product fields and payment_method_id are signed: card_number
// is appended after the signature.
func (c *Client) CreateDeal(ctx context.Context, product *client.Product, method client.PaymentMethod, cardNumber string) (httpclient.Response, error) {
	fields := product.Fields()
	fields.Add("payment_method_id", method.Id())
	signed := fields.Signed(c.config.Secret)
	if cardNumber != "" {
		signed.Add("card_number", cardNumber)
	}

	resp, err := c.httpClient.PostForm(ctx, c.merchantPath(createDealPath), signed.Encode())
	if err != nil {
		slog.Error("[WallexExchange] Failed to create deal", "uuid", product.Uuid(), "method", method, "error", err)
		return nil, err
	}
	slog.Info("[WallexExchange] Deal created", "uuid", product.Uuid(), "method", method)
	return resp, nil
}
