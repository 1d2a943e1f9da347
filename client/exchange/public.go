package exchange

import (
	"context"
	"log/slog"
	"time"

	"wallex/client"
	httpclient "wallex/http_client"
)

func (c *Client) GetOffers(ctx context.Context) (httpclient.Response, error) {
	return c.get(ctx, offersPath, c.merchantQuery())
}

// Buy starts buying crypto for fiat using an offer from GetOffers.
func (c *Client) Buy(ctx context.Context, id int, buyId int, service string) (httpclient.Response, error) {
	fields := client.NewFields()
	fields.Add("id", id)
	fields.Add("buyId", buyId)
	fields.Add("service", service)
	return c.post(ctx, buyPath, fields)
}

// Confirm tells the gateway the fiat payment has been made.
func (c *Client) Confirm(ctx context.Context, id int, buyId int) (httpclient.Response, error) {
	fields := client.NewFields()
	fields.Add("id", id)
	fields.Add("buyId", buyId)
	return c.post(ctx, confirmPath, fields)
}

func (c *Client) Cancel(ctx context.Context, id int, buyId int) (httpclient.Response, error) {
	fields := client.NewFields()
	fields.Add("id", id)
	fields.Add("buyId", buyId)
	return c.post(ctx, cancelPath, fields)
}

// BuyFiat sends the buyer's card details for card-present acquiring.
func (c *Client) BuyFiat(ctx context.Context, req *BuyFiatRequest) (httpclient.Response, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	return c.post(ctx, buyPath, req.fields())
}

func (c *Client) GetAcquiring(ctx context.Context) (httpclient.Response, error) {
	return c.get(ctx, acquiringPath, c.merchantQuery())
}

func (c *Client) GetP2PInfo(ctx context.Context) (httpclient.Response, error) {
	return c.get(ctx, p2pInfoPath, c.merchantQuery())
}

// GetPaymentCredentials returns the requisites to pay the fiat part to.
func (c *Client) GetPaymentCredentials(ctx context.Context) (httpclient.Response, error) {
	return c.get(ctx, paymentCredentialsPath, c.merchantQuery())
}

func (c *Client) GetCryptoAddress(ctx context.Context) (httpclient.Response, error) {
	return c.get(ctx, cryptoAddressPath, c.merchantQuery())
}

// GetHistory lists payments in wallet (rub, eur, usdt) between from and to,
// both inclusive, at day precision.
func (c *Client) GetHistory(ctx context.Context, wallet string, from time.Time, to time.Time) (httpclient.Response, error) {
	query := map[string]string{
		"wallet": wallet,
		"from":   client.FormatValue(from),
		"to":     client.FormatValue(to),
	}
	return c.get(ctx, historyPath, query)
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) (httpclient.Response, error) {
	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		slog.Error("[WallexExchange] Request failed", "path", path, "error", err)
		return nil, err
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, fields client.Fields) (httpclient.Response, error) {
	resp, err := c.httpClient.PostForm(ctx, path, fields.Encode())
	if err != nil {
		slog.Error("[WallexExchange] Request failed", "path", path, "error", err)
		return nil, err
	}
	return resp, nil
}
