package payout

import (
	"context"
	"fmt"
	"log/slog"

	"wallex/client"
	httpclient "wallex/http_client"

	"github.com/shopspring/decimal"
)

const (
	listPath         = "/payout/list"
	newPath          = "/payout/new"
	toPayBalancePath = "/payout/to_pay_balance"
	balancePath      = "/payout/balance"
)

// Client sends payouts from the merchant balance. Every call signs its own
// field set; the sets differ per endpoint and must not be unified.
type Client struct {
	config     *client.Config
	httpClient *httpclient.HttpClient
}

func NewClient(config *client.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config:     config,
		httpClient: httpclient.NewHttpClient(config.Url(), config.ApiKey),
	}, nil
}

// GetAll lists payouts. Items carry id, status (see Status) and the data sent
// on creation.
func (c *Client) GetAll(ctx context.Context) (httpclient.Response, error) {
	req := &merchantRequest{
		Merchant: c.config.MerchantId,
		Sign:     c.sign(c.config.MerchantId),
	}
	return c.post(ctx, listPath, req)
}

// CryptoPay sends amount of currency to address.
func (c *Client) CryptoPay(ctx context.Context, address string, amount decimal.Decimal, currency string) (httpclient.Response, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: address", client.ErrEmptyField)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", client.ErrInvalidField)
	}
	req := &cryptoPayRequest{
		Amount:   amountNumber(amount),
		Currency: currency,
		Type:     TypeCrypto,
		Address:  address,
		Merchant: c.config.MerchantId,
	}
	req.Sign = c.sign(amount, currency, TypeCrypto, address, c.config.MerchantId)
	slog.Info("[WallexPayout] Crypto payout", "amount", amount.String(), "currency", currency)
	return c.post(ctx, newPath, req)
}

func (c *Client) FiatPay(ctx context.Context, fiat *FiatPayRequest) (httpclient.Response, error) {
	if err := fiat.validate(); err != nil {
		return nil, err
	}
	req := &fiatPayRequest{
		Merchant:    c.config.MerchantId,
		Amount:      amountNumber(fiat.Amount),
		Currency:    fiat.Currency,
		Bank:        fiat.Bank,
		Number:      fiat.Number,
		Month:       fiat.Month,
		Year:        fiat.Year,
		Type:        TypeFiat,
		Fiat:        fiat.Fiat,
		Cardholder:  fiat.Cardholder,
		DateOfBirth: fiat.DateOfBirth,
	}
	req.Sign = c.sign(
		c.config.MerchantId,
		fiat.Amount,
		fiat.Currency,
		fiat.Bank,
		fiat.Number,
		fiat.Month,
		fiat.Year,
		TypeFiat,
		fiat.Fiat,
		fiat.Cardholder,
		fiat.DateOfBirth,
	)
	slog.Info("[WallexPayout] Fiat payout", "amount", fiat.Amount.String(), "currency", fiat.Currency, "fiat", fiat.Fiat, "bank", fiat.Bank)
	return c.post(ctx, newPath, req)
}

// PayToBalance moves USDT to the payout balance.
func (c *Client) PayToBalance(ctx context.Context, amount decimal.Decimal) (httpclient.Response, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", client.ErrInvalidField)
	}
	req := &payToBalanceRequest{
		Amount:   amountNumber(amount),
		Merchant: c.config.MerchantId,
		Sign:     c.sign(c.config.MerchantId, amount),
	}
	return c.post(ctx, toPayBalancePath, req)
}

// Convert converts amount of the payout balance into currency (RUB, EUR).
func (c *Client) Convert(ctx context.Context, amount decimal.Decimal, currency string) (httpclient.Response, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", client.ErrInvalidField)
	}
	req := &convertRequest{
		Amount:   amountNumber(amount),
		Merchant: c.config.MerchantId,
		Currency: currency,
		Sign:     c.sign(c.config.MerchantId, amount, currency),
	}
	// conversion shares the endpoint, the currency field tells them apart
	return c.post(ctx, toPayBalancePath, req)
}

func (c *Client) GetBalance(ctx context.Context) (httpclient.Response, error) {
	req := &merchantRequest{
		Merchant: c.config.MerchantId,
		Sign:     c.sign(c.config.MerchantId),
	}
	return c.post(ctx, balancePath, req)
}

func (c *Client) sign(values ...any) string {
	rendered := make([]string, 0, len(values))
	for _, value := range values {
		rendered = append(rendered, client.FormatValue(value))
	}
	return c.config.Sign(rendered)
}

func (c *Client) post(ctx context.Context, path string, req any) (httpclient.Response, error) {
	resp, err := c.httpClient.PostJson(ctx, path, req)
	if err != nil {
		slog.Error("[WallexPayout] Request failed", "path", path, "error", err)
		return nil, err
	}
	return resp, nil
}
