package exchange

import (
	"strconv"

	"wallex/client"
	httpclient "wallex/http_client"
)

const (
	createPath             = "/exchange/create/"
	createDealPath         = "/exchange/create_deal/"
	offersPath             = "/exchange/offers"
	buyPath                = "/exchange/buy"
	confirmPath            = "/exchange/confirm"
	cancelPath             = "/exchange/cancel"
	acquiringPath          = "/exchange/acquiring"
	p2pInfoPath            = "/exchange/get"
	paymentCredentialsPath = "/exchange/get_payment_credentials"
	cryptoAddressPath      = "/exchange/address"
	historyPath            = "/exchange/history"
)

// Client covers the exchange flow: a payment request is created for a product,
// the buyer picks an offer, pays in fiat and the request is confirmed or
// cancelled. Ordering between calls is enforced by the gateway.
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

func (c *Client) merchantQuery() map[string]string {
	return map[string]string{"id": strconv.Itoa(c.config.MerchantId)}
}

func (c *Client) merchantPath(prefix string) string {
	return prefix + strconv.Itoa(c.config.MerchantId)
}
