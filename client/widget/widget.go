package widget

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wallex/client"
)

const widgetPath = "/widget/"

var ErrInvalidLink = errors.New("invalid widget link")

// Builder makes hosted checkout links. It never calls the gateway.
type Builder struct {
	config *client.Config
}

func NewBuilder(config *client.Config) (*Builder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Builder{config: config}, nil
}

// BuildLink returns {base}/widget/{merchantId}?data={payload} where payload is
// the signed product form, base64 encoded. The payload is not escaped again:
// the gateway reads it as produced.
func (b *Builder) BuildLink(product *client.Product) string {
	signed := product.Fields().Signed(b.config.Secret)
	data := base64.StdEncoding.EncodeToString([]byte(signed.Encode()))
	return b.prefix() + data
}

// DecodeLink recovers the signed fields embedded in a link made by BuildLink
// for the same merchant.
func (b *Builder) DecodeLink(link string) (client.Fields, error) {
	data, ok := strings.CutPrefix(link, b.prefix())
	if !ok {
		return nil, fmt.Errorf("%w: unexpected prefix", ErrInvalidLink)
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLink, err)
	}
	return client.ParseEncoded(string(raw))
}

func (b *Builder) prefix() string {
	return b.config.Url() + widgetPath + strconv.Itoa(b.config.MerchantId) + "?data="
}
