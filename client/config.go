package client

import (
	"errors"
	"fmt"
	"strings"

	"wallex/signer"
)

const DefaultBaseUrl = "https://wallex.online"

var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyField      = errors.New("required field is empty")
	ErrInvalidField    = errors.New("invalid field value")
)

// Config holds the merchant credentials issued by the gateway. Secret is only
// ever used as signing material and is never sent. ApiKey, when set, travels
// as the X-Api-Key header and has no part in signing.
type Config struct {
	MerchantId int
	Secret     string
	ApiKey     string
	BaseUrl    string
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if c.MerchantId <= 0 {
		return fmt.Errorf("%w: merchant id must be positive, got %d", ErrInvalidConfig, c.MerchantId)
	}
	if c.Secret == "" {
		return fmt.Errorf("%w: secret is empty", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) Url() string {
	if c.BaseUrl == "" {
		return DefaultBaseUrl
	}
	return strings.TrimRight(c.BaseUrl, "/")
}

func (c *Config) Sign(values []string) string {
	return signer.Sign(values, c.Secret)
}
