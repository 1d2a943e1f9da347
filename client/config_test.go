package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{"valid", &Config{MerchantId: 220, Secret: "k"}, false},
		{"nil", nil, true},
		{"zero merchant", &Config{Secret: "k"}, true},
		{"negative merchant", &Config{MerchantId: -1, Secret: "k"}, true},
		{"empty secret", &Config{MerchantId: 220}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigUrl(t *testing.T) {
	assert.Equal(t, DefaultBaseUrl, (&Config{}).Url())
	assert.Equal(t, "http://127.0.0.1:8080", (&Config{BaseUrl: "http://127.0.0.1:8080/"}).Url())
}

func TestPaymentMethod(t *testing.T) {
	assert.Equal(t, "sber", PAYMENT_METHOD_SBER.String())
	assert.Equal(t, 450, PAYMENT_METHOD_CARD_TO_CARD.Id())
	assert.Equal(t, "payment_method_1", PaymentMethod(1).String())
}
