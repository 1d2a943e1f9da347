package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testRequest struct {
	Name  string `validate:"required"`
	Month int    `validate:"min=1,max=12"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name string
		req  *testRequest
		err  error
	}{
		{name: "valid", req: &testRequest{Name: "a", Month: 12}},
		{name: "missing name", req: &testRequest{Month: 1}, err: ErrEmptyField},
		{name: "month low", req: &testRequest{Name: "a"}, err: ErrInvalidField},
		{name: "month high", req: &testRequest{Name: "a", Month: 13}, err: ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidateStructRejectsNonStruct(t *testing.T) {
	assert.ErrorIs(t, ValidateStruct("nope"), ErrInvalidField)
}
