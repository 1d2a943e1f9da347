package client

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the validate tags of a request struct. A missing
// required field wraps ErrEmptyField, any other broken rule ErrInvalidField.
func ValidateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return fmt.Errorf("%w: %s", ErrEmptyField, fe.Field())
	}
	return fmt.Errorf("%w: %s must satisfy %s=%s, got %v", ErrInvalidField, fe.Field(), fe.Tag(), fe.Param(), fe.Value())
}
