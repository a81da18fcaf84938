package utils

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// CurrencyPairTag is the binding tag backed by IsValidQuery.
const CurrencyPairTag = "currencypair"

// Letters and hyphen only. Zero-length input matches.
var currencyPairPattern = regexp.MustCompile(`^[A-Za-z-]*$`)

// IsValidQuery reports whether s contains only ASCII letters and hyphens.
func IsValidQuery(s string) bool {
	return currencyPairPattern.MatchString(s)
}

// RegisterValidations installs the currencypair tag on v.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation(CurrencyPairTag, func(fl validator.FieldLevel) bool {
		return IsValidQuery(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register %s validation: %w", CurrencyPairTag, err)
	}
	return nil
}
