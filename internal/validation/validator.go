package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("decimal", validateDecimal)
	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("provider_name", validateProviderName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateDecimal validates that a string holds a parseable decimal amount
// with at most 2 fractional digits
func validateDecimal(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	return d.Exponent() >= -2
}

// validatePositiveDecimal validates that a string holds a decimal amount greater than 0
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// validateProviderName validates that a provider name is one of the supported aggregators
func validateProviderName(fl validator.FieldLevel) bool {
	provider := strings.ToLower(fl.Field().String())
	validProviders := map[string]bool{
		"plaid":  true,
		"basiq":  true,
		"manual": true,
	}
	return validProviders[provider]
}
