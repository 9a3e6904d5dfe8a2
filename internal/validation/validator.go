package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

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

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

var (
	panPattern     = regexp.MustCompile(`^[A-Za-z0-9]{10}$`)
	aadhaarPattern = regexp.MustCompile(`^[0-9 ]{12,}$`)
)

// MaxCreditScore is the highest credit score the loan form accepts
const MaxCreditScore = 800

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("pan_number", validatePANNumber)
	_ = v.RegisterValidation("aadhaar_number", validateAadhaarNumber)
	_ = v.RegisterValidation("credit_score", validateCreditScore)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FailedRules validates s and returns the set of rule tags that failed.
// An empty set means s is valid.
func (v *Validator) FailedRules(s interface{}) map[string]bool {
	failed := make(map[string]bool)
	err := v.validate.Struct(s)
	if err == nil {
		return failed
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		failed["invalid"] = true
		return failed
	}
	for _, fe := range fieldErrs {
		failed[fe.Tag()] = true
	}
	return failed
}

// Custom validation functions

// validatePositiveAmount validates that an amount is greater than 0.
// Strings are parsed strictly as decimals.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	case reflect.String:
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && d.IsPositive()
	default:
		return false
	}
}

// validatePANNumber validates that a PAN is exactly 10 alphanumeric characters
func validatePANNumber(fl validator.FieldLevel) bool {
	return panPattern.MatchString(fl.Field().String())
}

// validateAadhaarNumber validates that an Aadhaar number has at least 12 digits
func validateAadhaarNumber(fl validator.FieldLevel) bool {
	return aadhaarPattern.MatchString(fl.Field().String())
}

// validateCreditScore validates a credit score in the range 0..800
func validateCreditScore(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		score := fl.Field().Int()
		return score >= 0 && score <= MaxCreditScore
	case reflect.Float32, reflect.Float64:
		score := fl.Field().Float()
		return score >= 0 && score <= MaxCreditScore
	default:
		return false
	}
}
