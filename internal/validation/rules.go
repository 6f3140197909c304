// Package validation provides custom validation rules for request DTOs.
package validation

import (
	"strconv"
	"strings"

	validation "github.com/jellydator/validation"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
	apperrors "github.com/allisson/strcalc/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Operation validates that a string names a supported calculator operation.
var Operation = validation.NewStringRuleWithError(
	func(s string) bool {
		return calculatorDomain.Operation(s).IsValid()
	},
	validation.NewError("validation_operation", "must be one of: add, subtract"),
)

// MaxBytes validates that a string is at most max bytes long. Unlike validation.Length it
// counts bytes, which is what bounds the work done by the tokenizer.
func MaxBytes(max int) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			return len(s) <= max
		},
		validation.NewError(
			"validation_max_bytes",
			"must be at most "+strconv.Itoa(max)+" bytes long",
		),
	)
}
