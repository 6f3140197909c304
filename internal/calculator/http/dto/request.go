// Package dto provides data transfer objects for calculator HTTP requests and responses.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/strcalc/internal/validation"
)

// CalculateRequest is the body of the add and subtract endpoints.
// A null or missing input is treated as the empty string.
type CalculateRequest struct {
	Input *string `json:"input"`
}

// Validate checks the input size.
func (r *CalculateRequest) Validate(maxInputLength int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Input, customValidation.MaxBytes(maxInputLength)),
	)
}

// InputValue returns the input, or "" when absent.
func (r *CalculateRequest) InputValue() string {
	if r.Input == nil {
		return ""
	}
	return *r.Input
}

// EvaluateRequest is the body of the generic evaluate endpoint.
type EvaluateRequest struct {
	Operation string  `json:"operation"` // "add" or "subtract"
	Input     *string `json:"input"`
}

// Validate checks the operation name and input size.
func (r *EvaluateRequest) Validate(maxInputLength int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Operation,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Operation,
		),
		validation.Field(&r.Input, customValidation.MaxBytes(maxInputLength)),
	)
}

// InputValue returns the input, or "" when absent.
func (r *EvaluateRequest) InputValue() string {
	if r.Input == nil {
		return ""
	}
	return *r.Input
}
