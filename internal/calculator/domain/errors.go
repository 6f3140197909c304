// Package domain defines the calculator domain model: operations, delimiter specs,
// evaluation results and the closed set of calculation errors.
package domain

import (
	"strconv"
	"strings"

	"github.com/allisson/strcalc/internal/errors"
)

// Calculator error definitions.
//
// These wrap errors.ErrInvalidInput so transports can map every calculation failure
// uniformly while still inspecting the concrete variant.
var (
	// ErrMalformedDeclaration indicates a "//" prefix whose delimiter declaration cannot be read.
	ErrMalformedDeclaration = errors.Wrap(errors.ErrInvalidInput, "malformed delimiter declaration")

	// ErrUnsupportedOperation indicates an operation name other than add or subtract.
	ErrUnsupportedOperation = errors.Wrap(errors.ErrInvalidInput, "unsupported operation")
)

// Error kinds, used as stable codes by the HTTP API and as metric labels.
const (
	KindNonNumericOperand    = "non_numeric_operand"
	KindNegativeOperand      = "negative_operand"
	KindMalformedDeclaration = "malformed_declaration"
	KindUnsupportedOperation = "unsupported_operation"
)

// NonNumericOperandError lists every token that is not an integer after trimming,
// in input order.
type NonNumericOperandError struct {
	Values []string
}

// Error returns the category label followed by the offending values.
func (e *NonNumericOperandError) Error() string {
	return "non-numeric values are not allowed: " + strings.Join(e.Values, ", ")
}

// Unwrap allows errors.Is(err, errors.ErrInvalidInput).
func (e *NonNumericOperandError) Unwrap() error {
	return errors.ErrInvalidInput
}

// NegativeOperandError lists every negative operand, in input order.
type NegativeOperandError struct {
	Values []int
}

// Error returns the category label followed by the offending values.
func (e *NegativeOperandError) Error() string {
	return "negative numbers are not allowed: " + joinInts(e.Values)
}

// Unwrap allows errors.Is(err, errors.ErrInvalidInput).
func (e *NegativeOperandError) Unwrap() error {
	return errors.ErrInvalidInput
}

// ErrorKind classifies err into one of the Kind constants.
// Returns an empty string for errors outside the calculator domain.
func ErrorKind(err error) string {
	var nonNumeric *NonNumericOperandError
	var negative *NegativeOperandError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &nonNumeric):
		return KindNonNumericOperand
	case errors.As(err, &negative):
		return KindNegativeOperand
	case errors.Is(err, ErrMalformedDeclaration):
		return KindMalformedDeclaration
	case errors.Is(err, ErrUnsupportedOperation):
		return KindUnsupportedOperation
	default:
		return ""
	}
}

// OffendingValues returns the values carried by a NonNumericOperandError or
// NegativeOperandError as strings. Other errors yield nil.
func OffendingValues(err error) []string {
	var nonNumeric *NonNumericOperandError
	if errors.As(err, &nonNumeric) {
		return append([]string(nil), nonNumeric.Values...)
	}

	var negative *NegativeOperandError
	if errors.As(err, &negative) {
		values := make([]string, len(negative.Values))
		for i, v := range negative.Values {
			values[i] = strconv.Itoa(v)
		}
		return values
	}

	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
