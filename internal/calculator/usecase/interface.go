// Package usecase exposes the calculator to transports (HTTP, CLI) as context-aware
// operations that can be decorated with metrics.
package usecase

import (
	"context"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
)

// CalculatorUseCase defines the calculator operations.
//
// Empty input always yields 0. Every failure wraps errors.ErrInvalidInput and is one of
// NonNumericOperandError, NegativeOperandError, ErrMalformedDeclaration or
// ErrUnsupportedOperation.
type CalculatorUseCase interface {
	// Add sums the operands of input.
	Add(ctx context.Context, input string) (int, error)
	// Subtract subtracts the later operands of input from the first one.
	Subtract(ctx context.Context, input string) (int, error)
	// Evaluate runs op against input and returns the full evaluation report.
	Evaluate(ctx context.Context, op calculatorDomain.Operation, input string) (*calculatorDomain.Evaluation, error)
}
