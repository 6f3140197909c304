// Package service implements the calculation pipeline: delimiter resolution,
// tokenization, whole-batch validation and the add/subtract reducers.
//
// Every function is pure. Values produced for one call are never shared with another,
// so the package is safe for concurrent use without locking.
package service

import (
	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
)

// Evaluator runs the full pipeline for one operation and input string.
type Evaluator interface {
	// Evaluate returns only the numeric result.
	Evaluate(op calculatorDomain.Operation, input string) (int, error)
	// Explain returns the result together with the delimiters, tokens and ignored operands.
	Explain(op calculatorDomain.Operation, input string) (*calculatorDomain.Evaluation, error)
}
