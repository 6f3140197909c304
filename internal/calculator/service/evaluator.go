package service

import (
	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
)

type evaluator struct{}

// NewEvaluator creates the default pipeline evaluator.
func NewEvaluator() Evaluator {
	return &evaluator{}
}

// Evaluate runs the pipeline and returns the numeric result.
func (e *evaluator) Evaluate(op calculatorDomain.Operation, input string) (int, error) {
	return Evaluate(op, input)
}

// Explain runs the pipeline and returns the full evaluation report.
func (e *evaluator) Explain(op calculatorDomain.Operation, input string) (*calculatorDomain.Evaluation, error) {
	return Explain(op, input)
}

// Evaluate runs Resolve, Tokenize, Validate and the reducer for op, in that order.
// Empty input yields 0 without parsing anything.
func Evaluate(op calculatorDomain.Operation, input string) (int, error) {
	evaluation, err := Explain(op, input)
	if err != nil {
		return 0, err
	}
	return evaluation.Result, nil
}

// Explain is Evaluate with the intermediate values kept for reporting.
func Explain(op calculatorDomain.Operation, input string) (*calculatorDomain.Evaluation, error) {
	if _, err := calculatorDomain.ParseOperation(op.String()); err != nil {
		return nil, err
	}

	if input == "" {
		return calculatorDomain.EmptyEvaluation(op), nil
	}

	parsed, err := Resolve(input)
	if err != nil {
		return nil, err
	}

	tokens := Tokenize(parsed.Body, parsed.Spec)

	operands, err := ParseOperands(tokens)
	if err != nil {
		return nil, err
	}

	var result int
	var ignored []int
	switch op {
	case calculatorDomain.OperationSubtract:
		result, ignored = subtractOperands(operands)
	default:
		result, ignored = sumOperands(operands)
	}

	return &calculatorDomain.Evaluation{
		Operation:       op,
		Result:          result,
		Delimiters:      parsed.Spec,
		Tokens:          tokens,
		IgnoredOperands: ignored,
	}, nil
}
