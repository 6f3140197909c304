package service

import (
	"strconv"
	"strings"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
)

// Validate checks every token before any arithmetic runs.
//
// All tokens are scanned. Non-numeric tokens are reported first; negatives are only
// reported when every token is numeric.
func Validate(tokens []string) error {
	_, err := ParseOperands(tokens)
	return err
}

// ParseOperands trims and parses every token, returning the operands in input order or
// the aggregate validation error described by Validate.
func ParseOperands(tokens []string) ([]int, error) {
	operands := make([]int, 0, len(tokens))
	var invalidValues []string
	var negativeNumbers []int

	for _, token := range tokens {
		trimmed := strings.TrimSpace(token)

		number, err := strconv.Atoi(trimmed)
		if err != nil {
			invalidValues = append(invalidValues, trimmed)
			continue
		}

		if number < 0 {
			negativeNumbers = append(negativeNumbers, number)
		}
		operands = append(operands, number)
	}

	if len(invalidValues) > 0 {
		return nil, &calculatorDomain.NonNumericOperandError{Values: invalidValues}
	}

	if len(negativeNumbers) > 0 {
		return nil, &calculatorDomain.NegativeOperandError{Values: negativeNumbers}
	}

	return operands, nil
}
