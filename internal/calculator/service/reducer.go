package service

import (
	"strconv"
	"strings"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
)

// Sum adds every operand up to OperandThreshold. Larger operands contribute nothing.
// tokens must have passed Validate.
func Sum(tokens []string) int {
	result, _ := sumOperands(mustParse(tokens))
	return result
}

// Subtract starts from the first operand, whatever its size, and subtracts every later
// operand up to OperandThreshold. Larger later operands are skipped.
// tokens must have passed Validate.
//
// Unlike Sum, the first operand is never filtered: Subtract("1001,1") is 1000 while
// Sum("1001,1") is 1.
func Subtract(tokens []string) int {
	result, _ := subtractOperands(mustParse(tokens))
	return result
}

// sumOperands returns the total and the operands dropped by the threshold.
func sumOperands(operands []int) (int, []int) {
	ignored := []int{}
	result := 0

	for _, number := range operands {
		if number > calculatorDomain.OperandThreshold {
			ignored = append(ignored, number)
			continue
		}
		result += number
	}

	return result, ignored
}

// subtractOperands returns the difference and the operands dropped by the threshold.
func subtractOperands(operands []int) (int, []int) {
	ignored := []int{}
	if len(operands) == 0 {
		return 0, ignored
	}

	result := operands[0]
	for _, number := range operands[1:] {
		if number > calculatorDomain.OperandThreshold {
			ignored = append(ignored, number)
			continue
		}
		result -= number
	}

	return result, ignored
}

// mustParse converts validated tokens; a token that somehow fails to parse counts as 0.
func mustParse(tokens []string) []int {
	operands := make([]int, len(tokens))
	for i, token := range tokens {
		operands[i], _ = strconv.Atoi(strings.TrimSpace(token))
	}
	return operands
}
