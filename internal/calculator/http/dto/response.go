package dto

import (
	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
)

// CalculationResponse is returned by every successful calculator endpoint.
type CalculationResponse struct {
	Operation       string   `json:"operation"`
	Result          int      `json:"result"`
	DelimiterKind   string   `json:"delimiter_kind"`
	Delimiters      []string `json:"delimiters"`
	Tokens          []string `json:"tokens"`
	IgnoredOperands []int    `json:"ignored_operands"`
}

// MapEvaluationToResponse converts a domain evaluation to an API response.
func MapEvaluationToResponse(evaluation *calculatorDomain.Evaluation) CalculationResponse {
	ignored := evaluation.IgnoredOperands
	if ignored == nil {
		ignored = []int{}
	}

	tokens := evaluation.Tokens
	if tokens == nil {
		tokens = []string{}
	}

	return CalculationResponse{
		Operation:       evaluation.Operation.String(),
		Result:          evaluation.Result,
		DelimiterKind:   evaluation.Delimiters.Kind().String(),
		Delimiters:      evaluation.Delimiters.Delimiters(),
		Tokens:          tokens,
		IgnoredOperands: ignored,
	}
}
