package domain

// Evaluation is the outcome of one successful calculation.
type Evaluation struct {
	Operation Operation
	Result    int
	// Delimiters are the literals the body was split on.
	Delimiters DelimiterSpec
	// Tokens are the raw operand strings in input order, before trimming.
	Tokens []string
	// IgnoredOperands are the operands that exceeded OperandThreshold and were left out
	// of the arithmetic. The minuend of a subtraction is never listed here.
	IgnoredOperands []int
}

// EmptyEvaluation is the result for an empty input: zero, no tokens.
func EmptyEvaluation(op Operation) *Evaluation {
	return &Evaluation{
		Operation:       op,
		Result:          0,
		Delimiters:      DefaultDelimiterSpec(),
		Tokens:          []string{},
		IgnoredOperands: []int{},
	}
}
