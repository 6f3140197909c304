package domain

// OperandThreshold is the inclusive upper bound for operands that take part in the
// arithmetic. Larger operands are accepted by validation but dropped by the reducers.
const OperandThreshold = 1000

// DeclarationMarker prefixes a custom delimiter declaration ("//;\n1;2").
const DeclarationMarker = "//"

// Default delimiters used when the input carries no declaration.
const (
	DefaultDelimiterComma   = ","
	DefaultDelimiterNewline = "\n"
)

