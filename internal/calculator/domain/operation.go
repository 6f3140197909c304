package domain

import (
	"fmt"
)

// Operation selects the reducer applied to the validated operands.
type Operation string

const (
	// OperationAdd sums every operand within the threshold.
	OperationAdd Operation = "add"
	// OperationSubtract subtracts every later operand within the threshold from the first one.
	OperationSubtract Operation = "subtract"
)

// String returns the wire name of the operation.
func (o Operation) String() string {
	return string(o)
}

// IsValid reports whether o is a supported operation.
func (o Operation) IsValid() bool {
	switch o {
	case OperationAdd, OperationSubtract:
		return true
	default:
		return false
	}
}

// ParseOperation converts a string to an Operation.
// Returns ErrUnsupportedOperation if the name is unknown.
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	if !op.IsValid() {
		return "", fmt.Errorf("%w: %q (valid options: add, subtract)", ErrUnsupportedOperation, name)
	}
	return op, nil
}
