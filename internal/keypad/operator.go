package keypad

import "fmt"

// Operator is a calculator key that triggers PerformOperation.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpEquals   Operator = "="
)

// ParseOperator maps a key symbol to an Operator.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpEquals:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// Arithmetic reports whether op can be forwarded to a Calculator.
// OpEquals is only a transition label and never is.
func (op Operator) Arithmetic() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

func (op Operator) String() string {
	return string(op)
}
