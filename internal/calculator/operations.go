package calculator

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOperator = errors.New("unknown operator")
	ErrDivisionByZero  = errors.New("division by zero")
)

type operation struct {
	name    string
	compute func(a, b float64) (float64, error)
}

// operations maps each arithmetic symbol to its implementation. "=" is
// deliberately absent: it is a keypad transition, not an operation.
var operations = map[string]operation{
	"+": {name: "add", compute: func(a, b float64) (float64, error) {
		return a + b, nil
	}},
	"-": {name: "subtract", compute: func(a, b float64) (float64, error) {
		return a - b, nil
	}},
	"*": {name: "multiply", compute: func(a, b float64) (float64, error) {
		return a * b, nil
	}},
	"/": {name: "divide", compute: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("%w: %g / %g", ErrDivisionByZero, a, b)
		}
		return a / b, nil
	}},
}

func lookup(symbol string) (operation, error) {
	op, ok := operations[symbol]
	if !ok {
		return operation{}, fmt.Errorf("%w %q", ErrUnknownOperator, symbol)
	}
	return op, nil
}
