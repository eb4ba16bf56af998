package keypad

import "errors"

var (
	ErrNotDigit        = errors.New("keypad: not a decimal digit")
	ErrBusy            = errors.New("keypad: evaluation in flight")
	ErrUnknownOperator = errors.New("keypad: unknown operator")
	ErrInvalidOperand  = errors.New("keypad: display is not a number")
)
