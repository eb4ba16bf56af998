package keypad

import (
	"context"
	"fmt"
	"unicode"
)

// Calculator performs the arithmetic a Session delegates.
type Calculator interface {
	Calculate(ctx context.Context, op Operator, a, b float64) (float64, error)
}

// Evaluate runs ev against calc.
func Evaluate(ctx context.Context, calc Calculator, ev *Evaluation) (float64, error) {
	return calc.Calculate(ctx, ev.Operator, ev.A, ev.B)
}

// Replay feeds keys into s one rune at a time, waiting for each evaluation
// before moving on. Digits, '.', the operator symbols and 'c' (clear) are
// recognised; whitespace is skipped. A failed evaluation is not an error
// here: it shows up as ErrorDisplay, as it would interactively.
func Replay(ctx context.Context, s *Session, calc Calculator, keys string) error {
	for i, r := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '0' && r <= '9':
			if err := s.InputDigit(r); err != nil {
				return fmt.Errorf("key %d %q: %w", i, r, err)
			}
		case r == '.':
			if err := s.InputDecimal(); err != nil {
				return fmt.Errorf("key %d %q: %w", i, r, err)
			}
		case r == 'c' || r == 'C':
			s.Clear()
		default:
			op, err := ParseOperator(string(r))
			if err != nil {
				return fmt.Errorf("key %d: %w", i, err)
			}

			ev, err := s.PerformOperation(op)
			if err != nil {
				return fmt.Errorf("key %d %q: %w", i, r, err)
			}
			if ev == nil {
				continue
			}

			result, err := Evaluate(ctx, calc, ev)
			s.Complete(ev.Generation, result, err)
		}
	}

	return nil
}
