// Package keypad implements the calculator input state machine.
//
// A Session turns keypresses into operands and decides when an arithmetic
// evaluation is due. It never performs arithmetic itself: PerformOperation
// hands back an Evaluation describing the call to make, and the caller
// reports the outcome through Resolve or Reject once the Calculator answers.
// Completions carry the generation they were issued under, so an answer
// that arrives after Clear (or after a newer evaluation) is discarded.
//
// Session is not safe for concurrent use. It is meant to be owned by a
// single event loop that also receives the completions.
package keypad

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorDisplay is shown after a failed evaluation.
const ErrorDisplay = "Error"

const initialDisplay = "0"

// Phase is the state a Session is in.
type Phase int

const (
	// PhaseIdle: nothing stored since the last clear.
	PhaseIdle Phase = iota
	// PhaseAwaitingSecondOperand: an operator was just pressed; the next
	// digit starts a fresh operand.
	PhaseAwaitingSecondOperand
	// PhaseHasFirstOperand: a first operand is stored and the display
	// holds the operand being typed.
	PhaseHasFirstOperand
	// PhaseEvaluating: an Evaluation is outstanding.
	PhaseEvaluating
	// PhaseErrored: the last evaluation failed and the display shows
	// ErrorDisplay.
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingSecondOperand:
		return "awaiting_second_operand"
	case PhaseHasFirstOperand:
		return "has_first_operand"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseErrored:
		return "errored"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Evaluation is a calculation the caller must run on behalf of a Session.
type Evaluation struct {
	Generation uint64
	Operator   Operator // always arithmetic
	A          float64
	B          float64
}

// Session holds the input state of one calculator.
type Session struct {
	phase   Phase
	display string

	// first and op are unset only in PhaseIdle.
	first float64
	op    Operator

	generation uint64
}

// NewSession returns a session showing "0" with nothing stored.
func NewSession() *Session {
	return &Session{display: initialDisplay}
}

func (s *Session) Display() string { return s.display }

func (s *Session) Phase() Phase { return s.phase }

// Busy reports whether an evaluation is outstanding.
func (s *Session) Busy() bool { return s.phase == PhaseEvaluating }

// Generation identifies the most recent dispatch or clear.
func (s *Session) Generation() uint64 { return s.generation }

// FirstOperand returns the stored first operand, if any.
func (s *Session) FirstOperand() (float64, bool) {
	if s.phase == PhaseIdle {
		return 0, false
	}
	return s.first, true
}

// Operator returns the pending operator, if any.
func (s *Session) Operator() (Operator, bool) {
	if s.phase == PhaseIdle {
		return "", false
	}
	return s.op, true
}

// AwaitingSecondOperand reports whether the next digit or decimal point
// replaces the display instead of extending it.
func (s *Session) AwaitingSecondOperand() bool {
	switch s.phase {
	case PhaseAwaitingSecondOperand, PhaseEvaluating, PhaseErrored:
		return true
	}
	return false
}

// InputDigit handles a press of one of the keys 0-9.
func (s *Session) InputDigit(d rune) error {
	if d < '0' || d > '9' {
		return fmt.Errorf("%w: %q", ErrNotDigit, d)
	}
	if s.phase == PhaseEvaluating {
		return ErrBusy
	}

	if s.AwaitingSecondOperand() {
		s.display = string(d)
		s.phase = PhaseHasFirstOperand
		return nil
	}

	if s.display == initialDisplay {
		s.display = string(d)
	} else {
		s.display += string(d)
	}
	return nil
}

// InputDecimal handles a press of the decimal point key. An operand holds
// at most one point, so repeated presses are ignored.
func (s *Session) InputDecimal() error {
	if s.phase == PhaseEvaluating {
		return ErrBusy
	}

	if s.AwaitingSecondOperand() {
		s.display = "0."
		s.phase = PhaseHasFirstOperand
		return nil
	}

	if !strings.Contains(s.display, ".") {
		s.display += "."
	}
	return nil
}

// Clear resets the session. Any outstanding evaluation becomes stale.
func (s *Session) Clear() {
	*s = Session{
		display:    initialDisplay,
		generation: s.generation + 1,
	}
}

// PerformOperation handles an operator key.
//
// With no first operand stored, or when the stored operator is OpEquals,
// the display becomes the new first operand. Otherwise an Evaluation of the
// stored operator over the first operand and the display is returned and
// the session stays busy until it is resolved or rejected. In both cases
// next becomes the pending operator and the next digit starts a new operand.
//
// While busy, only the pending operator is replaced.
func (s *Session) PerformOperation(next Operator) (*Evaluation, error) {
	if _, err := ParseOperator(string(next)); err != nil {
		return nil, err
	}

	if s.phase == PhaseEvaluating {
		s.op = next
		return nil, nil
	}

	input, err := strconv.ParseFloat(s.display, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperand, s.display)
	}

	var ev *Evaluation
	if s.phase == PhaseIdle || !s.op.Arithmetic() {
		s.first = input
		s.phase = PhaseAwaitingSecondOperand
	} else {
		s.generation++
		ev = &Evaluation{
			Generation: s.generation,
			Operator:   s.op,
			A:          s.first,
			B:          input,
		}
		s.phase = PhaseEvaluating
	}

	s.op = next
	return ev, nil
}

// Resolve applies a successful evaluation. It reports false, leaving the
// session untouched, when gen is not the outstanding evaluation.
func (s *Session) Resolve(gen uint64, result float64) bool {
	if !s.outstanding(gen) {
		return false
	}

	s.display = FormatResult(result)
	s.first = result
	s.phase = PhaseAwaitingSecondOperand
	return true
}

// Reject applies a failed evaluation. The first operand keeps the value it
// had before the call.
func (s *Session) Reject(gen uint64) bool {
	if !s.outstanding(gen) {
		return false
	}

	s.display = ErrorDisplay
	s.phase = PhaseErrored
	return true
}

// Complete dispatches to Resolve or Reject depending on err.
func (s *Session) Complete(gen uint64, result float64, err error) bool {
	if err != nil {
		return s.Reject(gen)
	}
	return s.Resolve(gen, result)
}

func (s *Session) outstanding(gen uint64) bool {
	return s.phase == PhaseEvaluating && gen == s.generation
}

