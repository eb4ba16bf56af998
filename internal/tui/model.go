// Package tui is the terminal front end of the calculator. It owns one
// keypad.Session and runs every evaluation as a Bubble Tea command, so the
// session is only ever touched from Update.
package tui

import (
	"context"
	"errors"
	"fmt"

	"remote-calc/internal/keypad"
	"remote-calc/internal/observability"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// evaluationMsg carries a Calculator answer back into Update.
type evaluationMsg struct {
	gen    uint64
	result float64
	err    error
}

// Model is the root Bubble Tea model.
type Model struct {
	session *keypad.Session
	calc    keypad.Calculator
	ctx     context.Context
	cancel  context.CancelFunc

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	// notice explains the last refused keypress, if any.
	notice string
}

// New creates the root model around calc.
func New(calc keypad.Calculator) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		session: keypad.NewSession(),
		calc:    calc,
		ctx:     ctx,
		cancel:  cancel,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styleSpinner),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case evaluationMsg:
		if !m.session.Complete(msg.gen, msg.result, msg.err) {
			observability.Logger.Debug("discarding stale evaluation",
				zap.Uint64("generation", msg.gen),
				zap.Uint64("current_generation", m.session.Generation()),
			)
			return m, nil
		}
		if msg.err != nil {
			observability.Logger.Warn("evaluation failed",
				zap.Uint64("generation", msg.gen),
				zap.Error(msg.err),
			)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.session.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.session.Clear()
		return m, nil

	case key.Matches(msg, m.keys.Digit):
		m.refuse(m.session.InputDigit(msg.Runes[0]))
		return m, nil

	case key.Matches(msg, m.keys.Decimal):
		m.refuse(m.session.InputDecimal())
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m.operate(keypad.OpAdd)
	case key.Matches(msg, m.keys.Subtract):
		return m.operate(keypad.OpSubtract)
	case key.Matches(msg, m.keys.Multiply):
		return m.operate(keypad.OpMultiply)
	case key.Matches(msg, m.keys.Divide):
		return m.operate(keypad.OpDivide)
	case key.Matches(msg, m.keys.Equals):
		return m.operate(keypad.OpEquals)
	}

	return m, nil
}

func (m Model) operate(op keypad.Operator) (tea.Model, tea.Cmd) {
	ev, err := m.session.PerformOperation(op)
	if err != nil {
		m.refuse(err)
		return m, nil
	}
	if ev == nil {
		return m, nil
	}

	observability.Logger.Debug("evaluation dispatched",
		zap.Uint64("generation", ev.Generation),
		zap.String("operator", ev.Operator.String()),
		zap.Float64("a", ev.A),
		zap.Float64("b", ev.B),
	)
	return m, tea.Batch(m.evaluate(ev), m.spinner.Tick)
}

// evaluate runs ev off the event loop and reports back as an evaluationMsg.
func (m Model) evaluate(ev *keypad.Evaluation) tea.Cmd {
	ctx, calc := m.ctx, m.calc
	return func() tea.Msg {
		result, err := keypad.Evaluate(ctx, calc, ev)
		return evaluationMsg{gen: ev.Generation, result: result, err: err}
	}
}

func (m *Model) refuse(err error) {
	switch {
	case err == nil:
	case errors.Is(err, keypad.ErrBusy):
		m.notice = "waiting for result…"
	case errors.Is(err, keypad.ErrInvalidOperand):
		m.notice = "enter a number or clear"
	default:
		m.notice = err.Error()
	}
}

// View renders the calculator.
func (m Model) View() string {
	display := m.session.Display()

	box := styleDisplay.Render(display)
	if m.session.Phase() == keypad.PhaseErrored {
		box = styleError.Render(display)
	}

	indicator := " "
	if m.session.Busy() {
		indicator = m.spinner.View()
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, box, " ", indicator),
		stylePending.Render(m.pendingLine()),
	}
	if m.notice != "" {
		lines = append(lines, styleNotice.Render(m.notice))
	}
	lines = append(lines, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// pendingLine shows the stored operand and operator, e.g. "8 +".
func (m Model) pendingLine() string {
	first, ok := m.session.FirstOperand()
	if !ok {
		return " "
	}
	op, _ := m.session.Operator()
	if op == keypad.OpEquals {
		return " "
	}
	return fmt.Sprintf("%s %s", keypad.FormatResult(first), op)
}
