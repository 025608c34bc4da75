package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textinput for typing a signed integer answer.
type AnswerInput struct {
	Model textinput.Model
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Accepts reports whether key may be typed into the input: digits
// anywhere, a minus sign only as the first character.
func (a AnswerInput) Accepts(key string) bool {
	if len(key) != 1 {
		return false
	}
	c := key[0]
	if c >= '0' && c <= '9' {
		return true
	}
	return c == '-' && a.Model.Value() == ""
}

// Update handles messages. Printable keys Accepts rejects are dropped.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !a.Accepts(key) {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the current input text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// NumericValue returns the input as an integer.
func (a AnswerInput) NumericValue() (int, error) {
	return strconv.Atoi(a.Model.Value())
}

// Reset clears the input.
func (a *AnswerInput) Reset() {
	a.Model.Reset()
}
