package components

import (
	"strconv"
	"strings"

	"github.com/abhisek/count/internal/ui/theme"
)

// AnswerButton is one numeric answer control.
type AnswerButton struct {
	Value    int
	Disabled bool
	Focused  bool
	Right    bool
}

// View renders the button.
func (b AnswerButton) View() string {
	label := strconv.Itoa(b.Value) + " "
	switch {
	case b.Right:
		return theme.ButtonRight.Render(label)
	case b.Disabled:
		return theme.ButtonDisabled.Render(label)
	case b.Focused:
		return theme.ButtonFocused.Render(label)
	}
	return theme.ButtonEnabled.Render(label)
}

// AnswerGrid lays out a contiguous range of answer buttons and tracks
// which one has keyboard focus.
type AnswerGrid struct {
	Min     int
	Max     int
	Columns int
	focus   int // index into Min..Max
}

// NewAnswerGrid creates a grid for lo..hi with focus on focusValue.
func NewAnswerGrid(lo, hi, columns, focusValue int) AnswerGrid {
	g := AnswerGrid{Min: lo, Max: hi, Columns: columns}
	g.FocusValue(focusValue)
	return g
}

// Len returns the number of buttons.
func (g AnswerGrid) Len() int {
	return g.Max - g.Min + 1
}

// Values returns every button value in order.
func (g AnswerGrid) Values() []int {
	out := make([]int, 0, g.Len())
	for v := g.Min; v <= g.Max; v++ {
		out = append(out, v)
	}
	return out
}

// Focused returns the value of the focused button.
func (g AnswerGrid) Focused() int {
	return g.Min + g.focus
}

// FocusValue moves focus to v, clamped to the grid.
func (g *AnswerGrid) FocusValue(v int) {
	g.focus = clamp(v-g.Min, 0, g.Len()-1)
}

// Move shifts focus by dx buttons and dy rows, clamped to the grid.
func (g *AnswerGrid) Move(dx, dy int) {
	g.focus = clamp(g.focus+dx+dy*g.Columns, 0, g.Len()-1)
}

// View renders the grid. disabled and right decide each button's look.
func (g AnswerGrid) View(disabled func(int) bool, right func(int) bool) string {
	var b strings.Builder
	for i, v := range g.Values() {
		if i > 0 && i%g.Columns == 0 {
			b.WriteString("\n")
		}
		btn := AnswerButton{
			Value:    v,
			Disabled: disabled(v),
			Focused:  i == g.focus,
			Right:    right(v),
		}
		b.WriteString(btn.View())
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
