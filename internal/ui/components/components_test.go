package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestAnswerGridRange(t *testing.T) {
	g := NewAnswerGrid(-20, 20, 11, 0)

	if g.Len() != 41 {
		t.Errorf("Len = %d, want 41", g.Len())
	}
	if g.Focused() != 0 {
		t.Errorf("Focused = %d, want 0", g.Focused())
	}
	vals := g.Values()
	if vals[0] != -20 || vals[len(vals)-1] != 20 {
		t.Errorf("Values span %d..%d, want -20..20", vals[0], vals[len(vals)-1])
	}
}

func TestAnswerGridMoveClamps(t *testing.T) {
	g := NewAnswerGrid(-20, 20, 11, 0)

	g.Move(1, 0)
	if g.Focused() != 1 {
		t.Errorf("right: Focused = %d, want 1", g.Focused())
	}
	g.Move(0, 1)
	if g.Focused() != 12 {
		t.Errorf("down: Focused = %d, want 12", g.Focused())
	}
	g.Move(0, 10)
	if g.Focused() != 20 {
		t.Errorf("clamped down: Focused = %d, want 20", g.Focused())
	}
	g.Move(-100, 0)
	if g.Focused() != -20 {
		t.Errorf("clamped left: Focused = %d, want -20", g.Focused())
	}
}

func TestAnswerGridViewRows(t *testing.T) {
	g := NewAnswerGrid(-20, 20, 11, 0)
	view := g.View(func(int) bool { return false }, func(int) bool { return false })

	if rows := strings.Count(view, "\n") + 1; rows != 4 {
		t.Errorf("rows = %d, want 4", rows)
	}
	for _, label := range []string{"-20", "0", "20"} {
		if !strings.Contains(view, label) {
			t.Errorf("grid missing button %s", label)
		}
	}
}

func TestAnswerInputAccepts(t *testing.T) {
	in := NewAnswerInput("", 4)

	if !in.Accepts("-") {
		t.Error("leading minus should be accepted")
	}
	if !in.Accepts("7") {
		t.Error("digits should be accepted")
	}
	if in.Accepts("x") {
		t.Error("letters should be rejected")
	}

	in.Model.SetValue("1")
	if in.Accepts("-") {
		t.Error("minus after a digit should be rejected")
	}
}

func TestAnswerInputDropsLetters(t *testing.T) {
	in := NewAnswerInput("", 4)
	in, _ = in.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if in.Value() != "" {
		t.Errorf("Value = %q, want empty", in.Value())
	}

	in.Model.SetValue("-12")
	n, err := in.NumericValue()
	if err != nil || n != -12 {
		t.Errorf("NumericValue = %d, %v; want -12", n, err)
	}

	in.Reset()
	if in.Value() != "" {
		t.Errorf("Value after Reset = %q", in.Value())
	}
}
