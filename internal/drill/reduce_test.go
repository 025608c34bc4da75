package drill

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
)

func fixedProblem(t *testing.T, a, b int, op Op, label string, answer int) Problem {
	t.Helper()
	p, err := NewProblem(a, b, op, label, answer)
	if err != nil {
		t.Fatalf("NewProblem: %v", err)
	}
	return p
}

func withProblem(t *testing.T, s State, p Problem) State {
	t.Helper()
	next, effects := Reduce(s, Install{Problem: p})
	if len(effects) != 0 {
		t.Fatalf("Install effects = %v, want none", effects)
	}
	return next
}

func TestSubmitCorrect(t *testing.T) {
	s := withProblem(t, NewState(0, LangRU), fixedProblem(t, 2, 10, OpAdd, "2 + 10", 12))

	next, effects := Reduce(s, Submit{Candidate: 12})

	if next.Correct != 1 {
		t.Errorf("Correct = %d, want 1", next.Correct)
	}
	if !next.Solved {
		t.Error("expected Solved after correct answer")
	}
	if next.RightAnswer != 12 {
		t.Errorf("RightAnswer = %d, want 12", next.RightAnswer)
	}
	if next.Phase() != PhaseSolved {
		t.Errorf("Phase = %v, want PhaseSolved", next.Phase())
	}
	if len(effects) != 3 {
		t.Fatalf("effects = %d, want 3", len(effects))
	}
	save, ok := effects[0].(SaveSetting)
	if !ok || save.Key != KeyCorrect || save.Value != "1" {
		t.Errorf("effects[0] = %#v, want SaveSetting{correct 1}", effects[0])
	}
	sched, ok := effects[1].(ScheduleAdvance)
	if !ok || sched.Token != next.Problem.ID {
		t.Errorf("effects[1] = %#v, want ScheduleAdvance for current problem", effects[1])
	}
	if effects[2] != (SaveSetting{Key: KeyLanguage, Value: "ру"}) {
		t.Errorf("effects[2] = %#v, want SaveSetting{language ру}", effects[2])
	}
}

func TestSubmitCorrectSavesCurrentLanguage(t *testing.T) {
	s := withProblem(t, NewState(4, LangEN), fixedProblem(t, 3, 4, OpAdd, "3 + 4", 7))

	_, effects := Reduce(s, Submit{Candidate: 7})

	var saved []SaveSetting
	for _, eff := range effects {
		if save, ok := eff.(SaveSetting); ok {
			saved = append(saved, save)
		}
	}
	want := []SaveSetting{
		{Key: KeyCorrect, Value: "5"},
		{Key: KeyLanguage, Value: "en"},
	}
	if len(saved) != len(want) || saved[0] != want[0] || saved[1] != want[1] {
		t.Errorf("saved = %#v, want %#v", saved, want)
	}
}

func TestSubmitCorrectOnlyCreditedOnce(t *testing.T) {
	s := withProblem(t, NewState(0, LangRU), fixedProblem(t, 3, 4, OpAdd, "3 + 4", 7))

	for i := 0; i < 3; i++ {
		var effects []Effect
		s, effects = Reduce(s, Submit{Candidate: 7})
		if i > 0 && len(effects) != 0 {
			t.Errorf("submission %d produced effects %v", i+1, effects)
		}
	}
	if s.Correct != 1 {
		t.Errorf("Correct = %d after three correct submissions, want 1", s.Correct)
	}
}

func TestSubmitWrong(t *testing.T) {
	s := withProblem(t, NewState(0, LangRU), fixedProblem(t, 3, 4, OpAdd, "3 + 4", 7))

	next, effects := Reduce(s, Submit{Candidate: -7})
	if len(effects) != 0 {
		t.Errorf("effects = %v, want none", effects)
	}
	if next.Correct != 0 {
		t.Errorf("Correct = %d, want 0", next.Correct)
	}
	if next.Solved {
		t.Error("wrong answer must not solve the problem")
	}
	if !next.Rejected.Has(-7) || next.Rejected.Len() != 1 {
		t.Errorf("Rejected = %v, want [-7]", next.Rejected.Values())
	}

	again, _ := Reduce(next, Submit{Candidate: -7})
	if again.Rejected.Len() != 1 {
		t.Errorf("resubmitting a wrong answer grew Rejected to %d", again.Rejected.Len())
	}
}

func TestSubmitWrongDoesNotAlterPriorState(t *testing.T) {
	s := withProblem(t, NewState(0, LangRU), fixedProblem(t, 1, 1, OpAdd, "1 + 1", 2))

	first, _ := Reduce(s, Submit{Candidate: 5})
	second, _ := Reduce(first, Submit{Candidate: 6})

	if s.Rejected.Len() != 0 {
		t.Errorf("original state Rejected = %v, want empty", s.Rejected.Values())
	}
	if first.Rejected.Len() != 1 || first.Rejected.Has(6) {
		t.Errorf("first state Rejected = %v, want [5]", first.Rejected.Values())
	}
	if second.Rejected.Len() != 2 {
		t.Errorf("second state Rejected = %v, want [5 6]", second.Rejected.Values())
	}
}

func TestSubmitWithoutProblemIsIgnored(t *testing.T) {
	s := NewState(4, LangEN)
	next, effects := Reduce(s, Submit{Candidate: 0})
	if next.Correct != 4 || next.Rejected.Len() != 0 || len(effects) != 0 {
		t.Errorf("submit before first problem changed state: %+v %v", next, effects)
	}
}

func TestInstallClearsProblemState(t *testing.T) {
	s := withProblem(t, NewState(0, LangRU), fixedProblem(t, 1, 2, OpAdd, "1 + 2", 3))
	s, _ = Reduce(s, Submit{Candidate: 9})
	s, _ = Reduce(s, Submit{Candidate: 3})

	injected := fixedProblem(t, 10, 2, OpDiv, "2 / 10", 5)
	next := withProblem(t, s, injected)

	if next.Solved {
		t.Error("Install must clear Solved")
	}
	if next.Rejected.Len() != 0 {
		t.Errorf("Install must clear Rejected, got %v", next.Rejected.Values())
	}
	if next.RightAnswer != 0 {
		t.Errorf("RightAnswer = %d, want 0", next.RightAnswer)
	}
	if next.Correct != 1 {
		t.Errorf("Install must keep Correct, got %d", next.Correct)
	}
	if next.Problem.Label != "2 / 10" || next.Problem.Answer != 5 {
		t.Errorf("installed problem = %+v", next.Problem)
	}
}

func TestInstallMintsFreshID(t *testing.T) {
	p := fixedProblem(t, 1, 2, OpAdd, "1 + 2", 3)
	s := withProblem(t, NewState(0, LangRU), p)
	first := s.Problem.ID
	s = withProblem(t, s, p)
	if s.Problem.ID == first {
		t.Error("reinstalling a problem must mint a new ID")
	}
}

func TestAdvanceInstallsNextProblem(t *testing.T) {
	s := withProblem(t, NewState(0, LangRU), fixedProblem(t, 1, 2, OpAdd, "1 + 2", 3))
	s, effects := Reduce(s, Submit{Candidate: 3})
	token := effects[1].(ScheduleAdvance).Token

	next, _ := Reduce(s, Advance{Token: token, Next: fixedProblem(t, 4, 4, OpAdd, "4 + 4", 8)})
	if next.Solved {
		t.Error("advance must return to awaiting")
	}
	if next.Problem.Label != "4 + 4" {
		t.Errorf("Problem = %q, want 4 + 4", next.Problem.Label)
	}
}

func TestAdvanceStaleTokenIgnored(t *testing.T) {
	s := withProblem(t, NewState(0, LangRU), fixedProblem(t, 1, 2, OpAdd, "1 + 2", 3))
	s, effects := Reduce(s, Submit{Candidate: 3})
	token := effects[1].(ScheduleAdvance).Token

	// Injection supersedes the pending advance.
	s = withProblem(t, s, fixedProblem(t, 2, 10, OpAdd, "2 + 10", 12))
	s, _ = Reduce(s, Submit{Candidate: 1})

	next, _ := Reduce(s, Advance{Token: token, Next: fixedProblem(t, 0, 0, OpAdd, "0 + 0", 0)})
	if next.Problem.Label != "2 + 10" {
		t.Errorf("stale advance replaced problem with %q", next.Problem.Label)
	}
	if !next.Rejected.Has(1) {
		t.Error("stale advance must not clear Rejected")
	}
}

func TestAdvanceWhileAwaitingIgnored(t *testing.T) {
	s := withProblem(t, NewState(0, LangRU), fixedProblem(t, 1, 2, OpAdd, "1 + 2", 3))
	next, _ := Reduce(s, Advance{Token: s.Problem.ID, Next: fixedProblem(t, 5, 5, OpAdd, "5 + 5", 10)})
	if next.Problem.Label != "1 + 2" {
		t.Errorf("advance on an unsolved problem installed %q", next.Problem.Label)
	}

	next, _ = Reduce(s, Advance{Token: uuid.New()})
	if next.Problem.Label != "1 + 2" {
		t.Errorf("advance with unknown token installed %q", next.Problem.Label)
	}
}

func TestToggleLanguage(t *testing.T) {
	s := NewState(1, LangRU)

	en, effects := Reduce(s, ToggleLanguage{})
	if en.Language != LangEN {
		t.Errorf("Language = %q, want en", en.Language)
	}
	if len(effects) != 1 || effects[0] != (SaveSetting{Key: KeyLanguage, Value: "en"}) {
		t.Errorf("effects = %#v, want SaveSetting{language en}", effects)
	}

	ru, effects := Reduce(en, ToggleLanguage{})
	if ru.Language != LangRU {
		t.Errorf("Language = %q after two toggles, want ru", ru.Language)
	}
	if effects[0] != (SaveSetting{Key: KeyLanguage, Value: "ру"}) {
		t.Errorf("effects = %#v, want SaveSetting{language ру}", effects)
	}
	if ru.Correct != 1 {
		t.Errorf("toggle changed Correct to %d", ru.Correct)
	}
}

// Random sequences of candidates never credit more than once per problem
// and never reject the expected answer.
func TestSubmitSequenceProperties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	gen := NewRandomGenerator(rand.NewPCG(1, 2))

	s := NewState(0, LangRU)
	for round := 0; round < 50; round++ {
		s = withProblem(t, s, gen.Generate())
		before := s.Correct
		credited := false
		for i := 0; i < 20; i++ {
			c := rnd.IntN(41) - 20
			s, _ = Reduce(s, Submit{Candidate: c})
			if c == s.Problem.Answer {
				credited = true
			}
			if s.Rejected.Has(s.Problem.Answer) {
				t.Fatalf("round %d: Rejected contains expected answer %d", round, s.Problem.Answer)
			}
		}
		want := before
		if credited {
			want++
		}
		if s.Correct != want {
			t.Fatalf("round %d: Correct = %d, want %d", round, s.Correct, want)
		}
	}
}

func TestScenarioDefaultGenerator(t *testing.T) {
	gen := NewRandomGenerator(nil)
	s := withProblem(t, NewState(0, LangRU), gen.Generate())

	s, _ = Reduce(s, Submit{Candidate: s.Problem.A + s.Problem.B})
	if s.Correct != 1 || !s.Solved {
		t.Errorf("Correct = %d, Solved = %v; want 1, true", s.Correct, s.Solved)
	}
}
