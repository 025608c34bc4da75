package drill

import "github.com/google/uuid"

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// Submit offers a candidate answer for the current problem.
type Submit struct {
	Candidate int
}

// ToggleLanguage flips between Russian and English.
type ToggleLanguage struct{}

// Install installs a problem, either generated or injected.
type Install struct {
	Problem Problem
}

// Advance is the delayed follow-up to a correct answer. Next is installed
// only if Token still names the current, solved problem.
type Advance struct {
	Token uuid.UUID
	Next  Problem
}

func (Submit) isEvent()         {}
func (ToggleLanguage) isEvent() {}
func (Install) isEvent()        {}
func (Advance) isEvent()        {}

// Effect is a side effect requested by a transition. The caller runs it.
type Effect interface {
	isEffect()
}

// ScheduleAdvance asks for an Advance with Token after the advance delay.
type ScheduleAdvance struct {
	Token uuid.UUID
}

// SaveSetting asks for a persisted key to be written.
type SaveSetting struct {
	Key   string
	Value string
}

func (ScheduleAdvance) isEffect() {}
func (SaveSetting) isEffect()     {}

// Reduce applies ev to s and returns the next state plus any effects.
func Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Submit:
		return submit(s, ev.Candidate)
	case ToggleLanguage:
		s.Language = s.Language.Toggle()
		return s, []Effect{SaveSetting{Key: KeyLanguage, Value: s.Language.Token()}}
	case Install:
		return install(s, ev.Problem), nil
	case Advance:
		if s.Problem == nil || !s.Solved || s.Problem.ID != ev.Token {
			return s, nil
		}
		return install(s, ev.Next), nil
	}
	return s, nil
}

func submit(s State, candidate int) (State, []Effect) {
	if s.Problem == nil || s.Solved {
		return s, nil
	}
	if candidate != s.Problem.Answer {
		s.Rejected = s.Rejected.With(candidate)
		return s, nil
	}
	s.Correct++
	s.Solved = true
	s.RightAnswer = candidate
	return s, []Effect{
		SaveSetting{Key: KeyCorrect, Value: formatCorrect(s.Correct)},
		ScheduleAdvance{Token: s.Problem.ID},
		// A fresh store holds no language until the first score is saved.
		SaveSetting{Key: KeyLanguage, Value: s.Language.Token()},
	}
}

// install mints a fresh ID for every installation, so a timer scheduled
// for an earlier installation of the same problem never matches.
func install(s State, p Problem) State {
	p.ID = uuid.New()
	s.Problem = &p
	s.Rejected = AnswerSet{}
	s.Solved = false
	s.RightAnswer = 0
	return s
}
