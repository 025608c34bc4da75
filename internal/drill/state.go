// Package drill holds the arithmetic drill core: problem generation and
// the scoring state machine. Everything here is pure; timers and storage
// are driven from outside through the effects a transition returns.
package drill

import "strconv"

// Setting keys.
const (
	KeyCorrect  = "correct"
	KeyLanguage = "language"
)

// Phase is the conceptual state of the current problem.
type Phase int

const (
	PhaseAwaiting Phase = iota // No correct submission yet
	PhaseSolved                // Answered; an advance is pending
)

// State is the session state. Values are never mutated in place by
// Reduce, so a State held by a caller stays valid after later transitions.
type State struct {
	// Problem is nil only before the first problem is installed.
	Problem *Problem

	// Correct is the running correct-answer count.
	Correct int

	// Rejected holds wrong candidates for the current problem.
	Rejected AnswerSet

	// Solved is set once the current problem was answered correctly.
	Solved bool

	// RightAnswer is shown after the label when Solved.
	RightAnswer int

	Language Language
}

// NewState returns the initial state for a session seeded from stored values.
func NewState(correct int, lang Language) State {
	if correct < 0 {
		correct = 0
	}
	if lang != LangRU && lang != LangEN {
		lang = DefaultLanguage
	}
	return State{Correct: correct, Language: lang}
}

// Phase derives the current phase.
func (s State) Phase() Phase {
	if s.Solved {
		return PhaseSolved
	}
	return PhaseAwaiting
}

// Disabled reports whether the answer button for v is disabled.
func (s State) Disabled(v int) bool {
	return s.Solved || s.Rejected.Has(v)
}

// Snapshot is the JSON view of State exposed to automation.
type Snapshot struct {
	A              int    `json:"a"`
	B              int    `json:"b"`
	Op             string `json:"op"`
	Problem        string `json:"problem"`
	ExpectedAnswer int    `json:"expectedAnswer"`
	Correct        int    `json:"correct"`
	Rejected       []int  `json:"rejected"`
	Solved         bool   `json:"solved"`
	RightAnswer    *int   `json:"rightAnswer"`
	Language       string `json:"language"`
}

// Snapshot returns a copy of s suitable for serialization.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Correct:  s.Correct,
		Rejected: s.Rejected.Values(),
		Solved:   s.Solved,
		Language: s.Language.Token(),
	}
	if p := s.Problem; p != nil {
		snap.A = p.A
		snap.B = p.B
		snap.Op = string(p.Op)
		snap.Problem = p.Label
		snap.ExpectedAnswer = p.Answer
	}
	if s.Solved {
		v := s.RightAnswer
		snap.RightAnswer = &v
	}
	return snap
}

// formatCorrect renders the stored form of a count.
func formatCorrect(n int) string {
	return strconv.Itoa(n)
}

// parseCorrect reads a stored count. Garbage and negatives read as 0.
func parseCorrect(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
