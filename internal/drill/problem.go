package drill

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// ErrInvalidArgument is returned when an externally supplied problem is
// malformed. State is never touched when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDivideByZero is returned by Op.Apply for a zero divisor.
var ErrDivideByZero = errors.New("division by zero")

// Op is an arithmetic operator.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
)

// Ops is the fixed operator set.
var Ops = []Op{OpAdd, OpSub, OpMul, OpDiv}

// Valid reports whether o is in the operator set.
func (o Op) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// Apply computes a o b. Division truncates toward zero.
func (o Op) Apply(a, b int) (int, error) {
	switch o {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("unknown operator %q: %w", string(o), ErrInvalidArgument)
}

// Problem is one arithmetic question instance.
type Problem struct {
	// ID identifies this instance. A timer scheduled for one problem is
	// only honoured while the same ID is installed.
	ID uuid.UUID

	A  int
	B  int
	Op Op

	// Answer is the expected answer.
	Answer int

	// Label is the display text, e.g. "2 + 10".
	Label string
}

// NewProblem builds a Problem from caller-supplied fields. The answer is
// trusted; only the operator is checked.
func NewProblem(a, b int, op Op, label string, answer int) (Problem, error) {
	if !op.Valid() {
		return Problem{}, fmt.Errorf("operator %q: %w", string(op), ErrInvalidArgument)
	}
	return Problem{
		ID:     uuid.New(),
		A:      a,
		B:      b,
		Op:     op,
		Answer: answer,
		Label:  label,
	}, nil
}

// Generator produces new problems.
type Generator interface {
	Generate() Problem
}

// MaxOperand is the largest operand the random generator draws.
const MaxOperand = 9

// RandomGenerator draws both operands uniformly from 0..MaxOperand and
// always adds them.
type RandomGenerator struct {
	rnd *rand.Rand
}

var _ Generator = (*RandomGenerator)(nil)

// NewRandomGenerator returns a generator using src. A nil src seeds from
// the runtime.
func NewRandomGenerator(src rand.Source) *RandomGenerator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &RandomGenerator{rnd: rand.New(src)}
}

func (g *RandomGenerator) Generate() Problem {
	a := g.rnd.IntN(MaxOperand + 1)
	b := g.rnd.IntN(MaxOperand + 1)
	answer, _ := OpAdd.Apply(a, b)
	return Problem{
		ID:     uuid.New(),
		A:      a,
		B:      b,
		Op:     OpAdd,
		Answer: answer,
		Label:  fmt.Sprintf("%d %s %d", a, OpAdd, b),
	}
}
