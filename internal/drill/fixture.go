package drill

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Fixture is the wire form of an externally supplied problem.
type Fixture struct {
	A              int    `json:"a"`
	Op             string `json:"op"`
	B              int    `json:"b"`
	Problem        string `json:"problem"`
	ExpectedAnswer int    `json:"expectedAnswer"`
}

const fixtureSchemaURL = "schema://fixture.json"

var fixtureSchema = map[string]any{
	"type":     "object",
	"required": []any{"a", "op", "b", "problem", "expectedAnswer"},
	"properties": map[string]any{
		"a":              map[string]any{"type": "integer"},
		"b":              map[string]any{"type": "integer"},
		"expectedAnswer": map[string]any{"type": "integer"},
		"problem":        map[string]any{"type": "string"},
		"op": map[string]any{
			"type": "string",
			"enum": opEnum(),
		},
	},
}

func opEnum() []any {
	out := make([]any, 0, len(Ops))
	for _, op := range Ops {
		out = append(out, string(op))
	}
	return out
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func fixtureValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(fixtureSchemaURL, fixtureSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(fixtureSchemaURL)
	})
	return compiledSchema, compileErr
}

// ParseFixture validates raw JSON against the fixture schema and builds a
// Problem from it. Any failure wraps ErrInvalidArgument.
func ParseFixture(raw []byte) (Problem, error) {
	schema, err := fixtureValidator()
	if err != nil {
		return Problem{}, fmt.Errorf("compile fixture schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return Problem{}, fmt.Errorf("fixture is not JSON: %v: %w", err, ErrInvalidArgument)
	}
	if err := schema.Validate(doc); err != nil {
		return Problem{}, fmt.Errorf("fixture: %v: %w", err, ErrInvalidArgument)
	}

	var f Fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return Problem{}, fmt.Errorf("decode fixture: %v: %w", err, ErrInvalidArgument)
	}
	return f.ToProblem()
}

// ToProblem converts the fixture into a Problem.
func (f Fixture) ToProblem() (Problem, error) {
	return NewProblem(f.A, f.B, Op(f.Op), f.Problem, f.ExpectedAnswer)
}
