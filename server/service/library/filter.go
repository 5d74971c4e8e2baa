package library

import (
	"github.com/google/cel-go/cel"
	"github.com/pkg/errors"

	"github.com/opencampus/librarymap/server/hours"
)

// newFilterEnv declares the variables a list filter expression may reference.
func newFilterEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("address", cel.StringType),
		cel.Variable("status", cel.StringType),
		cel.Variable("open", cel.BoolType),
		cel.Variable("has_coordinates", cel.BoolType),
	)
}

type filterProgram struct {
	program cel.Program
}

func compileFilter(expression string) (*filterProgram, error) {
	env, err := newFilterEnv()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create filter environment")
	}
	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Wrap(issues.Err(), "failed to compile filter")
	}
	program, err := env.Program(ast)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build filter program")
	}
	return &filterProgram{program: program}, nil
}

func (f *filterProgram) matches(view *View) (bool, error) {
	out, _, err := f.program.Eval(map[string]any{
		"name":            view.Name,
		"address":         view.Address,
		"status":          string(view.Status),
		"open":            view.Status != hours.StatusClosed,
		"has_coordinates": view.Latitude != nil && view.Longitude != nil,
	})
	if err != nil {
		return false, err
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, errors.Errorf("filter did not evaluate to a boolean: %v", out.Value())
	}
	return matched, nil
}
