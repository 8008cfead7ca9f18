package mini

import (
	"fmt"
	"maps"
)

// evalCallExpr implements call-by-value over a copied flat scope.
// Arguments are evaluated in the caller's bindings; the callee runs
// against a copy of those bindings with its parameters bound on top, and
// the caller's map is restored afterwards, so callee-local state never
// leaks back.
func (in *Interpreter) evalCallExpr(e *CallExpr) (Value, error) {
	fn, ok := in.functions[e.Name]
	if !ok {
		return NewNone(), &NameError{Pos: e.Pos(), Msg: fmt.Sprintf("undefined function %q", e.Name)}
	}

	args := make([]Value, len(e.Args))
	for i, argExpr := range e.Args {
		val, err := in.evalExpression(argExpr)
		if err != nil {
			return NewNone(), err
		}
		args[i] = val
	}

	if len(args) != len(fn.Params) {
		return NewNone(), &ArityError{Pos: e.Pos(), Function: fn.Name, Want: len(fn.Params), Got: len(args)}
	}

	saved := in.globals
	frame := maps.Clone(in.globals)
	for i, param := range fn.Params {
		frame[param.Name] = args[i]
	}
	in.globals = frame

	result, returned, err := in.execBlock(fn.Body)
	in.globals = saved

	if err != nil {
		return NewNone(), err
	}
	if !returned {
		return NewNone(), nil
	}
	return result, nil
}
