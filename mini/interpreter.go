package mini

import (
	"io"
	"maps"
	"os"
)

// Config controls interpreter construction.
type Config struct {
	// Output receives everything written by print statements.
	// Defaults to os.Stdout.
	Output io.Writer
}

// Interpreter executes parsed statements against one flat global scope
// and one flat function table. State persists across Evaluate and Run
// calls, so an interactive host can keep feeding lines to the same
// instance; independent instances never share state.
type Interpreter struct {
	out       io.Writer
	globals   map[string]Value
	functions map[string]*FunctionStmt
}

func NewInterpreter(cfg Config) *Interpreter {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &Interpreter{
		out:       cfg.Output,
		globals:   make(map[string]Value),
		functions: make(map[string]*FunctionStmt),
	}
}

// Run tokenizes, parses, and evaluates one source unit. Statements that
// completed before a failure keep their effects.
func (in *Interpreter) Run(source string) error {
	tokens, err := Tokenize(source)
	if err != nil {
		return err
	}
	stmts, err := Parse(tokens)
	if err != nil {
		return attachSource(err, source)
	}
	if err := in.Evaluate(stmts); err != nil {
		return attachSource(err, source)
	}
	return nil
}

// Evaluate executes statements in order, stopping at the first error.
// A top-level return terminates the unit; its value is discarded.
func (in *Interpreter) Evaluate(stmts []Statement) error {
	for _, stmt := range stmts {
		_, returned, err := in.execStatement(stmt)
		if err != nil {
			return err
		}
		if returned {
			return nil
		}
	}
	return nil
}

// Globals returns a snapshot of the current variable bindings.
func (in *Interpreter) Globals() map[string]Value {
	out := make(map[string]Value, len(in.globals))
	maps.Copy(out, in.globals)
	return out
}

// Functions returns the names of all registered functions.
func (in *Interpreter) Functions() []string {
	names := make([]string, 0, len(in.functions))
	for name := range in.functions {
		names = append(names, name)
	}
	return names
}
