// Package mini implements the MiniPy execution engine: a lexer, a
// recursive-descent parser, and a tree-walking interpreter for a small
// indentation-structured scripting language. The language supports the
// following constructs:
//   - Typed variable declarations via `name: type = expr` and plain
//     reassignment via `name = expr`.
//   - Literals for ints, floats, strings, booleans, and None.
//   - Arithmetic, comparison, and equality expressions (+, -, *, /,
//     <, >, <=, >=, ==, !=, is).
//   - Logical operators (and/or/not) and parentheses for grouping.
//   - Conditionals via `if expr:` with an optional `else:` branch.
//   - Function definitions via `def name(params) -> type:` with
//     explicit `return`; calls pass arguments by value.
//   - `print(expr)` for output.
//
// Blocks are delimited by indentation in units of four spaces; tabs are
// rejected. Comments beginning with `#` run to the end of the line and
// are ignored. Variables live in one flat global scope; calls run
// against a copy of the current bindings, so callee writes never leak
// back to the caller.
package mini
