package mini

import (
	"fmt"
	"strconv"
	"strings"
)

// LexError reports malformed source text: an unrecognized character, a
// tab in leading whitespace, bad indentation, an unterminated string, or
// a malformed float literal.
type LexError struct {
	Pos Position
	Msg string

	source string
}

func (e *LexError) Error() string {
	return renderError("lex error", e.Pos, e.Msg, e.source)
}

// SyntaxError reports the first malformed construct seen by the parser.
// Parsing aborts entirely; there is no resynchronization.
type SyntaxError struct {
	Pos      Position
	Expected string
	Got      TokenType

	source string
}

func (e *SyntaxError) Error() string {
	return renderError("syntax error", e.Pos, fmt.Sprintf("expected %s, got %s", e.Expected, tokenLabel(e.Got)), e.source)
}

// NameError reports an undefined reference or the redeclaration of an
// existing variable or function.
type NameError struct {
	Pos Position
	Msg string

	source string
}

func (e *NameError) Error() string {
	return renderError("name error", e.Pos, e.Msg, e.source)
}

// ArityError reports a call whose argument count does not match the
// parameter count of the target function.
type ArityError struct {
	Pos      Position
	Function string
	Want     int
	Got      int

	source string
}

func (e *ArityError) Error() string {
	msg := fmt.Sprintf("%s() takes %d argument(s) but %d were given", e.Function, e.Want, e.Got)
	return renderError("arity error", e.Pos, msg, e.source)
}

// TypeError reports an operator applied to incompatible operand types.
type TypeError struct {
	Pos Position
	Msg string

	source string
}

func (e *TypeError) Error() string {
	return renderError("type error", e.Pos, e.Msg, e.source)
}

// DivisionByZeroError reports division with a zero divisor.
type DivisionByZeroError struct {
	Pos Position

	source string
}

func (e *DivisionByZeroError) Error() string {
	return renderError("division by zero", e.Pos, "", e.source)
}

func renderError(kind string, pos Position, msg string, source string) string {
	var b strings.Builder
	if pos.Line > 0 {
		fmt.Fprintf(&b, "%s at %d:%d", kind, pos.Line, pos.Column)
	} else {
		b.WriteString(kind)
	}
	if msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	}
	writeCodeFrame(&b, source, pos)
	return b.String()
}

// writeCodeFrame appends a gutter-and-caret excerpt of the offending
// line. It is a no-op when the source text is unknown or the position
// falls outside it.
func writeCodeFrame(b *strings.Builder, source string, pos Position) {
	if source == "" || pos.Line <= 0 {
		return
	}
	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return
	}
	text := lines[pos.Line-1]

	col := pos.Column
	if col < 1 {
		col = 1
	}
	if width := len([]rune(text)); col > width+1 {
		col = width + 1
	}

	gutter := strconv.Itoa(pos.Line)
	b.WriteString("\n  --> line ")
	b.WriteString(gutter)
	b.WriteString(", column ")
	b.WriteString(strconv.Itoa(col))
	b.WriteString("\n ")
	b.WriteString(gutter)
	b.WriteString(" | ")
	b.WriteString(text)
	b.WriteString("\n ")
	b.WriteString(strings.Repeat(" ", len(gutter)))
	b.WriteString(" | ")
	b.WriteString(strings.Repeat(" ", col-1))
	b.WriteString("^")
}

// attachSource threads the original source text into an error so its
// message can include a caret code frame. Run uses it after each phase;
// callers that invoke the phases separately can skip it and still get
// positioned messages.
func attachSource(err error, source string) error {
	switch e := err.(type) {
	case *LexError:
		e.source = source
	case *SyntaxError:
		e.source = source
	case *NameError:
		e.source = source
	case *ArityError:
		e.source = source
	case *TypeError:
		e.source = source
	case *DivisionByZeroError:
		e.source = source
	}
	return err
}
