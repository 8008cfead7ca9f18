package mini

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// indentSpaces is the indentation unit. Block nesting must use exact
// multiples of it, and tabs are rejected in leading whitespace.
const indentSpaces = 4

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune

	tokens  []Token
	indents []int
}

// Tokenize converts source text into the full token sequence, including
// the synthetic INDENT/DEDENT markers derived from leading whitespace.
// The sequence always ends with a single EOF token. A *LexError is
// returned for malformed input.
func Tokenize(source string) ([]Token, error) {
	if source != "" && !strings.HasSuffix(source, "\n") {
		source += "\n"
	}
	l := &lexer{input: source, line: 1, indents: []int{0}}
	l.readRune()
	return l.run()
}

func (l *lexer) readRune() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w
	l.column++
	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

func (l *lexer) emit(tt TokenType, literal string, pos Position) {
	l.tokens = append(l.tokens, Token{Type: tt, Literal: literal, Pos: pos})
}

func (l *lexer) run() ([]Token, error) {
	atLineStart := true

	for l.ch != 0 {
		if atLineStart {
			blank, err := l.handleIndentation()
			if err != nil {
				return nil, err
			}
			if blank {
				continue
			}
			atLineStart = false
			if l.ch == 0 {
				break
			}
		}

		pos := Position{Line: l.line, Column: l.column}

		switch l.ch {
		case '\n':
			l.emit(tokenNewline, "\n", pos)
			l.readRune()
			atLineStart = true
		case ' ':
			l.readRune()
		case '(':
			l.emit(tokenLParen, "(", pos)
			l.readRune()
		case ')':
			l.emit(tokenRParen, ")", pos)
			l.readRune()
		case ':':
			l.emit(tokenColon, ":", pos)
			l.readRune()
		case ',':
			l.emit(tokenComma, ",", pos)
			l.readRune()
		case '+':
			l.emit(tokenPlus, "+", pos)
			l.readRune()
		case '*':
			l.emit(tokenAsterisk, "*", pos)
			l.readRune()
		case '/':
			l.emit(tokenSlash, "/", pos)
			l.readRune()
		case '-':
			if l.peekRune() == '>' {
				l.readRune()
				l.emit(tokenArrow, "->", pos)
			} else {
				l.emit(tokenMinus, "-", pos)
			}
			l.readRune()
		case '=':
			if l.peekRune() == '=' {
				l.readRune()
				l.emit(tokenEQ, "==", pos)
			} else {
				l.emit(tokenAssign, "=", pos)
			}
			l.readRune()
		case '!':
			if l.peekRune() != '=' {
				return nil, l.errorAt(pos, "'!' must be followed by '='")
			}
			l.readRune()
			l.emit(tokenNotEQ, "!=", pos)
			l.readRune()
		case '<':
			if l.peekRune() == '=' {
				l.readRune()
				l.emit(tokenLTE, "<=", pos)
			} else {
				l.emit(tokenLT, "<", pos)
			}
			l.readRune()
		case '>':
			if l.peekRune() == '=' {
				l.readRune()
				l.emit(tokenGTE, ">=", pos)
			} else {
				l.emit(tokenGT, ">", pos)
			}
			l.readRune()
		case '"':
			literal, err := l.readString(pos)
			if err != nil {
				return nil, err
			}
			l.emit(tokenString, literal, pos)
		case '#':
			l.emit(tokenComment, l.readComment(), pos)
		default:
			switch {
			case unicode.IsDigit(l.ch):
				literal, isFloat, err := l.readNumber(pos)
				if err != nil {
					return nil, err
				}
				if isFloat {
					l.emit(tokenFloat, literal, pos)
				} else {
					l.emit(tokenInt, literal, pos)
				}
			case isIdentifierStart(l.ch):
				literal := l.readIdentifier()
				l.emit(lookupIdent(literal), literal, pos)
			default:
				return nil, l.errorAt(pos, fmt.Sprintf("unexpected character %q", l.ch))
			}
		}
	}

	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(tokenDedent, "", Position{Line: l.line, Column: l.column})
	}
	l.emit(tokenEOF, "", Position{Line: l.line, Column: l.column})

	return l.tokens, nil
}

// handleIndentation runs at the start of every logical line. It consumes
// leading spaces, swallows blank lines, and emits INDENT/DEDENT tokens by
// comparing the new level against the indentation stack. The returned
// bool reports whether the line was blank (so the caller stays in
// line-start mode).
func (l *lexer) handleIndentation() (bool, error) {
	pos := Position{Line: l.line, Column: l.column}

	spaces := 0
	for l.ch == ' ' {
		spaces++
		l.readRune()
	}

	if l.ch == '\t' {
		return false, l.errorAt(Position{Line: l.line, Column: l.column}, "tabs are forbidden in indentation")
	}

	if l.ch == '\n' {
		// Whitespace-only line: no NEWLINE, no stack effect.
		l.readRune()
		return true, nil
	}
	if l.ch == 0 {
		return true, nil
	}

	level := spaces / indentSpaces
	if spaces%indentSpaces != 0 {
		return false, l.errorAt(pos, fmt.Sprintf("indentation of %d spaces is not a multiple of %d", spaces, indentSpaces))
	}

	current := l.indents[len(l.indents)-1]
	switch {
	case level > current:
		l.indents = append(l.indents, level)
		l.emit(tokenIndent, "", pos)
	case level < current:
		for level < current {
			l.indents = l.indents[:len(l.indents)-1]
			l.emit(tokenDedent, "", pos)
			current = l.indents[len(l.indents)-1]
		}
		if level != current {
			return false, l.errorAt(pos, "unindent does not match any outer indentation level")
		}
	}

	return false, nil
}

// readString consumes a double-quoted literal. There is no escape
// processing: every rune up to the closing quote is taken verbatim.
func (l *lexer) readString(start Position) (string, error) {
	l.readRune()
	begin := l.currentOffset()
	for l.ch != '"' {
		if l.ch == 0 {
			return "", l.errorAt(start, "unterminated string literal")
		}
		l.readRune()
	}
	literal := l.input[begin:l.currentOffset()]
	l.readRune()
	return literal, nil
}

func (l *lexer) readComment() string {
	begin := l.currentOffset()
	for l.peekRune() != '\n' && l.peekRune() != 0 {
		l.readRune()
	}
	literal := l.input[begin:l.offset]
	l.readRune()
	return literal
}

func (l *lexer) readNumber(start Position) (string, bool, error) {
	begin := l.currentOffset()
	for unicode.IsDigit(l.peekRune()) {
		l.readRune()
	}

	isFloat := false
	if l.peekRune() == '.' {
		l.readRune()
		if !unicode.IsDigit(l.peekRune()) {
			return "", false, l.errorAt(start, "expected digit after decimal point")
		}
		for unicode.IsDigit(l.peekRune()) {
			l.readRune()
		}
		isFloat = true
	}

	literal := l.input[begin:l.offset]
	l.readRune()
	return literal, isFloat, nil
}

func (l *lexer) readIdentifier() string {
	begin := l.currentOffset()
	for isIdentifierRune(l.peekRune()) {
		l.readRune()
	}
	literal := l.input[begin:l.offset]
	l.readRune()
	return literal
}

func (l *lexer) errorAt(pos Position, msg string) error {
	return &LexError{Pos: pos, Msg: msg, source: l.input}
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
