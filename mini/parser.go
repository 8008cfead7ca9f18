package mini

import "strconv"

type parser struct {
	tokens []Token
	pos    int

	curToken  Token
	peekToken Token
}

// Parse converts a token sequence into an ordered statement list. It
// fails with a *SyntaxError on the first malformed construct; there is
// no resynchronization. Parsing is a pure function of its input, so the
// same sequence always yields a structurally identical tree.
func Parse(tokens []Token) ([]Statement, error) {
	p := &parser{tokens: tokens, peekToken: Token{Type: tokenEOF}}
	p.nextToken()
	p.nextToken()

	var stmts []Statement
	for p.curToken.Type != tokenEOF {
		if p.curToken.Type == tokenNewline {
			p.nextToken()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

func (p *parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	} else {
		p.peekToken = Token{Type: tokenEOF, Pos: p.curToken.Pos}
	}
}

const (
	lowestPrec = iota
	precOr
	precAnd
	precNot
	precEquality
	precComparison
	precSum
	precProduct
	precCall
)

var precedences = map[TokenType]int{
	tokenOr:       precOr,
	tokenAnd:      precAnd,
	tokenEQ:       precEquality,
	tokenNotEQ:    precEquality,
	tokenIs:       precEquality,
	tokenLT:       precComparison,
	tokenGT:       precComparison,
	tokenLTE:      precComparison,
	tokenGTE:      precComparison,
	tokenPlus:     precSum,
	tokenMinus:    precSum,
	tokenAsterisk: precProduct,
	tokenSlash:    precProduct,
	tokenLParen:   precCall,
}

func (p *parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

func (p *parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

// parseExpression implements precedence climbing. Every parse function
// leaves curToken on the last token of the construct it produced.
func (p *parser) parseExpression(precedence int) (Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for p.peekToken.Type != tokenEOF && precedence < p.peekPrecedence() {
		p.nextToken()
		if p.curToken.Type == tokenLParen {
			left, err = p.parseCallExpression(left)
		} else {
			left, err = p.parseInfixExpression(left)
		}
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *parser) parsePrefix() (Expression, error) {
	switch p.curToken.Type {
	case tokenIdent:
		return &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos}, nil
	case tokenInt:
		value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
		if err != nil {
			return nil, p.syntaxError("valid integer literal", p.curToken)
		}
		return &IntegerLiteral{Value: value, position: p.curToken.Pos}, nil
	case tokenFloat:
		value, err := strconv.ParseFloat(p.curToken.Literal, 64)
		if err != nil {
			return nil, p.syntaxError("valid float literal", p.curToken)
		}
		return &FloatLiteral{Value: value, position: p.curToken.Pos}, nil
	case tokenString:
		return &StringLiteral{Value: p.curToken.Literal, position: p.curToken.Pos}, nil
	case tokenBool:
		return &BoolLiteral{Value: p.curToken.Literal == "True", position: p.curToken.Pos}, nil
	case tokenNone:
		return &NoneLiteral{position: p.curToken.Pos}, nil
	case tokenNot:
		pos := p.curToken.Pos
		p.nextToken()
		right, err := p.parseExpression(precNot)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: tokenNot, Right: right, position: pos}, nil
	case tokenLParen:
		return p.parseGroupedExpression()
	default:
		return nil, p.syntaxError("expression", p.curToken)
	}
}

func (p *parser) parseGroupedExpression() (Expression, error) {
	pos := p.curToken.Pos
	p.nextToken()
	expr, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(tokenRParen, "')' after expression"); err != nil {
		return nil, err
	}
	return &GroupingExpr{Expr: expr, position: pos}, nil
}

func (p *parser) parseInfixExpression(left Expression) (Expression, error) {
	pos := p.curToken.Pos
	operator := p.curToken.Type
	precedence := p.curPrecedence()

	// `is not` reads as one negated identity operator.
	negated := false
	if operator == tokenIs && p.peekToken.Type == tokenNot {
		p.nextToken()
		negated = true
	}

	p.nextToken()
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}

	expr := Expression(&BinaryExpr{Left: left, Operator: operator, Right: right, position: pos})
	if negated {
		expr = &UnaryExpr{Operator: tokenNot, Right: expr, position: pos}
	}
	return expr, nil
}

func (p *parser) parseCallExpression(callee Expression) (Expression, error) {
	ident, ok := callee.(*Identifier)
	if !ok {
		return nil, p.syntaxError("function name before '('", p.curToken)
	}

	expr := &CallExpr{Name: ident.Name, position: ident.Pos()}

	if p.peekToken.Type == tokenRParen {
		p.nextToken()
		return expr, nil
	}

	p.nextToken()
	arg, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	expr.Args = append(expr.Args, arg)

	for p.peekToken.Type == tokenComma {
		p.nextToken()
		p.nextToken()
		arg, err := p.parseExpression(lowestPrec)
		if err != nil {
			return nil, err
		}
		expr.Args = append(expr.Args, arg)
	}

	if err := p.expectPeek(tokenRParen, "')' after arguments"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) expectPeek(tt TokenType, expected string) error {
	if p.peekToken.Type == tt {
		p.nextToken()
		return nil
	}
	return p.syntaxError(expected, p.peekToken)
}

func (p *parser) syntaxError(expected string, tok Token) error {
	return &SyntaxError{Pos: tok.Pos, Expected: expected, Got: tok.Type}
}
