package mini

func (p *parser) parseStatement() (Statement, error) {
	switch p.curToken.Type {
	case tokenDef:
		return p.parseFunctionStatement()
	case tokenIf:
		return p.parseIfStatement()
	case tokenPrint:
		return p.parsePrintStatement()
	case tokenReturn:
		return p.parseReturnStatement()
	case tokenComment:
		return p.parseCommentStatement()
	case tokenIdent:
		// One token of lookahead decides between assignment, declaration,
		// and a plain expression statement.
		switch p.peekToken.Type {
		case tokenAssign:
			return p.parseAssignStatement()
		case tokenColon:
			return p.parseVarDeclStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *parser) parseExpressionStatement() (Statement, error) {
	pos := p.curToken.Pos
	expr, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr, position: pos}, nil
}

func (p *parser) parseAssignStatement() (Statement, error) {
	pos := p.curToken.Pos
	name := p.curToken.Literal

	p.nextToken() // '='
	p.nextToken()
	value, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &AssignStmt{Name: name, Value: value, position: pos}, nil
}

func (p *parser) parseVarDeclStatement() (Statement, error) {
	pos := p.curToken.Pos
	name := p.curToken.Literal

	p.nextToken() // ':'
	p.nextToken()
	if !isTypeKeyword(p.curToken.Type) {
		return nil, p.syntaxError("type name", p.curToken)
	}
	ty := p.curToken.Type

	if err := p.expectPeek(tokenAssign, "'=' after type annotation"); err != nil {
		return nil, err
	}
	p.nextToken()
	value, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &VarDeclStmt{Name: name, Type: ty, Value: value, position: pos}, nil
}

func (p *parser) parsePrintStatement() (Statement, error) {
	pos := p.curToken.Pos

	if err := p.expectPeek(tokenLParen, "'(' after print"); err != nil {
		return nil, err
	}
	p.nextToken()
	expr, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(tokenRParen, "')' after expression"); err != nil {
		return nil, err
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: expr, position: pos}, nil
}

func (p *parser) parseReturnStatement() (Statement, error) {
	pos := p.curToken.Pos

	if p.peekToken.Type == tokenNewline || p.peekToken.Type == tokenComment {
		if err := p.endStatement(); err != nil {
			return nil, err
		}
		return &ReturnStmt{position: pos}, nil
	}

	p.nextToken()
	value, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value, position: pos}, nil
}

func (p *parser) parseCommentStatement() (Statement, error) {
	pos := p.curToken.Pos
	text := p.curToken.Literal
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &CommentStmt{Text: text, position: pos}, nil
}

func (p *parser) parseIfStatement() (Statement, error) {
	pos := p.curToken.Pos

	p.nextToken()
	condition, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(tokenColon, "':' after condition"); err != nil {
		return nil, err
	}
	if err := p.expectLineBreak(); err != nil {
		return nil, err
	}
	p.nextToken()

	consequent, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &IfStmt{Condition: condition, Consequent: consequent, position: pos}

	if p.curToken.Type == tokenElse {
		if err := p.expectPeek(tokenColon, "':' after else"); err != nil {
			return nil, err
		}
		if err := p.expectLineBreak(); err != nil {
			return nil, err
		}
		p.nextToken()

		alternate, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Alternate = alternate
	}

	return stmt, nil
}

func (p *parser) parseFunctionStatement() (Statement, error) {
	pos := p.curToken.Pos

	if err := p.expectPeek(tokenIdent, "function name"); err != nil {
		return nil, err
	}
	name := p.curToken.Literal

	if err := p.expectPeek(tokenLParen, "'(' after function name"); err != nil {
		return nil, err
	}

	var params []Param
	if p.peekToken.Type == tokenRParen {
		p.nextToken()
	} else {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		for p.peekToken.Type == tokenComma {
			p.nextToken()
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}

		if err := p.expectPeek(tokenRParen, "')' after parameters"); err != nil {
			return nil, err
		}
	}

	if err := p.expectPeek(tokenArrow, "'->' after parameter list"); err != nil {
		return nil, err
	}
	p.nextToken()
	if !isTypeKeyword(p.curToken.Type) {
		return nil, p.syntaxError("return type", p.curToken)
	}
	returnTy := p.curToken.Type

	if err := p.expectPeek(tokenColon, "':' after return type"); err != nil {
		return nil, err
	}
	if err := p.expectLineBreak(); err != nil {
		return nil, err
	}
	p.nextToken()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FunctionStmt{Name: name, Params: params, ReturnTy: returnTy, Body: body, position: pos}, nil
}

func (p *parser) parseParam() (Param, error) {
	if err := p.expectPeek(tokenIdent, "parameter name"); err != nil {
		return Param{}, err
	}
	name := p.curToken.Literal

	if err := p.expectPeek(tokenColon, "':' after parameter name"); err != nil {
		return Param{}, err
	}
	p.nextToken()
	if !isTypeKeyword(p.curToken.Type) {
		return Param{}, p.syntaxError("parameter type", p.curToken)
	}
	return Param{Name: name, Type: p.curToken.Type}, nil
}

// parseBlock consumes one INDENT, the statements inside it, and the
// matching DEDENT. On return curToken is the first token after the
// block.
func (p *parser) parseBlock() (*BlockStmt, error) {
	for p.curToken.Type == tokenNewline {
		p.nextToken()
	}
	if p.curToken.Type != tokenIndent {
		return nil, p.syntaxError("indented block", p.curToken)
	}
	pos := p.curToken.Pos
	p.nextToken()

	var stmts []Statement
	for p.curToken.Type != tokenDedent {
		if p.curToken.Type == tokenEOF {
			return nil, p.syntaxError("dedent", p.curToken)
		}
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
	p.nextToken()

	return &BlockStmt{Statements: stmts, position: pos}, nil
}

// expectLineBreak requires a NEWLINE after a block header's ':', allowing
// a trailing comment in between.
func (p *parser) expectLineBreak() error {
	if p.peekToken.Type == tokenComment {
		p.nextToken()
	}
	return p.expectPeek(tokenNewline, "newline after ':'")
}

// endStatement requires exactly one NEWLINE terminator and steps past it.
// A trailing comment belongs to the line it ends, so one COMMENT token
// may sit between the statement and its NEWLINE.
func (p *parser) endStatement() error {
	if p.peekToken.Type == tokenComment {
		p.nextToken()
	}
	if err := p.expectPeek(tokenNewline, "newline"); err != nil {
		return err
	}
	p.nextToken()
	return nil
}
