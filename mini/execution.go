package mini

import "fmt"

// execStatement returns the statement's value contribution plus a flag
// reporting whether a return statement fired. The flag threads through
// every enclosing block so a return unwinds the rest of the function
// body up to the call boundary.
func (in *Interpreter) execStatement(stmt Statement) (Value, bool, error) {
	switch s := stmt.(type) {
	case *ExprStmt:
		_, err := in.evalExpression(s.Expr)
		return NewNone(), false, err
	case *PrintStmt:
		val, err := in.evalExpression(s.Expr)
		if err != nil {
			return NewNone(), false, err
		}
		fmt.Fprintln(in.out, val.String())
		return NewNone(), false, nil
	case *VarDeclStmt:
		if _, exists := in.globals[s.Name]; exists {
			return NewNone(), false, &NameError{Pos: s.Pos(), Msg: fmt.Sprintf("variable %q already declared", s.Name)}
		}
		val, err := in.evalExpression(s.Value)
		if err != nil {
			return NewNone(), false, err
		}
		in.globals[s.Name] = val
		return NewNone(), false, nil
	case *AssignStmt:
		if _, exists := in.globals[s.Name]; !exists {
			return NewNone(), false, &NameError{Pos: s.Pos(), Msg: fmt.Sprintf("assignment to undeclared variable %q", s.Name)}
		}
		val, err := in.evalExpression(s.Value)
		if err != nil {
			return NewNone(), false, err
		}
		in.globals[s.Name] = val
		return NewNone(), false, nil
	case *FunctionStmt:
		if _, exists := in.functions[s.Name]; exists {
			return NewNone(), false, &NameError{Pos: s.Pos(), Msg: fmt.Sprintf("function %q already defined", s.Name)}
		}
		in.functions[s.Name] = s
		return NewNone(), false, nil
	case *IfStmt:
		cond, err := in.evalExpression(s.Condition)
		if err != nil {
			return NewNone(), false, err
		}
		if cond.Truthy() {
			return in.execBlock(s.Consequent)
		}
		if s.Alternate != nil {
			return in.execBlock(s.Alternate)
		}
		return NewNone(), false, nil
	case *BlockStmt:
		return in.execBlock(s)
	case *ReturnStmt:
		val := NewNone()
		if s.Value != nil {
			var err error
			val, err = in.evalExpression(s.Value)
			if err != nil {
				return NewNone(), false, err
			}
		}
		return val, true, nil
	case *CommentStmt:
		return NewNone(), false, nil
	default:
		return NewNone(), false, &TypeError{Pos: stmt.Pos(), Msg: "unsupported statement"}
	}
}

func (in *Interpreter) execBlock(block *BlockStmt) (Value, bool, error) {
	for _, stmt := range block.Statements {
		val, returned, err := in.execStatement(stmt)
		if err != nil {
			return NewNone(), false, err
		}
		if returned {
			return val, true, nil
		}
	}
	return NewNone(), false, nil
}

func (in *Interpreter) evalExpression(expr Expression) (Value, error) {
	switch e := expr.(type) {
	case *Identifier:
		val, ok := in.globals[e.Name]
		if !ok {
			return NewNone(), &NameError{Pos: e.Pos(), Msg: fmt.Sprintf("undefined variable %q", e.Name)}
		}
		return val, nil
	case *IntegerLiteral:
		return NewInt(e.Value), nil
	case *FloatLiteral:
		return NewFloat(e.Value), nil
	case *StringLiteral:
		return NewString(e.Value), nil
	case *BoolLiteral:
		return NewBool(e.Value), nil
	case *NoneLiteral:
		return NewNone(), nil
	case *GroupingExpr:
		return in.evalExpression(e.Expr)
	case *UnaryExpr:
		return in.evalUnaryExpr(e)
	case *BinaryExpr:
		return in.evalBinaryExpr(e)
	case *CallExpr:
		return in.evalCallExpr(e)
	default:
		return NewNone(), &TypeError{Pos: expr.Pos(), Msg: "unsupported expression"}
	}
}
