package mini

import (
	"errors"
	"fmt"
)

var errDivisionByZero = errors.New("division by zero")

func (in *Interpreter) evalUnaryExpr(e *UnaryExpr) (Value, error) {
	right, err := in.evalExpression(e.Right)
	if err != nil {
		return NewNone(), err
	}
	switch e.Operator {
	case tokenNot:
		return NewBool(!right.Truthy()), nil
	default:
		return NewNone(), &TypeError{Pos: e.Pos(), Msg: fmt.Sprintf("unsupported unary operator %s", tokenLabel(e.Operator))}
	}
}

func (in *Interpreter) evalBinaryExpr(e *BinaryExpr) (Value, error) {
	// and/or short-circuit: the right operand is only evaluated when the
	// left one does not decide the result.
	switch e.Operator {
	case tokenAnd:
		left, err := in.evalExpression(e.Left)
		if err != nil {
			return NewNone(), err
		}
		if !left.Truthy() {
			return NewBool(false), nil
		}
		right, err := in.evalExpression(e.Right)
		if err != nil {
			return NewNone(), err
		}
		return NewBool(right.Truthy()), nil
	case tokenOr:
		left, err := in.evalExpression(e.Left)
		if err != nil {
			return NewNone(), err
		}
		if left.Truthy() {
			return NewBool(true), nil
		}
		right, err := in.evalExpression(e.Right)
		if err != nil {
			return NewNone(), err
		}
		return NewBool(right.Truthy()), nil
	}

	left, err := in.evalExpression(e.Left)
	if err != nil {
		return NewNone(), err
	}
	right, err := in.evalExpression(e.Right)
	if err != nil {
		return NewNone(), err
	}

	var result Value
	switch e.Operator {
	case tokenEQ:
		return NewBool(looseEqual(left, right)), nil
	case tokenNotEQ:
		return NewBool(!looseEqual(left, right)), nil
	case tokenIs:
		return NewBool(left.Equal(right)), nil
	case tokenLT:
		result, err = compareValues(left, right, func(c int) bool { return c < 0 })
	case tokenGT:
		result, err = compareValues(left, right, func(c int) bool { return c > 0 })
	case tokenLTE:
		result, err = compareValues(left, right, func(c int) bool { return c <= 0 })
	case tokenGTE:
		result, err = compareValues(left, right, func(c int) bool { return c >= 0 })
	case tokenPlus:
		result, err = addValues(left, right)
	case tokenMinus:
		result, err = subtractValues(left, right)
	case tokenAsterisk:
		result, err = multiplyValues(left, right)
	case tokenSlash:
		result, err = divideValues(left, right)
	default:
		return NewNone(), &TypeError{Pos: e.Pos(), Msg: fmt.Sprintf("unsupported binary operator %s", tokenLabel(e.Operator))}
	}
	if err != nil {
		if errors.Is(err, errDivisionByZero) {
			return NewNone(), &DivisionByZeroError{Pos: e.Pos()}
		}
		return NewNone(), &TypeError{Pos: e.Pos(), Msg: err.Error()}
	}
	return result, nil
}

// looseEqual is the `==` relation: numbers compare by value across int
// and float; otherwise both kind and payload must match.
func looseEqual(left, right Value) bool {
	if left.isNumeric() && right.isNumeric() {
		if left.Kind() == KindInt && right.Kind() == KindInt {
			return left.Int() == right.Int()
		}
		return left.Float() == right.Float()
	}
	return left.Equal(right)
}

func compareValues(left, right Value, cmp func(int) bool) (Value, error) {
	switch {
	case left.Kind() == KindInt && right.Kind() == KindInt:
		l, r := left.Int(), right.Int()
		switch {
		case l < r:
			return NewBool(cmp(-1)), nil
		case l > r:
			return NewBool(cmp(1)), nil
		default:
			return NewBool(cmp(0)), nil
		}
	case left.isNumeric() && right.isNumeric():
		lf, rf := left.Float(), right.Float()
		switch {
		case lf < rf:
			return NewBool(cmp(-1)), nil
		case lf > rf:
			return NewBool(cmp(1)), nil
		default:
			return NewBool(cmp(0)), nil
		}
	case left.Kind() == KindString && right.Kind() == KindString:
		l, r := left.String(), right.String()
		switch {
		case l < r:
			return NewBool(cmp(-1)), nil
		case l > r:
			return NewBool(cmp(1)), nil
		default:
			return NewBool(cmp(0)), nil
		}
	default:
		return NewNone(), fmt.Errorf("unsupported comparison operands %s and %s", left.Kind(), right.Kind())
	}
}

// addValues: numeric addition, or string concatenation when either side
// is a string (the other side coerces to its display text).
func addValues(left, right Value) (Value, error) {
	switch {
	case left.Kind() == KindInt && right.Kind() == KindInt:
		return NewInt(left.Int() + right.Int()), nil
	case left.isNumeric() && right.isNumeric():
		return NewFloat(left.Float() + right.Float()), nil
	case left.Kind() == KindString || right.Kind() == KindString:
		return NewString(left.String() + right.String()), nil
	default:
		return NewNone(), fmt.Errorf("unsupported operand types for +: %s and %s", left.Kind(), right.Kind())
	}
}

func subtractValues(left, right Value) (Value, error) {
	switch {
	case left.Kind() == KindInt && right.Kind() == KindInt:
		return NewInt(left.Int() - right.Int()), nil
	case left.isNumeric() && right.isNumeric():
		return NewFloat(left.Float() - right.Float()), nil
	default:
		return NewNone(), fmt.Errorf("unsupported operand types for -: %s and %s", left.Kind(), right.Kind())
	}
}

func multiplyValues(left, right Value) (Value, error) {
	switch {
	case left.Kind() == KindInt && right.Kind() == KindInt:
		return NewInt(left.Int() * right.Int()), nil
	case left.isNumeric() && right.isNumeric():
		return NewFloat(left.Float() * right.Float()), nil
	default:
		return NewNone(), fmt.Errorf("unsupported operand types for *: %s and %s", left.Kind(), right.Kind())
	}
}

// divideValues is true division: the result is always a float, even for
// two int operands.
func divideValues(left, right Value) (Value, error) {
	if !left.isNumeric() || !right.isNumeric() {
		return NewNone(), fmt.Errorf("unsupported operand types for /: %s and %s", left.Kind(), right.Kind())
	}
	if right.Float() == 0 {
		return NewNone(), errDivisionByZero
	}
	return NewFloat(left.Float() / right.Float()), nil
}
