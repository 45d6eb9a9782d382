/*
File   : lox/internal/interpreter/visit_expr.go
*/
package interpreter

import (
	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/callable"
	"github.com/loxlang/lox/internal/token"
	"github.com/loxlang/lox/internal/values"
)

func (in *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	return toValue(e.Value), nil
}

// toValue wraps the raw Go literal the parser attached (nil, bool,
// float64, or string) into this package's Value taxonomy.
func toValue(raw interface{}) values.Value {
	switch v := raw.(type) {
	case nil:
		return values.Nil
	case bool:
		return values.Bool(v)
	case float64:
		return values.Number(v)
	case string:
		return values.String(v)
	default:
		return values.Nil
	}
}

func (in *Interpreter) VisitGroupingExpr(e *ast.GroupingExpr) (interface{}, error) {
	return in.eval(e.Inner)
}

func (in *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Bang:
		return values.Bool(!values.Truthy(right)), nil
	case token.Minus:
		n, err := checkNumberOperand(e.Op, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	}
	panic("unreachable unary operator")
}

func (in *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.BangEqual:
		return values.Bool(!values.Equal(left, right)), nil
	case token.EqualEqual:
		return values.Bool(values.Equal(left, right)), nil

	case token.Greater:
		l, r, err := checkNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return values.Bool(l > r), nil
	case token.GreaterEqual:
		l, r, err := checkNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return values.Bool(l >= r), nil
	case token.Less:
		l, r, err := checkNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return values.Bool(l < r), nil
	case token.LessEqual:
		l, r, err := checkNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return values.Bool(l <= r), nil

	case token.Minus:
		l, r, err := checkNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil

	case token.Plus:
		if ls, ok := left.(values.String); ok {
			if rs, ok := right.(values.String); ok {
				return ls + rs, nil
			}
			return nil, newRuntimeError(e.Op, "Operands must be two numbers or two strings.")
		}
		if ln, ok := left.(values.Number); ok {
			if rn, ok := right.(values.Number); ok {
				return ln + rn, nil
			}
		}
		return nil, newRuntimeError(e.Op, "Operands must be two numbers or two strings.")

	case token.Slash:
		l, r, err := checkNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		if isDivideByZero(r) {
			return nil, newRuntimeError(e.Op, "Cannot divide by 0.")
		}
		return l / r, nil

	case token.Star:
		l, r, err := checkNumberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	}
	panic("unreachable binary operator")
}

func (in *Interpreter) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op.Kind == token.Or {
		if values.Truthy(left) {
			return left, nil
		}
	} else {
		if !values.Truthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	return in.lookUpVariable(e.Name, e)
}

func (in *Interpreter) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := in.locals[e]; ok {
		in.current.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if !in.globals.Assign(e.Name.Lexeme, value) {
		return nil, newRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
	}
	return value, nil
}

func (in *Interpreter) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]values.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(callable.Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return in.callValue(fn, e.Paren, args)
}

func (in *Interpreter) VisitGetExpr(e *ast.GetExpr) (interface{}, error) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*callable.Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Name, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) VisitSetExpr(e *ast.SetExpr) (interface{}, error) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*callable.Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, value)
	return value, nil
}

func (in *Interpreter) VisitThisExpr(e *ast.ThisExpr) (interface{}, error) {
	return in.lookUpVariable(e.Keyword, e)
}

func (in *Interpreter) VisitSuperExpr(e *ast.SuperExpr) (interface{}, error) {
	// There's no expression node the resolver can hang `this`'s distance
	// off of here, but the environment holding `this` is always the one
	// directly enclosed by the environment holding `super` (VisitClassStmt
	// sets up exactly that nesting), so distance-1 always reaches it.
	distance := in.locals[e]
	super := in.current.GetAt(distance, "super").(*callable.Class)
	this := in.current.GetAt(distance-1, "this").(*callable.Instance)

	method, ok := super.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(this), nil
}
