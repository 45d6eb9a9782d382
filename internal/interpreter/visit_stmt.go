/*
File   : lox/internal/interpreter/visit_stmt.go
*/
package interpreter

import (
	"fmt"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/callable"
	"github.com/loxlang/lox/internal/environment"
	"github.com/loxlang/lox/internal/values"
)

func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	v, err := in.eval(s.Expr)
	if err != nil {
		return err
	}
	if in.isREPL {
		switch s.Expr.(type) {
		case *ast.AssignExpr, *ast.CallExpr:
			// Assignments and calls are run for effect, not printed.
		default:
			fmt.Fprintln(in.output, stringify(v))
		}
	}
	return nil
}

func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := in.eval(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.output, stringify(v))
	return nil
}

func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	var value values.Value = values.Nil
	if s.Initializer != nil {
		v, err := in.eval(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	in.current.Bind(s.Name.Lexeme, value)
	return nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return in.execBlock(s.Stmts, environment.New(in.current))
}

func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := in.eval(s.Cond)
	if err != nil {
		return err
	}
	if values.Truthy(cond) {
		return in.exec(s.Then)
	}
	if s.Else != nil {
		return in.exec(s.Else)
	}
	return nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := in.eval(s.Cond)
		if err != nil {
			return err
		}
		if !values.Truthy(cond) {
			return nil
		}
		if err := in.exec(s.Body); err != nil {
			return err
		}
	}
}

func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	fn := &callable.Function{Decl: s, Closure: in.current}
	in.current.Bind(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) error {
	var value values.Value
	if s.Value != nil {
		v, err := in.eval(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{value: value}
}

func (in *Interpreter) VisitClassStmt(s *ast.ClassStmt) error {
	var superclass *callable.Class
	if s.Superclass != nil {
		v, err := in.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*callable.Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc

		// This frame holds the live superclass reference every method's
		// closure will capture; it's never mutated after being built.
		in.current = environment.New(in.current)
		in.current.Bind("super", superclass)
	}

	methods := make(map[string]*callable.Function)
	for _, method := range s.Methods {
		isInitializer := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = &callable.Function{Decl: method, Closure: in.current, IsInitializer: isInitializer}
	}

	class := &callable.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}

	if superclass != nil {
		in.current = in.current.Parent
	}

	in.current.Bind(s.Name.Lexeme, class)
	return nil
}
