/*
File   : lox/internal/resolver/visit_expr.go
*/
package resolver

import "github.com/loxlang/lox/internal/ast"

func (r *Resolver) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	if len(r.scopes) > 0 {
		if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
			r.errorAt(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.GetExpr) (interface{}, error) {
	// Properties are resolved dynamically at runtime — only the object
	// expression has a static lexical scope.
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.SetExpr) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.ThisExpr) (interface{}, error) {
	if r.currentClass == classNone {
		r.errorAt(e.Keyword, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *ast.SuperExpr) (interface{}, error) {
	switch r.currentClass {
	case classNone:
		r.errorAt(e.Keyword, "Can't use 'super' outside of a class.")
	case classClass:
		r.errorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.GroupingExpr) (interface{}, error) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}
