/*
File   : lox/internal/ast/stmt.go
*/
package ast

import "github.com/loxlang/lox/internal/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// StmtVisitor is implemented by the resolver and the interpreter.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
	VisitClassStmt(s *ClassStmt) error
}

// ExpressionStmt evaluates Expr and discards the result, except in REPL
// mode, where the interpreter prints the value of any Expr that is not an
// assignment or a call.
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expr and writes its Stringify-ed form to stdout.
type PrintStmt struct {
	Expr Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares Name in the current scope, bound to Initializer's
// value, or to nil if Initializer is nil (no initializer was written).
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope around Stmts.
type BlockStmt struct {
	Stmts []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt runs Then if Cond is truthy, else Else — which is nil when the
// source had no else clause.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt runs Body repeatedly while Cond is truthy. The parser
// desugars `for` loops down to this node plus a BlockStmt wrapper —
// there is no separate ForStmt node in the tree.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function (or, reused as-is, a class
// method body — the class's method list holds *FunctionStmt directly).
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt exits the enclosing function, producing Value's evaluation
// (or nil when Value is nil, i.e. a bare `return;`).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }

// ClassStmt declares a class. Superclass is a *VariableExpr naming the
// parent class, or nil when the class has none.
type ClassStmt struct {
	Name       token.Token
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func (s *ClassStmt) Accept(v StmtVisitor) error { return v.VisitClassStmt(s) }
