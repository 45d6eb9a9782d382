/*
File   : lox/internal/ast/expr.go

Package ast defines the Lox syntax tree: the Expr/Stmt node families from
spec §3.2, and the Visitor interfaces used to walk them. Nodes are always
constructed and passed around as pointers, which gives every expression
node the stable identity §3.2 requires — the resolver's side table keys
directly on the Expr interface value, and since that value always wraps a
pointer, two syntactically identical expressions parsed from different
source positions never collide.
*/
package ast

import "github.com/loxlang/lox/internal/token"

// Expr is implemented by every expression node. Accept dispatches to the
// matching visitor method, passing the node's own pointer so the visitor
// can use it as an identity key (the resolver's side table does exactly
// this).
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor is implemented by anything that walks expression nodes:
// the resolver (to annotate variable references) and the interpreter (to
// evaluate them).
type ExprVisitor interface {
	VisitLiteralExpr(e *LiteralExpr) (interface{}, error)
	VisitGroupingExpr(e *GroupingExpr) (interface{}, error)
	VisitUnaryExpr(e *UnaryExpr) (interface{}, error)
	VisitBinaryExpr(e *BinaryExpr) (interface{}, error)
	VisitLogicalExpr(e *LogicalExpr) (interface{}, error)
	VisitVariableExpr(e *VariableExpr) (interface{}, error)
	VisitAssignExpr(e *AssignExpr) (interface{}, error)
	VisitCallExpr(e *CallExpr) (interface{}, error)
	VisitGetExpr(e *GetExpr) (interface{}, error)
	VisitSetExpr(e *SetExpr) (interface{}, error)
	VisitThisExpr(e *ThisExpr) (interface{}, error)
	VisitSuperExpr(e *SuperExpr) (interface{}, error)
}

// LiteralExpr is a literal number, string, boolean, or nil value baked
// directly into the tree by the parser.
type LiteralExpr struct {
	Value interface{}
}

func (e *LiteralExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// GroupingExpr is a parenthesized sub-expression, kept as its own node so
// the AST preserves the source's explicit grouping.
type GroupingExpr struct {
	Inner Expr
}

func (e *GroupingExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// UnaryExpr is a prefix `-` or `!` applied to Right.
type UnaryExpr struct {
	Op    token.Token
	Right Expr
}

func (e *UnaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr is an arithmetic, comparison, or equality operator applied
// to two operands, both always evaluated (no short-circuiting — that's
// LogicalExpr's job).
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// LogicalExpr is `and`/`or`, which short-circuit and return the actual
// operand value rather than a coerced boolean.
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *LogicalExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// VariableExpr reads the binding named Name. The resolver annotates this
// node (via the interpreter's side table, keyed on this same pointer)
// with the lexical distance to its binding, or leaves it unannotated for
// a global reference.
type VariableExpr struct {
	Name token.Token
}

func (e *VariableExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// AssignExpr writes Value into the existing binding named Name and
// evaluates to Value.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// CallExpr invokes Callee with Args, evaluated left to right. Paren is
// kept for error reporting (it is the token whose line number a runtime
// call error is attributed to).
type CallExpr struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (e *CallExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// GetExpr reads the property Name off Object — either an instance field
// or a bound method.
type GetExpr struct {
	Object Expr
	Name   token.Token
}

func (e *GetExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGetExpr(e) }

// SetExpr writes Value into the field Name on Object.
type SetExpr struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *SetExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSetExpr(e) }

// ThisExpr reads the receiver bound in the enclosing method.
type ThisExpr struct {
	Keyword token.Token
}

func (e *ThisExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitThisExpr(e) }

// SuperExpr reads Method off the enclosing class's superclass, bound to
// the current `this`.
type SuperExpr struct {
	Keyword token.Token
	Method  token.Token
}

func (e *SuperExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSuperExpr(e) }
