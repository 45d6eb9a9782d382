/*
File   : lox/internal/parser/expression.go

The expression grammar, implemented as a precedence-climbing chain —
each level calls the next-tighter level for its operands, from loosest
(assignment) to tightest (primary). This mirrors the chain in §4.2
exactly rather than using a Pratt operator-precedence table, since the
full grammar is small and fixed.
*/
package parser

import (
	"fmt"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/token"
)

// expression -> assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment -> ( call "." )? IDENTIFIER "=" assignment | logic_or
//
// Parsed as a right-associative binary-looking production: parse the
// left side as a normal expression first, and only once "=" is seen,
// check whether that left side was a valid assignment target. Invalid
// targets are reported but do not stop parsing (the value has already
// been consumed either way).
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

// logic_or -> logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and -> equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality -> comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term -> factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor -> unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary -> ( "!" | "-" ) unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

// call -> primary ( "(" arguments? ")" | "." IDENTIFIER )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'.")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

// arguments -> expression ( "," expression )*
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d arguments.", maxArgs))
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

// primary -> NUMBER | STRING | "true" | "false" | "nil" | "this"
//          | "(" expression ")" | IDENTIFIER | "super" "." IDENTIFIER
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.LiteralExpr{Value: false}
	case p.match(token.True):
		return &ast.LiteralExpr{Value: true}
	case p.match(token.Nil):
		return &ast.LiteralExpr{Value: nil}
	case p.match(token.Number, token.String):
		return &ast.LiteralExpr{Value: p.previous().Literal}
	case p.match(token.Super):
		keyword := p.previous()
		p.consume(token.Dot, "Expect '.' after 'super'.")
		method := p.consume(token.Identifier, "Expect superclass method name.")
		return &ast.SuperExpr{Keyword: keyword, Method: method}
	case p.match(token.This):
		return &ast.ThisExpr{Keyword: p.previous()}
	case p.match(token.Identifier):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.GroupingExpr{Inner: expr}
	default:
		panic(p.errorAt(p.peek(), "Expect expression."))
	}
}
