/*
File   : lox/internal/parser/parser.go

Package parser implements a recursive-descent parser for Lox, turning the
lexer's token stream into the ast package's syntax tree. Like the lexer,
it does not stop at the first error: each malformed statement is
reported and then synchronized past, so a single parse can surface every
syntax error in a source file at once.
*/
package parser

import (
	"fmt"

	"github.com/loxlang/lox/internal/ast"
	"github.com/loxlang/lox/internal/token"
)

const maxArgs = 255

// Parser holds the token stream and current read position.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []string
}

// New creates a Parser over a complete token stream (as produced by
// lexer.ScanTokens, including its trailing EOF).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether any syntax error was recorded.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Errors returns the syntax errors recorded so far, in source order.
func (p *Parser) Errors() []string { return p.errors }

// Parse parses an entire program: a sequence of declarations up to EOF.
// Statements that fail to parse are skipped (after synchronizing) rather
// than aborting the whole parse, so Errors() may report more than one
// problem from a single call.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// declaration -> classDecl | funDecl | varDecl | statement
func (p *Parser) declaration() ast.Stmt {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				return
			}
			panic(r)
		}
	}()

	if p.match(token.Class) {
		return p.classDeclaration()
	}
	if p.match(token.Fun) {
		return p.function("function")
	}
	if p.match(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

// classDecl -> "class" IDENTIFIER ( "<" IDENTIFIER )? "{" function* "}"
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect class name.")

	var superclass *ast.VariableExpr
	if p.match(token.Less) {
		superName := p.consume(token.Identifier, "Expect superclass name.")
		superclass = &ast.VariableExpr{Name: superName}
	}

	p.consume(token.LeftBrace, "Expect '{' before class body.")

	var methods []*ast.FunctionStmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(token.RightBrace, "Expect '}' after class body.")
	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// function -> IDENTIFIER "(" parameters? ")" block
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.Identifier, "Expect "+kind+" name.")
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d parameters.", maxArgs))
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")

	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl -> "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")
	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: init}
}

// statement -> exprStmt | forStmt | ifStmt | printStmt | returnStmt
//            | whileStmt | block
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Stmts: p.block()}
	default:
		return p.expressionStatement()
	}
}

// forStmt -> "for" "(" ( varDecl | exprStmt | ";" )
//            expression? ";" expression? ")" statement
//
// Desugared directly into an initializer block wrapping a WhileStmt — the
// tree has no dedicated for-loop node, matching §4.2's grammar.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: increment}}}
	}
	if condition == nil {
		condition = &ast.LiteralExpr{Value: true}
	}
	body = &ast.WhileStmt{Cond: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{initializer, body}}
	}
	return body
}

// ifStmt -> "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBranch}
}

// printStmt -> "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: value}
}

// returnStmt -> "return" expression? ";"
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// whileStmt -> "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

// block -> "{" declaration* "}"
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return stmts
}

// exprStmt -> expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}
