/*
File   : lox/internal/parser/helpers.go
*/
package parser

import (
	"fmt"

	"github.com/loxlang/lox/internal/token"
)

// parseError marks a recorded syntax error unwinding out of the current
// declaration via panic/recover. It carries no data of its own — the
// message was already appended to p.errors by errorAt before the panic,
// so declaration's recover only needs to tell a parseError apart from an
// unrelated programmer bug.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// match advances and returns true if the current token is any of kinds,
// otherwise leaves the cursor untouched.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to be kind, advancing past it. A
// mismatch is a syntax error that unwinds the current declaration via
// panic(parseError{}) so the caller's recover can synchronize.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt records a syntax error attributed to tok's line, in the same
// "[line L] Error<where>: message" shape diagnostics use for every other
// error kind, and returns a parseError for callers that need to unwind.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	p.errors = append(p.errors, fmt.Sprintf("[line %d] Error%s: %s", tok.Line, where, message))
	return parseError{}
}

// synchronize discards tokens until it reaches a plausible statement
// boundary, so one syntax error doesn't cascade into a run of bogus
// follow-on errors. It stops just past a semicolon, or just before a
// token that starts a new statement or declaration.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}
