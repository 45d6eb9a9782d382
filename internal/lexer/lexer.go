/*
File   : lox/internal/lexer/lexer.go

Package lexer performs lexical analysis (tokenization) of Lox source code.
It scans the source text in a single forward pass, producing a finite
ordered sequence of tokens terminated by a trailing EOF sentinel.
*/
package lexer

import (
	"fmt"

	"github.com/loxlang/lox/internal/token"
)

// Lexer holds the scanning state for one source string. It tracks both
// the start of the lexeme currently being built (start) and the next
// unconsumed byte (current), plus a running line counter for diagnostics.
type Lexer struct {
	src     string
	start   int
	current int
	line    int

	errors []string
}

// New creates a Lexer over src, ready to produce tokens from the first
// byte.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// HasErrors reports whether any scan error was recorded.
func (l *Lexer) HasErrors() bool { return len(l.errors) > 0 }

// Errors returns the scan errors recorded so far, in source order.
func (l *Lexer) Errors() []string { return l.errors }

// ScanTokens tokenizes the entire source and returns the full token
// stream, always ending in a single EOF token. Scan errors do not stop
// tokenization — scanning continues after each, matching §4.1's "recovered
// locally, scanning continues" rule; callers must check HasErrors before
// handing the result to the parser.
func (l *Lexer) ScanTokens() []token.Token {
	var tokens []token.Token
	for !l.atEnd() {
		l.start = l.current
		if tok, ok := l.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", l.line))
	return tokens
}

func (l *Lexer) atEnd() bool { return l.current >= len(l.src) }

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

// match consumes the next byte and returns true only if it equals
// expected; otherwise it leaves current untouched. Used for the
// one-or-two-character operators in §4.1.
func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) lexeme() string { return l.src[l.start:l.current] }

func (l *Lexer) reportError(msg string) {
	l.errors = append(l.errors, fmt.Sprintf("[line %d] Error: %s", l.line, msg))
}

// scanToken produces at most one token from the current position. The ok
// return is false when the lexeme was whitespace, a comment, or a scan
// error that was recovered from by skipping the offending byte — none of
// those produce a token.
func (l *Lexer) scanToken() (token.Token, bool) {
	c := l.advance()

	switch c {
	case '(':
		return l.simple(token.LeftParen), true
	case ')':
		return l.simple(token.RightParen), true
	case '{':
		return l.simple(token.LeftBrace), true
	case '}':
		return l.simple(token.RightBrace), true
	case ',':
		return l.simple(token.Comma), true
	case '.':
		return l.simple(token.Dot), true
	case '-':
		return l.simple(token.Minus), true
	case '+':
		return l.simple(token.Plus), true
	case ';':
		return l.simple(token.Semicolon), true
	case '*':
		return l.simple(token.Star), true

	case '!':
		if l.match('=') {
			return l.simple(token.BangEqual), true
		}
		return l.simple(token.Bang), true
	case '=':
		if l.match('=') {
			return l.simple(token.EqualEqual), true
		}
		return l.simple(token.Equal), true
	case '<':
		if l.match('=') {
			return l.simple(token.LessEqual), true
		}
		return l.simple(token.Less), true
	case '>':
		if l.match('=') {
			return l.simple(token.GreaterEqual), true
		}
		return l.simple(token.Greater), true

	case '/':
		if l.match('/') {
			// Line comment: consume up to (not including) the newline and
			// produce no token, so ScanTokens' next iteration handles the
			// newline (and any whitespace or comment after it) on its own
			// rather than treating it as part of this lexeme.
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
			return token.Token{}, false
		}
		return l.simple(token.Slash), true

	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		l.line++
		return token.Token{}, false

	case '"':
		return l.scanString()

	default:
		if isDigit(c) {
			return l.scanNumber()
		}
		if isAlpha(c) {
			return l.scanIdentifier()
		}
		l.reportError("Unexpected character.")
		return token.Token{}, false
	}
}

func (l *Lexer) simple(kind token.Kind) token.Token {
	return token.New(kind, l.lexeme(), l.line)
}

// scanString consumes a `"`-delimited string literal. Strings may span
// multiple lines; the line counter advances across embedded newlines so
// that later diagnostics still point at the right line, while the token
// itself carries the line its opening quote is on.
func (l *Lexer) scanString() (token.Token, bool) {
	startLine := l.line
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.atEnd() {
		l.reportError("Unterminated string.")
		return token.Token{}, false
	}
	l.advance() // closing quote
	value := l.src[l.start+1 : l.current-1]
	return token.NewLiteral(token.String, l.lexeme(), value, startLine), true
}

// scanNumber consumes a run of digits, then an optional fractional part.
// A trailing dot with no digits after it (e.g. "1.") is not consumed as
// part of the number — that requires two characters of lookahead so the
// dot isn't mistaken for a fractional part when it's actually a method
// call or statement terminator.
func (l *Lexer) scanNumber() (token.Token, bool) {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume the '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	var value float64
	fmt.Sscanf(l.lexeme(), "%g", &value)
	return token.NewLiteral(token.Number, l.lexeme(), value, l.line), true
}

func (l *Lexer) scanIdentifier() (token.Token, bool) {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	lexeme := l.lexeme()
	return token.New(token.Lookup(lexeme), lexeme, l.line), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
