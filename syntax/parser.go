package syntax

import (
	"blinkc/ast"
	"blinkc/report"
)

// Parser parses a token sequence into an untyped AST.  It is a straightforward
// recursive descent parser: one method per grammar production, one token of
// lookahead for most decisions, two for the entity-assignment and named-entity
// forms.  The parser never recovers; the first error aborts the parse.
type Parser struct {
	// tokens is the full token sequence being parsed.
	tokens []*Token

	// pos is the index of the next unconsumed token.
	pos int
}

// Parse parses a token sequence into a module AST.  On failure the error is
// one of the ParseError variants.
func Parse(tokens []*Token) (*ast.Module, error) {
	p := &Parser{tokens: tokens}

	mod := &ast.Module{}
	for !p.atEnd() {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}

		mod.Items = append(mod.Items, item)
	}

	return mod, nil
}

// -----------------------------------------------------------------------------

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the next token without consuming it, or nil at the end of
// input.
func (p *Parser) peek() *Token {
	if p.atEnd() {
		return nil
	}

	return p.tokens[p.pos]
}

// peekAt returns the token at the given offset from the current position, or
// nil if that offset is past the end of input.
func (p *Parser) peekAt(offset int) *Token {
	if p.pos+offset >= len(p.tokens) {
		return nil
	}

	return p.tokens[p.pos+offset]
}

// advance consumes and returns the next token, or nil at the end of input.
func (p *Parser) advance() *Token {
	if p.atEnd() {
		return nil
	}

	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// check reports whether the next token has the given kind.
func (p *Parser) check(kind int) bool {
	tok := p.peek()
	return tok != nil && tok.Kind == kind
}

// checkAt reports whether the token at the given offset has the given kind.
func (p *Parser) checkAt(offset, kind int) bool {
	tok := p.peekAt(offset)
	return tok != nil && tok.Kind == kind
}

// consume consumes the next token if it has the given kind; otherwise it
// returns an UnexpectedTokenError (or UnexpectedEOFError at the end of input)
// naming what was expected.
func (p *Parser) consume(kind int, expected string) (*Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	if tok := p.peek(); tok != nil {
		return nil, &UnexpectedTokenError{
			Found:    tok.Value,
			Expected: expected,
			Position: tok.Span.Start,
		}
	}

	return nil, &UnexpectedEOFError{Expected: expected}
}

// prevEnd returns the end position of the most recently consumed token, or the
// given fallback if no token has been consumed.
func (p *Parser) prevEnd(fallback int) int {
	if p.pos == 0 || p.pos > len(p.tokens) {
		return fallback
	}

	return p.tokens[p.pos-1].Span.End
}

// spanFrom builds a span running from start to the end of the most recently
// consumed token.
func (p *Parser) spanFrom(start int) *report.TextSpan {
	return report.NewSpan(start, p.prevEnd(start))
}
