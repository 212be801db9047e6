package syntax

import (
	"unicode"
	"unicode/utf8"

	"blinkc/report"
)

// Lexer scans BRL/BCL/BDL source text into a flat token sequence.  It is a
// single-pass state machine over the raw bytes: each call to scan consumes
// exactly one token (or skips trivia) and records the byte span the token
// covers.  Whitespace and comments are discarded.
type Lexer struct {
	// src is the full source text being scanned.
	src string

	// pos is the byte offset of the next unconsumed character.
	pos int

	// tokens is the accumulated output token sequence.
	tokens []*Token
}

// Tokenize scans the given source text and returns its tokens in order.  On
// failure the error is an *UnexpectedCharacterError or an
// *UnterminatedStringError.
func Tokenize(src string) ([]*Token, error) {
	l := &Lexer{src: src}

	for !l.atEnd() {
		l.skipTrivia()

		if l.atEnd() {
			break
		}

		if err := l.scan(); err != nil {
			return nil, err
		}
	}

	return l.tokens, nil
}

// -----------------------------------------------------------------------------

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

// peek returns the rune at the current position without consuming it.  It
// returns 0 at the end of input.
func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

// peekAt returns the byte at the given offset from the current position, or 0
// if that offset is past the end of input.  All multi-character tokens are
// ASCII so byte comparison suffices here.
func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}

	return l.src[l.pos+offset]
}

// skipTrivia consumes whitespace and comments until the next token start.
func (l *Lexer) skipTrivia() {
	for !l.atEnd() {
		switch {
		case unicode.IsSpace(l.peek()):
			l.pos++
		case l.peekAt(0) == '/' && l.peekAt(1) == '/':
			for !l.atEnd() && l.peekAt(0) != '\n' {
				l.pos++
			}
		case l.peekAt(0) == '/' && l.peekAt(1) == '*':
			l.pos += 2
			for !l.atEnd() && !(l.peekAt(0) == '*' && l.peekAt(1) == '/') {
				l.pos++
			}

			// Skip the closing `*/` if the comment was terminated.
			if !l.atEnd() {
				l.pos += 2
			}
		default:
			return
		}
	}
}

// scan consumes exactly one token from the current position.
func (l *Lexer) scan() error {
	start := l.pos
	r := l.peek()

	switch {
	case isIdentStart(r):
		return l.scanIdentifier(start)
	case r == '@':
		return l.scanEntityRef(start)
	case unicode.IsDigit(r):
		return l.scanNumber(start)
	case r == '"' || r == '\'':
		return l.scanString(start, byte(r))
	default:
		return l.scanOperator(start)
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || ('0' <= r && r <= '9')
}

func (l *Lexer) scanIdentifier(start int) error {
	for !l.atEnd() && isIdentChar(l.peek()) {
		l.pos++
	}

	value := l.src[start:l.pos]
	kind := TOK_IDENT
	if kw, ok := keywords[value]; ok {
		kind = kw
	}

	l.emit(kind, value, start)
	return nil
}

func (l *Lexer) scanEntityRef(start int) error {
	// Consume the `@`.
	l.pos++

	if !isIdentStart(l.peek()) {
		return &UnexpectedCharacterError{Position: start, Character: '@'}
	}

	for !l.atEnd() && isIdentChar(l.peek()) {
		l.pos++
	}

	l.emit(TOK_ENTITYREF, l.src[start:l.pos], start)
	return nil
}

// scanNumber scans an integer, float, or decimal literal.  A decimal literal
// is a float literal with a trailing `d` (eg. `10.50d`); a bare integer
// followed by `d` is NOT a decimal -- the `d` lexes as a separate identifier.
func (l *Lexer) scanNumber(start int) error {
	for !l.atEnd() && unicode.IsDigit(l.peek()) {
		l.pos++
	}

	// A fractional part requires a digit after the dot, otherwise the dot
	// belongs to a postfix field access.
	if l.peekAt(0) == '.' && unicode.IsDigit(rune(l.peekAt(1))) {
		l.pos++
		for !l.atEnd() && unicode.IsDigit(l.peek()) {
			l.pos++
		}

		if l.peekAt(0) == 'd' && !isIdentChar(rune(l.peekAt(1))) {
			l.pos++
			l.emit(TOK_DECIMALLIT, l.src[start:l.pos], start)
		} else {
			l.emit(TOK_FLOATLIT, l.src[start:l.pos], start)
		}

		return nil
	}

	l.emit(TOK_INTLIT, l.src[start:l.pos], start)
	return nil
}

func (l *Lexer) scanString(start int, quote byte) error {
	// Consume the opening quote.
	l.pos++

	for !l.atEnd() {
		c := l.src[l.pos]

		switch c {
		case quote:
			l.pos++
			l.emit(TOK_STRINGLIT, l.src[start:l.pos], start)
			return nil
		case '\\':
			// Skip the escaped character.
			l.pos += 2
		case '\n':
			return &UnterminatedStringError{Position: start}
		default:
			l.pos++
		}
	}

	return &UnterminatedStringError{Position: start}
}

func (l *Lexer) scanOperator(start int) error {
	c := l.src[l.pos]

	// Two-character operators are matched first.
	two := ""
	if l.pos+1 < len(l.src) {
		two = l.src[l.pos : l.pos+2]
	}

	switch two {
	case "==":
		l.emitOper(TOK_EQ, two, start)
		return nil
	case "!=":
		l.emitOper(TOK_NEQ, two, start)
		return nil
	case "<=":
		l.emitOper(TOK_LTEQ, two, start)
		return nil
	case ">=":
		l.emitOper(TOK_GTEQ, two, start)
		return nil
	case "&&":
		l.emitOper(TOK_LAND, two, start)
		return nil
	case "||":
		l.emitOper(TOK_LOR, two, start)
		return nil
	case "+=":
		l.emitOper(TOK_PLUSASSIGN, two, start)
		return nil
	case "-=":
		l.emitOper(TOK_MINUSASSIGN, two, start)
		return nil
	case "*=":
		l.emitOper(TOK_STARASSIGN, two, start)
		return nil
	case "/=":
		l.emitOper(TOK_SLASHASSIGN, two, start)
		return nil
	case "->":
		l.emitOper(TOK_ARROW, two, start)
		return nil
	}

	var kind int
	switch c {
	case '{':
		kind = TOK_LBRACE
	case '}':
		kind = TOK_RBRACE
	case '(':
		kind = TOK_LPAREN
	case ')':
		kind = TOK_RPAREN
	case '[':
		kind = TOK_LBRACKET
	case ']':
		kind = TOK_RBRACKET
	case ',':
		kind = TOK_COMMA
	case ':':
		kind = TOK_COLON
	case ';':
		kind = TOK_SEMI
	case '.':
		kind = TOK_DOT
	case '?':
		kind = TOK_QUESTION
	case '+':
		kind = TOK_PLUS
	case '-':
		kind = TOK_MINUS
	case '*':
		kind = TOK_STAR
	case '/':
		kind = TOK_SLASH
	case '%':
		kind = TOK_PERCENT
	case '=':
		kind = TOK_ASSIGN
	case '<':
		kind = TOK_LT
	case '>':
		kind = TOK_GT
	case '!':
		kind = TOK_NOT
	case '&':
		kind = TOK_AMP
	default:
		return &UnexpectedCharacterError{Position: start, Character: l.peek()}
	}

	l.emitOper(kind, string(c), start)
	return nil
}

// -----------------------------------------------------------------------------

// emit appends a token whose text runs from start to the current position.
func (l *Lexer) emit(kind int, value string, start int) {
	l.tokens = append(l.tokens, &Token{
		Kind:  kind,
		Value: value,
		Span:  report.NewSpan(start, l.pos),
	})
}

// emitOper appends an operator token and advances past it.
func (l *Lexer) emitOper(kind int, value string, start int) {
	l.pos = start + len(value)
	l.emit(kind, value, start)
}
