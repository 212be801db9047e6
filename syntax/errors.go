package syntax

import "fmt"

// UnexpectedCharacterError is returned by the lexer when it encounters a
// character that cannot begin any token.
type UnexpectedCharacterError struct {
	Position  int
	Character rune
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("Unexpected character at position %d: '%c'", e.Position, e.Character)
}

// UnterminatedStringError is returned by the lexer when a string literal is
// not closed before the end of input.
type UnterminatedStringError struct {
	Position int
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("Unterminated string literal starting at position %d", e.Position)
}

// -----------------------------------------------------------------------------

// ParseError is the common interface of all errors returned by Parse.  The
// concrete type is always one of *UnexpectedTokenError, *UnexpectedEOFError,
// or *InvalidSyntaxError.
type ParseError interface {
	error
	parseError()
}

// UnexpectedTokenError reports a token that does not match the production the
// parser was in the middle of.
type UnexpectedTokenError struct {
	// The source text of the offending token.
	Found string

	// A human-readable description of what was expected instead.
	Expected string

	// The absolute byte offset of the offending token.
	Position int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Unexpected token '%s' at position %d, expected %s", e.Found, e.Position, e.Expected)
}

func (e *UnexpectedTokenError) parseError() {}

// UnexpectedEOFError reports that the token stream ended in the middle of a
// production.
type UnexpectedEOFError struct {
	// A human-readable description of what was expected instead.
	Expected string
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("Unexpected end of input, expected %s", e.Expected)
}

func (e *UnexpectedEOFError) parseError() {}

// InvalidSyntaxError reports a construct that is lexically well-formed but
// violates a structural rule of the grammar, such as a non-component member
// in a composite type.
type InvalidSyntaxError struct {
	Message string
}

func (e *InvalidSyntaxError) Error() string {
	return fmt.Sprintf("Invalid syntax: %s", e.Message)
}

func (e *InvalidSyntaxError) parseError() {}
