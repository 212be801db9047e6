package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenKinds(tokens []*Token) []int {
	kinds := make([]int, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}

	return kinds
}

func TestTokenizeComponentDecl(t *testing.T) {
	tokens, err := Tokenize("component Health { current: float }")
	require.NoError(t, err)

	assert.Equal(t, []int{
		TOK_COMPONENT, TOK_IDENT, TOK_LBRACE,
		TOK_IDENT, TOK_COLON, TOK_TYPE_FLOAT,
		TOK_RBRACE,
	}, tokenKinds(tokens))

	assert.Equal(t, "Health", tokens[1].Value)
	assert.Equal(t, 10, tokens[1].Span.Start)
	assert.Equal(t, 16, tokens[1].Span.End)
}

func TestTokenizeNumberLiterals(t *testing.T) {
	tokens, err := Tokenize("42 3.14 10.50d 10d")
	require.NoError(t, err)

	// A decimal literal requires a fractional part: `10d` is an integer
	// followed by the identifier `d`.
	assert.Equal(t, []int{
		TOK_INTLIT, TOK_FLOATLIT, TOK_DECIMALLIT, TOK_INTLIT, TOK_IDENT,
	}, tokenKinds(tokens))

	assert.Equal(t, "10.50d", tokens[2].Value)
}

func TestTokenizeStringKeepsQuotes(t *testing.T) {
	tokens, err := Tokenize(`"hello" 'world'`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, `"hello"`, tokens[0].Value)
	assert.Equal(t, `'world'`, tokens[1].Value)
}

func TestTokenizeEntityRef(t *testing.T) {
	tokens, err := Tokenize("@player")
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	assert.Equal(t, TOK_ENTITYREF, tokens[0].Kind)
	assert.Equal(t, "@player", tokens[0].Value)
}

func TestTokenizeTwoCharOperators(t *testing.T) {
	tokens, err := Tokenize("== != <= >= && || += -= *= /= ->")
	require.NoError(t, err)

	assert.Equal(t, []int{
		TOK_EQ, TOK_NEQ, TOK_LTEQ, TOK_GTEQ, TOK_LAND, TOK_LOR,
		TOK_PLUSASSIGN, TOK_MINUSASSIGN, TOK_STARASSIGN, TOK_SLASHASSIGN,
		TOK_ARROW,
	}, tokenKinds(tokens))
}

func TestTokenizeSkipsComments(t *testing.T) {
	tokens, err := Tokenize("a // line comment\n/* block\ncomment */ b")
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, "a", tokens[0].Value)
	assert.Equal(t, "b", tokens[1].Value)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"never closed`)
	require.Error(t, err)

	assert.IsType(t, &UnterminatedStringError{}, err)
	assert.Equal(t, "Unterminated string literal starting at position 0", err.Error())
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("a # b")
	require.Error(t, err)

	assert.IsType(t, &UnexpectedCharacterError{}, err)
}

func TestTokenizeBareAtSign(t *testing.T) {
	_, err := Tokenize("@ 5")
	require.Error(t, err)

	assert.IsType(t, &UnexpectedCharacterError{}, err)
}
