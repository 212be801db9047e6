package syntax

import "blinkc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  This is always the raw source text of
	// the token: string literals keep their quotes and entity references keep
	// their leading `@`; the parser trims both.
	Value string

	// The byte span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_COMPONENT = iota
	TOK_RULE
	TOK_ON
	TOK_TRIGGER
	TOK_EVENT
	TOK_ENTITY
	TOK_TRACKER

	TOK_IF
	TOK_ELSE
	TOK_FOR
	TOK_WHILE
	TOK_FN
	TOK_RETURN
	TOK_LET
	TOK_IN

	TOK_TRUE
	TOK_FALSE
	TOK_NULL

	TOK_SCHEDULE
	TOK_CANCEL
	TOK_RECURRING
	TOK_MODULE
	TOK_IMPORT
	TOK_WHEN
	TOK_CREATE
	TOK_DELETE
	TOK_HAS
	TOK_CHOICE
	TOK_NEW
	TOK_CLONE
	TOK_HAVING
	TOK_ENTITIES
	TOK_AS

	TOK_TYPE_STRING
	TOK_TYPE_BOOLEAN
	TOK_TYPE_INTEGER
	TOK_TYPE_FLOAT
	TOK_TYPE_DECIMAL
	TOK_TYPE_ID
	TOK_TYPE_LIST

	TOK_IDENT
	TOK_ENTITYREF

	TOK_STRINGLIT
	TOK_DECIMALLIT
	TOK_FLOATLIT
	TOK_INTLIT

	TOK_LBRACE
	TOK_RBRACE
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_COMMA
	TOK_COLON
	TOK_SEMI
	TOK_DOT
	TOK_QUESTION

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH
	TOK_PERCENT

	TOK_ASSIGN
	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_LTEQ
	TOK_GT
	TOK_GTEQ

	TOK_LAND
	TOK_LOR
	TOK_NOT
	TOK_AMP

	TOK_PLUSASSIGN
	TOK_MINUSASSIGN
	TOK_STARASSIGN
	TOK_SLASHASSIGN

	TOK_ARROW
)

// keywords maps keyword and type-keyword spellings to their token kinds.
// Identifiers are checked against this table after scanning.
var keywords = map[string]int{
	"component": TOK_COMPONENT,
	"rule":      TOK_RULE,
	"on":        TOK_ON,
	"trigger":   TOK_TRIGGER,
	"event":     TOK_EVENT,
	"entity":    TOK_ENTITY,
	"tracker":   TOK_TRACKER,
	"if":        TOK_IF,
	"else":      TOK_ELSE,
	"for":       TOK_FOR,
	"while":     TOK_WHILE,
	"fn":        TOK_FN,
	"return":    TOK_RETURN,
	"let":       TOK_LET,
	"in":        TOK_IN,
	"true":      TOK_TRUE,
	"false":     TOK_FALSE,
	"null":      TOK_NULL,
	"schedule":  TOK_SCHEDULE,
	"cancel":    TOK_CANCEL,
	"recurring": TOK_RECURRING,
	"module":    TOK_MODULE,
	"import":    TOK_IMPORT,
	"when":      TOK_WHEN,
	"create":    TOK_CREATE,
	"delete":    TOK_DELETE,
	"has":       TOK_HAS,
	"choice":    TOK_CHOICE,
	"new":       TOK_NEW,
	"clone":     TOK_CLONE,
	"having":    TOK_HAVING,
	"entities":  TOK_ENTITIES,
	"as":        TOK_AS,
	"string":    TOK_TYPE_STRING,
	"boolean":   TOK_TYPE_BOOLEAN,
	"integer":   TOK_TYPE_INTEGER,
	"float":     TOK_TYPE_FLOAT,
	"decimal":   TOK_TYPE_DECIMAL,
	"id":        TOK_TYPE_ID,
	"list":      TOK_TYPE_LIST,
}
