package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"blinkc/ast"
	"blinkc/report"
)

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseOrExpr()
}

func (p *Parser) parseOrExpr() (ast.Expr, error) {
	left, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TOK_LOR) {
		p.advance()

		right, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOp{
			Op:  ast.BinOr,
			Lhs: left,
			Rhs: right,
			Pos: report.SpanOver(left.Span(), right.Span()),
		}
	}

	return left, nil
}

func (p *Parser) parseAndExpr() (ast.Expr, error) {
	left, err := p.parseEqualityExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TOK_LAND) {
		p.advance()

		right, err := p.parseEqualityExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOp{
			Op:  ast.BinAnd,
			Lhs: left,
			Rhs: right,
			Pos: report.SpanOver(left.Span(), right.Span()),
		}
	}

	return left, nil
}

func (p *Parser) parseEqualityExpr() (ast.Expr, error) {
	left, err := p.parseComparisonExpr()
	if err != nil {
		return nil, err
	}

	for {
		var op int
		switch {
		case p.check(TOK_EQ):
			op = ast.BinEq
		case p.check(TOK_NEQ):
			op = ast.BinNotEq
		default:
			return left, nil
		}

		p.advance()

		right, err := p.parseComparisonExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOp{
			Op:  op,
			Lhs: left,
			Rhs: right,
			Pos: report.SpanOver(left.Span(), right.Span()),
		}
	}
}

func (p *Parser) parseComparisonExpr() (ast.Expr, error) {
	left, err := p.parseAdditiveExpr()
	if err != nil {
		return nil, err
	}

	for {
		var op int
		switch {
		case p.check(TOK_LT):
			op = ast.BinLt
		case p.check(TOK_LTEQ):
			op = ast.BinLtEq
		case p.check(TOK_GT):
			op = ast.BinGt
		case p.check(TOK_GTEQ):
			op = ast.BinGtEq
		default:
			return left, nil
		}

		p.advance()

		right, err := p.parseAdditiveExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOp{
			Op:  op,
			Lhs: left,
			Rhs: right,
			Pos: report.SpanOver(left.Span(), right.Span()),
		}
	}
}

func (p *Parser) parseAdditiveExpr() (ast.Expr, error) {
	left, err := p.parseMultiplicativeExpr()
	if err != nil {
		return nil, err
	}

	for {
		var op int
		switch {
		case p.check(TOK_PLUS):
			op = ast.BinAdd
		case p.check(TOK_MINUS):
			op = ast.BinSub
		default:
			return left, nil
		}

		p.advance()

		right, err := p.parseMultiplicativeExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOp{
			Op:  op,
			Lhs: left,
			Rhs: right,
			Pos: report.SpanOver(left.Span(), right.Span()),
		}
	}
}

func (p *Parser) parseMultiplicativeExpr() (ast.Expr, error) {
	left, err := p.parseCastExpr()
	if err != nil {
		return nil, err
	}

	for {
		var op int
		switch {
		case p.check(TOK_STAR):
			op = ast.BinMul
		case p.check(TOK_SLASH):
			op = ast.BinDiv
		case p.check(TOK_PERCENT):
			op = ast.BinMod
		default:
			return left, nil
		}

		p.advance()

		right, err := p.parseCastExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryOp{
			Op:  op,
			Lhs: left,
			Rhs: right,
			Pos: report.SpanOver(left.Span(), right.Span()),
		}
	}
}

// parseCastExpr parses an `expr as type` conversion.  Casts bind tighter than
// multiplication and looser than unary operators.
func (p *Parser) parseCastExpr() (ast.Expr, error) {
	expr, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TOK_AS) {
		p.advance()

		target, err := p.parseType()
		if err != nil {
			return nil, err
		}

		expr = &ast.Cast{
			Src:    expr,
			Target: target,
			Pos:    p.spanFrom(expr.Span().Start),
		}
	}

	return expr, nil
}

func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	op := -1
	switch {
	case p.check(TOK_NOT):
		op = ast.UnaryNot
	case p.check(TOK_MINUS):
		op = ast.UnaryNeg
	}

	if op < 0 {
		return p.parsePostfixExpr()
	}

	opTok := p.advance()

	operand, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	return &ast.UnaryOp{
		Op:      op,
		Operand: operand,
		Pos:     report.SpanOver(opTok.Span, operand.Span()),
	}, nil
}

// parsePostfixExpr parses a primary expression followed by any number of
// field accesses, method calls, and index accesses.  A method call spelled
// `.has(Component)` with a single bare identifier argument is recognized as a
// component presence test.
func (p *Parser) parsePostfixExpr() (ast.Expr, error) {
	expr, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.check(TOK_DOT):
			p.advance()

			fieldTok, err := p.parseFieldName()
			if err != nil {
				return nil, err
			}

			if !p.check(TOK_LPAREN) {
				expr = &ast.FieldAccess{
					Base:  expr,
					Field: fieldTok.Value,
					Pos:   report.NewSpan(expr.Span().Start, fieldTok.Span.End),
				}

				continue
			}

			p.advance()

			args, endTok, err := p.parseArgList()
			if err != nil {
				return nil, err
			}

			span := report.NewSpan(expr.Span().Start, endTok.Span.End)
			if fieldTok.Value == "has" && len(args) == 1 {
				if ident, ok := args[0].(*ast.Identifier); ok {
					expr = &ast.HasComponent{
						Base:      expr,
						Component: ident.Name,
						Pos:       span,
					}

					continue
				}
			}

			expr = &ast.MethodCall{
				Base:   expr,
				Method: fieldTok.Value,
				Args:   args,
				Pos:    span,
			}
		case p.check(TOK_LBRACKET):
			p.advance()

			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			endTok, err := p.consume(TOK_RBRACKET, "]")
			if err != nil {
				return nil, err
			}

			expr = &ast.IndexAccess{
				Base:  expr,
				Index: index,
				Pos:   report.NewSpan(expr.Span().Start, endTok.Span.End),
			}
		default:
			return expr, nil
		}
	}
}

// parseArgList parses a comma-separated argument list up to and including the
// closing parenthesis.  The opening parenthesis must already be consumed.
func (p *Parser) parseArgList() ([]ast.Expr, *Token, error) {
	var args []ast.Expr
	for !p.check(TOK_RPAREN) && !p.atEnd() {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, nil, err
		}

		args = append(args, arg)

		if p.check(TOK_COMMA) {
			p.advance()
		}
	}

	endTok, err := p.consume(TOK_RPAREN, ")")
	if err != nil {
		return nil, nil, err
	}

	return args, endTok, nil
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	tok := p.advance()
	if tok == nil {
		return nil, &UnexpectedEOFError{Expected: "expression"}
	}

	switch tok.Kind {
	case TOK_INTLIT:
		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, &InvalidSyntaxError{
				Message: fmt.Sprintf("Invalid integer literal: '%s'", tok.Value),
			}
		}

		return &ast.Literal{Kind: ast.LitInteger, IntVal: value, Pos: tok.Span}, nil
	case TOK_FLOATLIT:
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, &InvalidSyntaxError{
				Message: fmt.Sprintf("Invalid float literal: '%s'", tok.Value),
			}
		}

		return &ast.Literal{Kind: ast.LitFloat, FloatVal: value, Pos: tok.Span}, nil
	case TOK_DECIMALLIT:
		// The trailing `d` marker is not part of the value.
		text := strings.TrimSuffix(tok.Value, "d")
		return &ast.Literal{Kind: ast.LitDecimal, StrVal: text, Pos: tok.Span}, nil
	case TOK_STRINGLIT:
		text := tok.Value[1 : len(tok.Value)-1]
		return &ast.Literal{Kind: ast.LitString, StrVal: text, Pos: tok.Span}, nil
	case TOK_TRUE:
		return &ast.Literal{Kind: ast.LitBool, BoolVal: true, Pos: tok.Span}, nil
	case TOK_FALSE:
		return &ast.Literal{Kind: ast.LitBool, BoolVal: false, Pos: tok.Span}, nil
	case TOK_NULL:
		return &ast.Literal{Kind: ast.LitNull, Pos: tok.Span}, nil
	case TOK_ENTITIES:
		if _, err := p.consume(TOK_HAVING, "having"); err != nil {
			return nil, err
		}

		compTok, err := p.consume(TOK_IDENT, "component name")
		if err != nil {
			return nil, err
		}

		return &ast.EntitiesHaving{
			Component: compTok.Value,
			Pos:       report.NewSpan(tok.Span.Start, compTok.Span.End),
		}, nil
	case TOK_CLONE:
		source, err := p.parsePostfixExpr()
		if err != nil {
			return nil, err
		}

		// Optional component override block.
		var overrides []*ast.ComponentInit
		end := p.prevEnd(tok.Span.Start)
		if p.check(TOK_LBRACE) {
			p.advance()

			for !p.check(TOK_RBRACE) && !p.atEnd() {
				ci, err := p.parseComponentInit()
				if err != nil {
					return nil, err
				}

				overrides = append(overrides, ci)
			}

			endTok, err := p.consume(TOK_RBRACE, "}")
			if err != nil {
				return nil, err
			}

			end = endTok.Span.End
		}

		return &ast.CloneEntity{
			Source:    source,
			Overrides: overrides,
			Pos:       report.NewSpan(tok.Span.Start, end),
		}, nil
	case TOK_ENTITY, TOK_EVENT:
		// `entity` and `event` double as identifiers in expression position;
		// rule scopes bind both names.
		return &ast.Identifier{Name: tok.Value, Pos: tok.Span}, nil
	case TOK_IDENT:
		if !p.check(TOK_LPAREN) {
			return &ast.Identifier{Name: tok.Value, Pos: tok.Span}, nil
		}

		p.advance()

		args, endTok, err := p.parseArgList()
		if err != nil {
			return nil, err
		}

		return &ast.Call{
			Name: tok.Value,
			Args: args,
			Pos:  report.NewSpan(tok.Span.Start, endTok.Span.End),
		}, nil
	case TOK_ENTITYREF:
		return &ast.EntityRef{
			Name: strings.TrimPrefix(tok.Value, "@"),
			Pos:  tok.Span,
		}, nil
	case TOK_LPAREN:
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		endTok, err := p.consume(TOK_RPAREN, ")")
		if err != nil {
			return nil, err
		}

		return &ast.Paren{
			Inner: inner,
			Pos:   report.NewSpan(tok.Span.Start, endTok.Span.End),
		}, nil
	case TOK_LBRACKET:
		var elements []ast.Expr
		for !p.check(TOK_RBRACKET) && !p.atEnd() {
			elem, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			elements = append(elements, elem)

			if p.check(TOK_COMMA) {
				p.advance()
			}
		}

		endTok, err := p.consume(TOK_RBRACKET, "]")
		if err != nil {
			return nil, err
		}

		return &ast.ListLit{
			Elements: elements,
			Pos:      report.NewSpan(tok.Span.Start, endTok.Span.End),
		}, nil
	default:
		return nil, &UnexpectedTokenError{
			Found:    tok.Value,
			Expected: "expression",
			Position: tok.Span.Start,
		}
	}
}
